package scheme_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kissan/internal/repositories"
	"kissan/internal/services"
)

var Module = fx.Provide(
	NewSchemeService, NewSchemeRepo)

func NewSchemeService(repo repositories.SchemeRepository) services.SchemeServiceInterface {
	return services.NewSchemeService(repo)
}

func NewSchemeRepo(db *gorm.DB) repositories.SchemeRepository {
	return repositories.NewSchemeRepository(db)
}
