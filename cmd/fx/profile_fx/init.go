package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kissan/internal/repositories"
	"kissan/internal/services"
)

var Module = fx.Provide(
	NewProfileService, NewProfileRepo)

func NewProfileService(repo repositories.ProfileRepository) services.ProfileServiceInterface {
	return services.NewProfileService(repo)
}

func NewProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}
