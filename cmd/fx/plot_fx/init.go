package plot_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kissan/internal/repositories"
	"kissan/internal/services"
)

var Module = fx.Provide(
	NewPlotService, NewPlotRepo)

func NewPlotService(repo repositories.PlotRepository) services.PlotServiceInterface {
	return services.NewPlotService(repo)
}

func NewPlotRepo(db *gorm.DB) repositories.PlotRepository {
	return repositories.NewPlotRepository(db)
}
