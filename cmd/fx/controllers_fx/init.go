package controllers_fx

import (
	"go.uber.org/fx"

	"kissan/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewProfileController,
	controllers.NewPlotController,
	controllers.NewWeatherController,
	controllers.NewMarketController,
	controllers.NewSchemeController,
	controllers.NewAdvisorController,
	controllers.NewCropHealthController,
)
