package weather_fx

import (
	"time"

	"go.uber.org/fx"

	"kissan/internal/config"
	"kissan/internal/services"
	"kissan/pkg/openmeteo"
)

var Module = fx.Provide(
	provideWeatherService, provideOpenMeteoClient)

func provideOpenMeteoClient(cfg config.Config) *openmeteo.Client {
	return openmeteo.NewClient(
		cfg.WeatherAPIURL,
		cfg.GeocodeAPIURL,
		time.Duration(cfg.UpstreamTimeout)*time.Second,
	)
}

func provideWeatherService(client *openmeteo.Client) services.WeatherServiceInterface {
	return services.NewWeatherService(client)
}
