package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"kissan/internal/services"
	"kissan/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetWeather godoc
// @Summary Current conditions and forecast
// @Description Accepts lat/lon or a free-text location; falls back to New Delhi
// @Tags Weather
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param location query string false "Place name, geocoded to the first match"
// @Success 200 {object} utils.APIResponse
// @Router /api/weather [get]
func (w *WeatherController) GetWeather(c *gin.Context) {
	var lat, lon *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lon"), 64); err == nil {
		lon = &v
	}

	snapshot, err := w.weatherService.GetWeather(c.Request.Context(), lat, lon, c.Query("location"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snapshot, "Weather fetched successfully")
}
