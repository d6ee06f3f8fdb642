package services

import (
	"context"
	"log"
	"math"
	"time"

	"kissan/internal/models/response_models"
	"kissan/pkg/openmeteo"
	"kissan/pkg/utils"
)

// Fallback location when nothing resolves: New Delhi.
const (
	defaultLat      = 28.6139
	defaultLon      = 77.2090
	defaultLocation = "New Delhi"
)

type codeInfo struct {
	desc string
	icon string
}

// WMO weather interpretation codes and their display pairs. Codes outside
// the table render as Unknown/Cloud.
var weatherCodes = map[int]codeInfo{
	0:  {"Clear sky", "Sun"},
	1:  {"Mainly clear", "CloudSun"},
	2:  {"Partly cloudy", "CloudSun"},
	3:  {"Overcast", "Cloud"},
	45: {"Fog", "Cloud"},
	48: {"Fog", "Cloud"},
	51: {"Drizzle", "CloudRain"},
	53: {"Drizzle", "CloudRain"},
	55: {"Drizzle", "CloudRain"},
	61: {"Rain", "CloudRain"},
	63: {"Rain", "CloudRain"},
	65: {"Heavy rain", "CloudRain"},
	71: {"Snow", "Snowflake"},
	73: {"Snow", "Snowflake"},
	75: {"Heavy snow", "Snowflake"},
	80: {"Rain showers", "CloudRain"},
	81: {"Rain showers", "CloudRain"},
	82: {"Heavy showers", "CloudRain"},
	95: {"Thunderstorm", "CloudRain"},
}

func DescribeWeatherCode(code int) (string, string) {
	if info, ok := weatherCodes[code]; ok {
		return info.desc, info.icon
	}
	return "Unknown", "Cloud"
}

type WeatherServiceInterface interface {
	// GetWeather resolves a location (explicit coordinates win over the
	// free-text name) and returns a fresh normalized snapshot.
	GetWeather(ctx context.Context, lat, lon *float64, location string) (*response_models.WeatherSnapshot, error)
}

type WeatherService struct {
	client *openmeteo.Client
}

func NewWeatherService(client *openmeteo.Client) WeatherServiceInterface {
	return &WeatherService{client: client}
}

func (w *WeatherService) GetWeather(ctx context.Context, lat, lon *float64, location string) (*response_models.WeatherSnapshot, error) {
	resolvedLat, resolvedLon, resolvedName := defaultLat, defaultLon, defaultLocation

	if location != "" && (lat == nil || lon == nil) {
		match, err := w.client.Geocode(ctx, location)
		if err != nil {
			log.Printf("Geocode error for %q: %v", location, err)
		} else if match != nil {
			resolvedLat, resolvedLon = match.Latitude, match.Longitude
			resolvedName = match.Name
			if match.Admin1 != "" {
				resolvedName = match.Name + ", " + match.Admin1
			}
		}
	}
	if lat != nil && lon != nil {
		resolvedLat, resolvedLon = *lat, *lon
		if location != "" {
			resolvedName = location
		}
	}

	payload, err := w.client.Forecast(ctx, resolvedLat, resolvedLon)
	if err != nil {
		log.Printf("Weather fetch error: %v", err)
		return nil, utils.ErrUpstream
	}

	snapshot := NormalizeForecast(payload)
	snapshot.Location = response_models.WeatherLocation{
		Name: resolvedName,
		Lat:  resolvedLat,
		Lon:  resolvedLon,
	}
	return snapshot, nil
}

// NormalizeForecast shapes a raw provider payload into the snapshot the
// views consume. Pure: identical input yields identical output.
func NormalizeForecast(payload *openmeteo.ForecastResponse) *response_models.WeatherSnapshot {
	currentDesc, currentIcon := DescribeWeatherCode(payload.Current.WeatherCode)
	snapshot := &response_models.WeatherSnapshot{
		Current: response_models.CurrentConditions{
			Temp:        roundTemp(payload.Current.Temperature),
			Humidity:    payload.Current.Humidity,
			Wind:        payload.Current.WindSpeed,
			Precip:      payload.Current.Precipitation,
			Description: currentDesc,
			Icon:        currentIcon,
		},
		Hourly: make(map[string][]response_models.HourlyEntry),
	}

	for i, day := range payload.Daily.Time {
		desc, icon := DescribeWeatherCode(at(payload.Daily.WeatherCode, i))
		rainChance := 0
		if i < len(payload.Daily.PrecipProbMax) && payload.Daily.PrecipProbMax[i] != nil {
			rainChance = *payload.Daily.PrecipProbMax[i]
		}
		snapshot.Daily = append(snapshot.Daily, response_models.DailyForecast{
			Day:         weekdayLabel(day),
			MaxTemp:     roundTemp(atF(payload.Daily.TempMax, i)),
			MinTemp:     roundTemp(atF(payload.Daily.TempMin, i)),
			RainChance:  rainChance,
			Description: desc,
			Icon:        icon,
		})
	}

	for i, stamp := range payload.Hourly.Time {
		key := weekdayLabel(stamp)
		rain := 0
		if i < len(payload.Hourly.PrecipProb) {
			rain = payload.Hourly.PrecipProb[i]
		}
		if _, seen := snapshot.Hourly[key]; !seen {
			snapshot.HourlyOrder = append(snapshot.HourlyOrder, key)
		}
		snapshot.Hourly[key] = append(snapshot.Hourly[key], response_models.HourlyEntry{
			Time: hourLabel(stamp),
			Temp: roundTemp(atF(payload.Hourly.Temperature, i)),
			Rain: rain,
		})
	}

	return snapshot
}

func roundTemp(v float64) int {
	return int(math.Round(v))
}

// weekdayLabel yields the short weekday name of a provider timestamp
// ("2024-03-15" or "2024-03-15T13:00").
func weekdayLabel(stamp string) string {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, stamp); err == nil {
			return t.Format("Mon")
		}
	}
	return stamp
}

func hourLabel(stamp string) string {
	if t, err := time.Parse("2006-01-02T15:04", stamp); err == nil {
		return t.Format("3 PM")
	}
	return stamp
}

func at(xs []int, i int) int {
	if i < len(xs) {
		return xs[i]
	}
	return -1
}

func atF(xs []float64, i int) float64 {
	if i < len(xs) {
		return xs[i]
	}
	return 0
}
