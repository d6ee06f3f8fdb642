package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kissan/pkg/openmeteo"
)

func TestDescribeWeatherCode(t *testing.T) {
	cases := []struct {
		code int
		desc string
		icon string
	}{
		{0, "Clear sky", "Sun"},
		{1, "Mainly clear", "CloudSun"},
		{2, "Partly cloudy", "CloudSun"},
		{3, "Overcast", "Cloud"},
		{45, "Fog", "Cloud"},
		{48, "Fog", "Cloud"},
		{51, "Drizzle", "CloudRain"},
		{53, "Drizzle", "CloudRain"},
		{55, "Drizzle", "CloudRain"},
		{61, "Rain", "CloudRain"},
		{63, "Rain", "CloudRain"},
		{65, "Heavy rain", "CloudRain"},
		{71, "Snow", "Snowflake"},
		{73, "Snow", "Snowflake"},
		{75, "Heavy snow", "Snowflake"},
		{80, "Rain showers", "CloudRain"},
		{81, "Rain showers", "CloudRain"},
		{82, "Heavy showers", "CloudRain"},
		{95, "Thunderstorm", "CloudRain"},
	}
	for _, tc := range cases {
		desc, icon := DescribeWeatherCode(tc.code)
		assert.Equal(t, tc.desc, desc, "code %d", tc.code)
		assert.Equal(t, tc.icon, icon, "code %d", tc.code)
	}

	t.Run("unmapped code falls back", func(t *testing.T) {
		desc, icon := DescribeWeatherCode(99)
		assert.Equal(t, "Unknown", desc)
		assert.Equal(t, "Cloud", icon)
	})
}

func TestNormalizeForecast(t *testing.T) {
	payload := &openmeteo.ForecastResponse{}
	payload.Current.Temperature = 27.6
	payload.Current.Humidity = 61
	payload.Current.WindSpeed = 12.4
	payload.Current.Precipitation = 0.2
	payload.Current.WeatherCode = 61

	rain40 := 40
	payload.Daily.Time = []string{"2024-03-15", "2024-03-16"}
	payload.Daily.WeatherCode = []int{0, 95}
	payload.Daily.TempMax = []float64{31.4, 29.5}
	payload.Daily.TempMin = []float64{18.5, 17.2}
	payload.Daily.PrecipProbMax = []*int{&rain40, nil}

	payload.Hourly.Time = []string{
		"2024-03-15T09:00",
		"2024-03-15T15:00",
		"2024-03-16T09:00",
	}
	payload.Hourly.Temperature = []float64{22.3, 30.8, 21.1}
	payload.Hourly.PrecipProb = []int{10, 55, 5}

	snap := NormalizeForecast(payload)

	t.Run("current conditions rounded and described", func(t *testing.T) {
		assert.Equal(t, 28, snap.Current.Temp)
		assert.Equal(t, float64(61), snap.Current.Humidity)
		assert.Equal(t, 12.4, snap.Current.Wind)
		assert.Equal(t, "Rain", snap.Current.Description)
		assert.Equal(t, "CloudRain", snap.Current.Icon)
	})

	t.Run("daily rows keep order with weekday labels", func(t *testing.T) {
		require.Len(t, snap.Daily, 2)
		assert.Equal(t, "Fri", snap.Daily[0].Day)
		assert.Equal(t, "Sat", snap.Daily[1].Day)
		assert.Equal(t, 31, snap.Daily[0].MaxTemp)
		assert.Equal(t, 19, snap.Daily[0].MinTemp)
		assert.Equal(t, "Clear sky", snap.Daily[0].Description)
		assert.Equal(t, "Thunderstorm", snap.Daily[1].Description)
	})

	t.Run("missing precipitation probability defaults to zero", func(t *testing.T) {
		assert.Equal(t, 40, snap.Daily[0].RainChance)
		assert.Equal(t, 0, snap.Daily[1].RainChance)
	})

	t.Run("hourly entries grouped by day preserving first-seen order", func(t *testing.T) {
		require.Equal(t, []string{"Fri", "Sat"}, snap.HourlyOrder)
		require.Len(t, snap.Hourly["Fri"], 2)
		require.Len(t, snap.Hourly["Sat"], 1)
		assert.Equal(t, "9 AM", snap.Hourly["Fri"][0].Time)
		assert.Equal(t, "3 PM", snap.Hourly["Fri"][1].Time)
		assert.Equal(t, 22, snap.Hourly["Fri"][0].Temp)
		assert.Equal(t, 55, snap.Hourly["Fri"][1].Rain)
	})
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Fri", weekdayLabel("2024-03-15"))
	assert.Equal(t, "Fri", weekdayLabel("2024-03-15T13:00"))
	assert.Equal(t, "garbage", weekdayLabel("garbage"))
}
