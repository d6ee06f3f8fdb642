package response_models

type CurrentConditions struct {
	Temp        int     `json:"temp"`
	Humidity    float64 `json:"humidity"`
	Wind        float64 `json:"wind"`
	Precip      float64 `json:"precip"`
	Description string  `json:"desc"`
	Icon        string  `json:"icon"`
}

type DailyForecast struct {
	Day         string `json:"day"`
	MaxTemp     int    `json:"maxTemp"`
	MinTemp     int    `json:"minTemp"`
	RainChance  int    `json:"rainChance"`
	Description string `json:"desc"`
	Icon        string `json:"icon"`
}

type HourlyEntry struct {
	Time string `json:"time"`
	Temp int    `json:"temp"`
	Rain int    `json:"rain"`
}

type WeatherLocation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// WeatherSnapshot is derived on every fetch, never persisted. Hourly
// entries are grouped under the short weekday name of their local
// timestamp; HourlyOrder preserves the day order of the provider series.
type WeatherSnapshot struct {
	Current     CurrentConditions        `json:"current"`
	Daily       []DailyForecast          `json:"daily"`
	Hourly      map[string][]HourlyEntry `json:"hourly"`
	HourlyOrder []string                 `json:"hourlyOrder"`
	Location    WeatherLocation          `json:"location"`
}
