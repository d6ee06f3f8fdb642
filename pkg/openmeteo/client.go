package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ForecastResponse is the raw Open-Meteo payload this service consumes.
// Weather codes are the WMO table keys; shaping into display form happens
// in the weather service, not here.
type ForecastResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		Precipitation float64 `json:"precipitation"`
	} `json:"current"`
	Daily struct {
		Time          []string  `json:"time"`
		WeatherCode   []int     `json:"weather_code"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		PrecipProbMax []*int    `json:"precipitation_probability_max"`
	} `json:"daily"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		PrecipProb  []int     `json:"precipitation_probability"`
	} `json:"hourly"`
}

type GeocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1"`
}

type geocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

type Client struct {
	http        *http.Client
	forecastURL string
	geocodeURL  string
}

func NewClient(forecastURL, geocodeURL string, timeout time.Duration) *Client {
	return &Client{
		http:        &http.Client{Timeout: timeout},
		forecastURL: forecastURL,
		geocodeURL:  geocodeURL,
	}
}

// Geocode resolves a free-text place name to its first match, or nil when
// the provider returns no results.
func (c *Client) Geocode(ctx context.Context, name string) (*GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s?name=%s&count=1", c.geocodeURL, url.QueryEscape(name))

	var payload geocodeResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}
	return &payload.Results[0], nil
}

func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,precipitation")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	params.Set("hourly", "temperature_2m,precipitation_probability")
	params.Set("timezone", "auto")

	var payload ForecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request open-meteo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
