package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port            string
	PostgresURL     string
	JWTSecret       string
	AIProvider      string
	AIAPIKey        string
	AIModel         string
	WeatherAPIURL   string
	GeocodeAPIURL   string
	StaticDir       string
	GoogleOAuthURL  string
	UpstreamTimeout int
	CorsOrigins     []string
}

func Load() Config {
	return Config{
		Port:            envOr("PORT", "5000"),
		PostgresURL:     envOr("POSTGRES_URL", ""),
		JWTSecret:       envOr("JWT_SECRET", ""),
		AIProvider:      envOr("AI_PROVIDER", "gemini"),
		AIAPIKey:        envOr("GEMINI_API_KEY", ""),
		AIModel:         envOr("AI_MODEL", "gemini-2.5-flash"),
		WeatherAPIURL:   envOr("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
		GeocodeAPIURL:   envOr("GEOCODE_API_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		StaticDir:       envOr("STATIC_DIR", "client/dist"),
		GoogleOAuthURL:  envOr("GOOGLE_OAUTH_URL", ""),
		UpstreamTimeout: envOrInt("UPSTREAM_TIMEOUT_SECONDS", 10),
		CorsOrigins:     parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
