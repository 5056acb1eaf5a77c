package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// DefaultCity is used by the weather fetch when no city is given.
	DefaultCity string `json:"default_city"`

	// TemperatureUnit is "celsius" or "fahrenheit"; controls display and the
	// temperature prompt slot. Observations are stored in Celsius.
	TemperatureUnit string `json:"temperature_unit"`

	// TrendWindowDays is the moving-average window for the word-count trend.
	TrendWindowDays int `json:"trend_window_days"`

	// CacheBucketMinutes is the width of the weather cache time bucket.
	// Fetches for the same city within one bucket reuse the cached response.
	CacheBucketMinutes int `json:"cache_bucket_minutes"`

	// WeatherAPIBaseURL overrides the OpenWeatherMap endpoint (tests, proxies).
	WeatherAPIBaseURL string `json:"weather_api_base_url,omitempty"`

	// WeatherAPIKey is the OpenWeatherMap API key. The SKYMEMO_API_KEY
	// environment variable takes precedence when set.
	WeatherAPIKey string `json:"weather_api_key,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultCity:        "London",
		TemperatureUnit:    "celsius",
		TrendWindowDays:    7,
		CacheBucketMinutes: 30,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.skymemo.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)

	// Environment wins over file config for the API key.
	if key := os.Getenv("SKYMEMO_API_KEY"); key != "" {
		merged.WeatherAPIKey = key
	}

	return merged, nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.DefaultCity = overlay.DefaultCity
	if result.DefaultCity == "" {
		result.DefaultCity = base.DefaultCity
	}

	result.TemperatureUnit = strings.ToLower(overlay.TemperatureUnit)
	if result.TemperatureUnit == "" {
		result.TemperatureUnit = base.TemperatureUnit
	}

	result.TrendWindowDays = overlay.TrendWindowDays
	if result.TrendWindowDays == 0 {
		result.TrendWindowDays = base.TrendWindowDays
	}

	result.CacheBucketMinutes = overlay.CacheBucketMinutes
	if result.CacheBucketMinutes == 0 {
		result.CacheBucketMinutes = base.CacheBucketMinutes
	}

	result.WeatherAPIBaseURL = overlay.WeatherAPIBaseURL
	if result.WeatherAPIBaseURL == "" {
		result.WeatherAPIBaseURL = base.WeatherAPIBaseURL
	}

	result.WeatherAPIKey = overlay.WeatherAPIKey
	if result.WeatherAPIKey == "" {
		result.WeatherAPIKey = base.WeatherAPIKey
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
