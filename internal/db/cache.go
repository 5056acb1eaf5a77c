package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hpungsan/skymemo/internal/weather"
)

// WeatherCache stores fetched observations keyed by city and time bucket, so
// repeated lookups within a bucket are served locally and a remote outage
// can fall back to the last response in the same bucket.
type WeatherCache struct {
	db *sql.DB
}

// NewWeatherCache wraps an initialized database.
func NewWeatherCache(database *sql.DB) *WeatherCache {
	return &WeatherCache{db: database}
}

// Get returns the cached observation for a city and bucket, or ok=false.
func (c *WeatherCache) Get(ctx context.Context, city, bucket string) (weather.Observation, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx, `
		SELECT payload_json FROM weather_cache WHERE city = ? AND bucket = ?
	`, normalizeCity(city), bucket).Scan(&payload)
	if err == sql.ErrNoRows {
		return weather.Observation{}, false, nil
	}
	if err != nil {
		return weather.Observation{}, false, fmt.Errorf("weather cache get: %w", err)
	}

	var obs weather.Observation
	if err := json.Unmarshal([]byte(payload), &obs); err != nil {
		return weather.Observation{}, false, fmt.Errorf("weather cache get: %w", err)
	}
	if !obs.Condition.Valid() {
		return weather.Observation{}, false, fmt.Errorf("weather cache get: unknown condition %q", obs.Condition)
	}
	return obs, true, nil
}

// Put upserts the cached observation for a city and bucket.
func (c *WeatherCache) Put(ctx context.Context, city, bucket string, obs weather.Observation, fetchedAt time.Time) error {
	payload, err := json.Marshal(obs)
	if err != nil {
		return fmt.Errorf("weather cache put: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO weather_cache (city, bucket, payload_json, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (city, bucket) DO UPDATE SET
			payload_json = excluded.payload_json,
			fetched_at = excluded.fetched_at
	`, normalizeCity(city), bucket, string(payload), fetchedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("weather cache put: %w", err)
	}
	return nil
}

// normalizeCity lowercases and trims the cache key so "London" and "london "
// share an entry.
func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
