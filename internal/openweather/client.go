// Package openweather is the weather fetch collaborator. It issues a single
// synchronous request per lookup (retries and circuit breaking are internal)
// and hands the core either a complete observation or an explicit failure,
// never a partially filled one.
package openweather

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/weather"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Cache is the time-bucketed response cache (see internal/db.WeatherCache).
type Cache interface {
	Get(ctx context.Context, city, bucket string) (weather.Observation, bool, error)
	Put(ctx context.Context, city, bucket string, obs weather.Observation, fetchedAt time.Time) error
}

// backoff controls the retry schedule around the remote call.
type backoff struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// Client fetches current weather for a city from OpenWeatherMap.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	circuit     *gobreaker.CircuitBreaker
	backoff     backoff
	cache       Cache
	clock       clockwork.Clock
	bucketWidth time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithCache attaches a response cache with the given bucket width.
func WithCache(cache Cache, bucketWidth time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		if bucketWidth > 0 {
			c.bucketWidth = bucketWidth
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a Client. The clock drives cache bucketing and
// observation timestamps.
func NewClient(apiKey string, clock clockwork.Clock, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweather",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		backoff: backoff{
			maxRetries:      2,
			initialInterval: 500 * time.Millisecond,
			maxInterval:     5 * time.Second,
		},
		clock:       clock,
		bucketWidth: 30 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the current observation for a city. Lookups within the same
// time bucket are served from the cache; when the remote fails, a same-bucket
// cached response is used as fallback before reporting
// COLLABORATOR_UNAVAILABLE.
func (c *Client) Fetch(ctx context.Context, city string) (weather.Observation, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return weather.Observation{}, errors.NewInvalidRequest("city is required")
	}

	now := c.clock.Now()
	bucket := c.bucket(now)

	if c.cache != nil {
		if obs, ok, err := c.cache.Get(ctx, city, bucket); err == nil && ok {
			return obs, nil
		}
	}

	obs, err := c.fetchRemote(ctx, city, now)
	if err != nil {
		// Remote down: fall back to the bucket's cached response, if any.
		if c.cache != nil {
			if cached, ok, cacheErr := c.cache.Get(ctx, city, bucket); cacheErr == nil && ok {
				return cached, nil
			}
		}
		return weather.Observation{}, errors.NewCollaboratorUnavailable("weather-api", err)
	}

	if c.cache != nil {
		// Best-effort: a cache write failure must not fail the fetch.
		_ = c.cache.Put(ctx, city, bucket, obs, now)
	}
	return obs, nil
}

// bucket formats the cache time bucket for a moment.
func (c *Client) bucket(now time.Time) string {
	return now.UTC().Truncate(c.bucketWidth).Format("2006-01-02T15:04")
}

// owmResponse is the subset of the OpenWeatherMap payload we consume.
type owmResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Rain map[string]float64 `json:"rain"`
	Snow map[string]float64 `json:"snow"`
	Dt   int64              `json:"dt"`
}

// fetchRemote performs the HTTP request with retries, exponential backoff,
// and a circuit breaker, then maps the payload onto the condition enum.
func (c *Client) fetchRemote(ctx context.Context, city string, now time.Time) (weather.Observation, error) {
	if c.apiKey == "" {
		return weather.Observation{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")
	endpoint := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())

	resp, err := c.doWithResilience(ctx, endpoint)
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return weather.Observation{}, fmt.Errorf("response carries no weather conditions")
	}

	cond, err := weather.Classify(payload.Weather[0].Description)
	if err != nil {
		// Fall back to the coarser "main" group before giving up.
		cond, err = weather.Classify(payload.Weather[0].Main)
		if err != nil {
			return weather.Observation{}, err
		}
	}

	ts := now
	if payload.Dt > 0 {
		ts = time.Unix(payload.Dt, 0).UTC()
	}

	return weather.Observation{
		TemperatureC:  payload.Main.Temp,
		Condition:     cond,
		Precipitation: len(payload.Rain) > 0 || len(payload.Snow) > 0 || cond == weather.Rainy || cond == weather.Snowy,
		Timestamp:     ts,
	}, nil
}

var (
	errRateLimited = stderrors.New("rate limited")
	errServerError = stderrors.New("server error")
	errUnexpected  = stderrors.New("unexpected status code")
	errCircuitOpen = stderrors.New("circuit breaker open")
)

// doWithResilience executes the GET request with retries, exponential
// backoff, and the circuit breaker.
func (c *Client) doWithResilience(ctx context.Context, endpoint string) (*http.Response, error) {
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		result, err := c.circuit.Execute(func() (interface{}, error) {
			resp, execErr := c.httpClient.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, errServerError
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}
			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		// If circuit is open, propagate immediately.
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= c.backoff.maxRetries {
			return nil, lastErr
		}

		delay := c.backoff.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.backoff.maxInterval && c.backoff.maxInterval > 0 {
			delay = c.backoff.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
