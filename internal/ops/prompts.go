package ops

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/prompt"
	"github.com/hpungsan/skymemo/internal/weather"
)

// PromptsInput contains parameters for the prompts operation. Either City is
// set (the observation is fetched) or Temperature and Condition describe a
// manual observation.
type PromptsInput struct {
	City          string   `json:"city,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Condition     string   `json:"condition,omitempty"`
	Precipitation bool     `json:"precipitation,omitempty"`
}

// PromptsOutput contains the observation, its mood ranking, and the generated
// prompts.
type PromptsOutput struct {
	Weather     weather.Observation      `json:"weather"`
	Description string                   `json:"description"`
	Ranking     mood.Ranking             `json:"ranking"`
	Prompts     []prompt.GeneratedPrompt `json:"prompts"`
}

// Prompts resolves a weather observation (fetched or manual), ranks moods for
// it, and generates journaling prompts. The generator's temperature unit
// drives the description.
func Prompts(ctx context.Context, fetcher WeatherFetcher, gen *prompt.Generator, clock clockwork.Clock, unit string, input PromptsInput) (*PromptsOutput, error) {
	obs, err := resolveObservation(ctx, fetcher, clock, input)
	if err != nil {
		return nil, err
	}

	ranking, err := mood.Rank(obs)
	if err != nil {
		return nil, err
	}

	prompts, err := gen.Generate(obs, ranking)
	if err != nil {
		return nil, err
	}

	return &PromptsOutput{
		Weather:     obs,
		Description: weather.Describe(obs, unit),
		Ranking:     ranking,
		Prompts:     prompts,
	}, nil
}

// resolveObservation builds the observation from the input: a city triggers a
// fetch; otherwise temperature and condition must both be given. A manual
// condition may be free text; it is classified onto the condition enum.
func resolveObservation(ctx context.Context, fetcher WeatherFetcher, clock clockwork.Clock, input PromptsInput) (weather.Observation, error) {
	if city := strings.TrimSpace(input.City); city != "" {
		if fetcher == nil {
			return weather.Observation{}, errors.NewCollaboratorUnavailable("weather-api", nil)
		}
		return fetcher.Fetch(ctx, city)
	}

	if input.Temperature == nil || strings.TrimSpace(input.Condition) == "" {
		return weather.Observation{}, errors.NewInvalidRequest("either city or both temperature and condition are required")
	}

	cond, err := weather.Classify(input.Condition)
	if err != nil {
		return weather.Observation{}, err
	}

	return weather.Observation{
		TemperatureC:  *input.Temperature,
		Condition:     cond,
		Precipitation: input.Precipitation,
		Timestamp:     clock.Now().UTC(),
	}, nil
}
