package ops

import (
	"context"
	"strings"
	"time"

	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// CreateInput contains parameters for the create operation. The weather
// fields carry the observation the prompts were generated for.
type CreateInput struct {
	Temperature   float64   `json:"temperature"`
	Condition     string    `json:"condition"`
	Precipitation bool      `json:"precipitation,omitempty"`
	ObservedAt    time.Time `json:"observed_at,omitempty"`
	MoodTags      []string  `json:"mood_tags"`
	PromptText    string    `json:"prompt_text,omitempty"`
	Body          string    `json:"body"`
}

// CreateOutput contains the created entry.
type CreateOutput struct {
	Entry journal.Entry `json:"entry"`
}

// Create validates the input and appends a new journal entry.
func Create(ctx context.Context, store *journal.Store, input CreateInput) (*CreateOutput, error) {
	cond, err := weather.ParseCondition(input.Condition)
	if err != nil {
		return nil, err
	}

	tags := make([]mood.Mood, 0, len(input.MoodTags))
	for _, t := range input.MoodTags {
		tags = append(tags, mood.Mood(strings.ToLower(strings.TrimSpace(t))))
	}

	entry, err := store.Create(ctx, journal.CreateParams{
		Weather: weather.Observation{
			TemperatureC:  input.Temperature,
			Condition:     cond,
			Precipitation: input.Precipitation,
			Timestamp:     input.ObservedAt,
		},
		MoodTags:   tags,
		PromptText: input.PromptText,
		Body:       input.Body,
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Entry: *entry}, nil
}
