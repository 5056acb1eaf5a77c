package ops

import (
	"strings"

	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// FilterInput contains parameters for the filter operation. Empty fields
// match everything; set fields are AND-combined.
type FilterInput struct {
	Mood      string `json:"mood,omitempty"`
	Condition string `json:"condition,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// FilterOutput contains the matching entries and pagination info.
type FilterOutput struct {
	Entries    []journal.Entry `json:"entries"`
	Pagination Pagination      `json:"pagination"`
}

// Filter returns entries matching the given mood tag and/or weather condition.
func Filter(store *journal.Store, input FilterInput) (*FilterOutput, error) {
	var m *mood.Mood
	if s := strings.ToLower(strings.TrimSpace(input.Mood)); s != "" {
		mm := mood.Mood(s)
		m = &mm
	}

	var cond *weather.Condition
	if s := strings.TrimSpace(input.Condition); s != "" {
		c, err := weather.ParseCondition(s)
		if err != nil {
			return nil, err
		}
		cond = &c
	}

	entries, err := store.Filter(m, cond)
	if err != nil {
		return nil, err
	}

	items, pg := page(entries, input.Limit, input.Offset)
	return &FilterOutput{Entries: items, Pagination: pg}, nil
}
