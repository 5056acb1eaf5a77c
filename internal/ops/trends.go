package ops

import (
	"github.com/hpungsan/skymemo/internal/analytics"
	"github.com/hpungsan/skymemo/internal/journal"
)

// TrendsInput contains parameters for the trends operation.
type TrendsInput struct {
	// WindowDays is the moving-average window; below 1 uses the default.
	WindowDays int `json:"window_days,omitempty"`
}

// TrendsOutput contains the longitudinal views over the journal.
type TrendsOutput struct {
	WordCountTrend  []analytics.TrendPoint           `json:"word_count_trend"`
	WeatherTimeline []analytics.TimelinePoint        `json:"weather_timeline"`
	Calendar        map[string]analytics.DayActivity `json:"calendar"`
}

// Trends computes the word-count trend, the weather timeline, and the
// activity calendar.
func Trends(store *journal.Store, input TrendsInput) (*TrendsOutput, error) {
	entries := store.All()
	return &TrendsOutput{
		WordCountTrend:  analytics.WordCountTrend(entries, input.WindowDays),
		WeatherTimeline: analytics.WeatherTimeline(entries),
		Calendar:        analytics.ActivityCalendar(entries),
	}, nil
}
