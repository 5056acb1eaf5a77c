package ops

import (
	"github.com/jonboulle/clockwork"

	"github.com/hpungsan/skymemo/internal/analytics"
	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// StatsInput contains parameters for the stats operation.
type StatsInput struct{}

// CorrelationTable is the weather-mood correlation matrix in tabular form:
// one row per condition, one column per mood, full enums on both axes.
type CorrelationTable struct {
	Conditions []weather.Condition `json:"conditions"`
	Moods      []mood.Mood         `json:"moods"`
	Rows       [][]int             `json:"rows"`
}

// StatsOutput contains the aggregate statistics over the journal.
type StatsOutput struct {
	Summary          analytics.Summary `json:"summary"`
	MoodDistribution map[mood.Mood]int `json:"mood_distribution"`
	Correlation      CorrelationTable  `json:"correlation"`
}

// Stats computes summary statistics, the mood distribution, and the
// weather-mood correlation matrix. The clock supplies "today" for the
// current-streak calculation.
func Stats(store *journal.Store, clock clockwork.Clock, _ StatsInput) (*StatsOutput, error) {
	entries := store.All()

	matrix := analytics.WeatherMoodCorrelation(entries)
	return &StatsOutput{
		Summary:          analytics.Summarize(entries, clock.Now()),
		MoodDistribution: analytics.MoodDistribution(entries),
		Correlation: CorrelationTable{
			Conditions: matrix.Conditions,
			Moods:      matrix.Moods,
			Rows:       matrix.Rows(),
		},
	}, nil
}
