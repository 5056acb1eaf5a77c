package analytics

import (
	"time"

	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// Summary aggregates the headline statistics over the snapshot.
type Summary struct {
	TotalEntries        int               `json:"total_entries"`
	TotalWords          int               `json:"total_words"`
	AvgWordsPerEntry    float64           `json:"avg_words_per_entry"`
	MostCommonMood      mood.Mood         `json:"most_common_mood,omitempty"`
	MostCommonCondition weather.Condition `json:"most_common_condition,omitempty"`
	Streaks             Streaks           `json:"streaks"`
}

// Summarize computes the headline statistics. Ties for most-common mood are
// broken by the mood priority order; ties for most-common condition by the
// canonical condition order.
func Summarize(entries []journal.Entry, ref time.Time) Summary {
	s := Summary{
		TotalEntries: len(entries),
		Streaks:      ComputeStreaks(entries, ref),
	}
	if len(entries) == 0 {
		return s
	}

	for _, e := range entries {
		s.TotalWords += e.WordCount
	}
	s.AvgWordsPerEntry = float64(s.TotalWords) / float64(s.TotalEntries)

	moodCounts := MoodDistribution(entries)
	best := -1
	for _, m := range mood.All() {
		if moodCounts[m] > best {
			best = moodCounts[m]
			s.MostCommonMood = m
		}
	}
	if best <= 0 {
		s.MostCommonMood = ""
	}

	condCounts := make(map[weather.Condition]int)
	for _, e := range entries {
		condCounts[e.Weather.Condition]++
	}
	best = -1
	for _, c := range weather.Conditions {
		if condCounts[c] > best {
			best = condCounts[c]
			s.MostCommonCondition = c
		}
	}
	if best <= 0 {
		s.MostCommonCondition = ""
	}

	return s
}
