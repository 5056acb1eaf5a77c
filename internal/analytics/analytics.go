// Package analytics derives longitudinal statistics from a snapshot of
// journal entries. Every function is pure: it reads the snapshot, never
// mutates it, and takes an explicit reference time wherever "today" matters.
package analytics

import (
	"sort"
	"time"

	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// MoodDistribution counts entries per mood tag. An entry with multiple tags
// contributes to each of them.
func MoodDistribution(entries []journal.Entry) map[mood.Mood]int {
	dist := make(map[mood.Mood]int)
	for _, e := range entries {
		for _, m := range e.MoodTags {
			dist[m]++
		}
	}
	return dist
}

// TimelinePoint is one weather observation on the timeline.
type TimelinePoint struct {
	Date        time.Time         `json:"date"`
	Temperature float64           `json:"temperature"`
	Condition   weather.Condition `json:"condition"`
}

// WeatherTimeline returns one point per entry, sorted by creation time.
func WeatherTimeline(entries []journal.Entry) []TimelinePoint {
	sorted := sortedByDate(entries)
	points := make([]TimelinePoint, len(sorted))
	for i, e := range sorted {
		points[i] = TimelinePoint{
			Date:        e.CreatedAt,
			Temperature: e.Weather.TemperatureC,
			Condition:   e.Weather.Condition,
		}
	}
	return points
}

// DayActivity is the writing activity on a single calendar day.
type DayActivity struct {
	Entries int `json:"entries"`
	Words   int `json:"words"`
}

// ActivityCalendar maps calendar dates (UTC, 2006-01-02) to that day's entry
// count and total word count, for heatmap rendering.
func ActivityCalendar(entries []journal.Entry) map[string]DayActivity {
	calendar := make(map[string]DayActivity)
	for _, e := range entries {
		day := calendar[e.Day()]
		day.Entries++
		day.Words += e.WordCount
		calendar[e.Day()] = day
	}
	return calendar
}

// CorrelationMatrix counts (condition, mood) co-occurrence across entries:
// cell (c, m) is the number of entries with condition c carrying mood tag m.
type CorrelationMatrix struct {
	Conditions []weather.Condition `json:"conditions"`
	Moods      []mood.Mood         `json:"moods"`
	counts     map[weather.Condition]map[mood.Mood]int
}

// Cell returns the co-occurrence count for a condition and mood.
func (m *CorrelationMatrix) Cell(c weather.Condition, md mood.Mood) int {
	return m.counts[c][md]
}

// Rows renders the matrix as plain tabular data (one row per condition, one
// column per mood) for the presentation collaborator.
func (m *CorrelationMatrix) Rows() [][]int {
	rows := make([][]int, len(m.Conditions))
	for i, c := range m.Conditions {
		row := make([]int, len(m.Moods))
		for j, md := range m.Moods {
			row[j] = m.counts[c][md]
		}
		rows[i] = row
	}
	return rows
}

// WeatherMoodCorrelation builds the correlation matrix over all entries.
// Axes cover the full enums in canonical order, so cells with zero
// co-occurrence are present (as zeros) rather than absent.
func WeatherMoodCorrelation(entries []journal.Entry) *CorrelationMatrix {
	counts := make(map[weather.Condition]map[mood.Mood]int, len(weather.Conditions))
	for _, c := range weather.Conditions {
		counts[c] = make(map[mood.Mood]int)
	}

	for _, e := range entries {
		row, ok := counts[e.Weather.Condition]
		if !ok {
			continue
		}
		for _, m := range e.MoodTags {
			row[m]++
		}
	}

	return &CorrelationMatrix{
		Conditions: weather.Conditions,
		Moods:      mood.All(),
		counts:     counts,
	}
}

// sortedByDate returns a copy of entries ordered by CreatedAt ascending.
func sortedByDate(entries []journal.Entry) []journal.Entry {
	out := make([]journal.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
