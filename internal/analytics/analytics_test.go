package analytics

import (
	"testing"
	"time"

	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

var day0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// entryOn builds an entry created dayOffset days after day0.
func entryOn(dayOffset int, words int, cond weather.Condition, moods ...mood.Mood) journal.Entry {
	body := ""
	for i := 0; i < words; i++ {
		if i > 0 {
			body += " "
		}
		body += "word"
	}
	return journal.Entry{
		ID:        time.Duration(dayOffset).String(),
		CreatedAt: day0.AddDate(0, 0, dayOffset),
		Weather:   weather.Observation{TemperatureC: 10, Condition: cond},
		MoodTags:  moods,
		Body:      body,
		WordCount: words,
	}
}

func TestMoodDistribution(t *testing.T) {
	entries := []journal.Entry{
		entryOn(0, 5, weather.Sunny, mood.Energetic, mood.Hopeful),
		entryOn(1, 5, weather.Rainy, mood.Reflective),
		entryOn(2, 5, weather.Rainy, mood.Reflective, mood.Cozy),
	}

	dist := MoodDistribution(entries)
	if dist[mood.Reflective] != 2 {
		t.Errorf("reflective = %d, want 2", dist[mood.Reflective])
	}
	if dist[mood.Energetic] != 1 || dist[mood.Hopeful] != 1 || dist[mood.Cozy] != 1 {
		t.Errorf("distribution = %v", dist)
	}
	if _, ok := dist[mood.Calm]; ok {
		t.Error("untagged mood present in distribution")
	}
}

func TestWeatherMoodCorrelation(t *testing.T) {
	entries := []journal.Entry{
		entryOn(0, 5, weather.Sunny, mood.Energetic, mood.Hopeful),
		entryOn(1, 5, weather.Sunny, mood.Energetic),
		entryOn(2, 5, weather.Rainy, mood.Reflective),
	}

	m := WeatherMoodCorrelation(entries)
	if got := m.Cell(weather.Sunny, mood.Energetic); got != 2 {
		t.Errorf("sunny×energetic = %d, want 2", got)
	}
	if got := m.Cell(weather.Sunny, mood.Hopeful); got != 1 {
		t.Errorf("sunny×hopeful = %d, want 1", got)
	}
	if got := m.Cell(weather.Rainy, mood.Reflective); got != 1 {
		t.Errorf("rainy×reflective = %d, want 1", got)
	}

	// Full enum axes, zero cells present.
	if len(m.Conditions) != len(weather.Conditions) {
		t.Errorf("condition axis = %d, want %d", len(m.Conditions), len(weather.Conditions))
	}
	if len(m.Moods) != len(mood.All()) {
		t.Errorf("mood axis = %d, want %d", len(m.Moods), len(mood.All()))
	}
	if got := m.Cell(weather.Snowy, mood.Dynamic); got != 0 {
		t.Errorf("empty cell = %d, want 0", got)
	}

	rows := m.Rows()
	if len(rows) != len(m.Conditions) || len(rows[0]) != len(m.Moods) {
		t.Errorf("rows shape %dx%d", len(rows), len(rows[0]))
	}
}

func TestWeatherTimelineSorted(t *testing.T) {
	entries := []journal.Entry{
		entryOn(2, 5, weather.Snowy),
		entryOn(0, 5, weather.Sunny),
		entryOn(1, 5, weather.Rainy),
	}

	points := WeatherTimeline(entries)
	if len(points) != 3 {
		t.Fatalf("got %d points", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date.Before(points[i-1].Date) {
			t.Errorf("timeline out of order at %d", i)
		}
	}
	if points[0].Condition != weather.Sunny {
		t.Errorf("first point = %s", points[0].Condition)
	}
}

func TestActivityCalendar(t *testing.T) {
	entries := []journal.Entry{
		entryOn(0, 10, weather.Sunny, mood.Calm),
		entryOn(0, 5, weather.Sunny, mood.Calm),
		entryOn(2, 7, weather.Rainy, mood.Reflective),
	}

	cal := ActivityCalendar(entries)
	d0 := cal[day0.Format("2006-01-02")]
	if d0.Entries != 2 || d0.Words != 15 {
		t.Errorf("day0 = %+v, want 2 entries / 15 words", d0)
	}
	if len(cal) != 2 {
		t.Errorf("calendar has %d days, want 2", len(cal))
	}
}

func TestComputeStreaks(t *testing.T) {
	entries := []journal.Entry{
		entryOn(0, 5, weather.Sunny, mood.Calm),
		entryOn(1, 5, weather.Sunny, mood.Calm),
		entryOn(2, 5, weather.Sunny, mood.Calm),
	}

	// Ref on the last occupied day: streak runs back through all three.
	s := ComputeStreaks(entries, day0.AddDate(0, 0, 2))
	if s.Current != 3 || s.Longest != 3 {
		t.Errorf("streaks = %+v, want current 3 longest 3", s)
	}

	// Ref two days after the last entry: current resets, longest stands.
	s = ComputeStreaks(entries, day0.AddDate(0, 0, 4))
	if s.Current != 0 || s.Longest != 3 {
		t.Errorf("streaks = %+v, want current 0 longest 3", s)
	}
}

func TestComputeStreaksGapsAndDuplicates(t *testing.T) {
	entries := []journal.Entry{
		entryOn(0, 5, weather.Sunny, mood.Calm),
		entryOn(0, 5, weather.Sunny, mood.Calm), // same day occupies once
		entryOn(1, 5, weather.Sunny, mood.Calm),
		entryOn(4, 5, weather.Sunny, mood.Calm),
		entryOn(5, 5, weather.Sunny, mood.Calm),
		entryOn(6, 5, weather.Sunny, mood.Calm),
	}

	s := ComputeStreaks(entries, day0.AddDate(0, 0, 6))
	if s.Current != 3 {
		t.Errorf("current = %d, want 3", s.Current)
	}
	if s.Longest != 3 {
		t.Errorf("longest = %d, want 3", s.Longest)
	}

	if s := ComputeStreaks(nil, day0); s.Current != 0 || s.Longest != 0 {
		t.Errorf("empty streaks = %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	entries := []journal.Entry{
		entryOn(0, 10, weather.Rainy, mood.Reflective),
		entryOn(1, 20, weather.Rainy, mood.Reflective, mood.Cozy),
		entryOn(2, 30, weather.Sunny, mood.Energetic),
	}

	s := Summarize(entries, day0.AddDate(0, 0, 2))
	if s.TotalEntries != 3 || s.TotalWords != 60 {
		t.Errorf("totals = %d/%d", s.TotalEntries, s.TotalWords)
	}
	if s.AvgWordsPerEntry != 20 {
		t.Errorf("avg = %v, want 20", s.AvgWordsPerEntry)
	}
	if s.MostCommonMood != mood.Reflective {
		t.Errorf("most common mood = %s, want reflective", s.MostCommonMood)
	}
	if s.MostCommonCondition != weather.Rainy {
		t.Errorf("most common condition = %s, want rainy", s.MostCommonCondition)
	}
	if s.Streaks.Current != 3 {
		t.Errorf("streak = %d, want 3", s.Streaks.Current)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, day0)
	if s.TotalEntries != 0 || s.MostCommonMood != "" || s.MostCommonCondition != "" {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestWordCountTrend(t *testing.T) {
	entries := []journal.Entry{
		entryOn(0, 10, weather.Sunny, mood.Calm),
		entryOn(0, 10, weather.Sunny, mood.Calm),
		entryOn(1, 30, weather.Sunny, mood.Calm),
		entryOn(2, 40, weather.Sunny, mood.Calm),
	}

	points := WordCountTrend(entries, 2)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}

	// Day totals: 20, 30, 40. Trailing window of 2 days.
	wantWords := []int{20, 30, 40}
	wantAvg := []float64{20, 25, 35}
	for i := range points {
		if points[i].Words != wantWords[i] {
			t.Errorf("day %d words = %d, want %d", i, points[i].Words, wantWords[i])
		}
		if points[i].MovingAvg != wantAvg[i] {
			t.Errorf("day %d avg = %v, want %v", i, points[i].MovingAvg, wantAvg[i])
		}
	}

	// Dates ascend.
	for i := 1; i < len(points); i++ {
		if points[i].Date <= points[i-1].Date {
			t.Errorf("dates not ascending: %v", points)
		}
	}
}

func TestWordCountTrendDefaultWindow(t *testing.T) {
	entries := []journal.Entry{entryOn(0, 10, weather.Sunny, mood.Calm)}
	points := WordCountTrend(entries, 0)
	if len(points) != 1 || points[0].MovingAvg != 10 {
		t.Errorf("points = %v", points)
	}
}
