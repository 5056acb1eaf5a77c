package ops_test

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/skymemo/internal/db"
	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/ops"
	"github.com/hpungsan/skymemo/internal/prompt"
	"github.com/hpungsan/skymemo/internal/weather"
)

// TestJournalWorkflow drives the full lifecycle through the ops layer over a
// real SQLite persister: prompts, create, list, search, filter, get, stats,
// trends, export, delete.
func TestJournalWorkflow(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	database, err := db.Init(dir)
	require.NoError(t, err)
	defer database.Close()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	store, err := journal.NewStore(ctx, db.NewPersister(database), clock)
	require.NoError(t, err)

	gen := prompt.NewGenerator("celsius")

	// Prompts from a manual observation. No fetcher is needed.
	temp := 2.0
	promptsOut, err := ops.Prompts(ctx, nil, gen, clock, "celsius", ops.PromptsInput{
		Temperature:   &temp,
		Condition:     "light rain",
		Precipitation: true,
	})
	require.NoError(t, err)
	require.Equal(t, weather.Rainy, promptsOut.Weather.Condition)
	require.Equal(t, mood.Reflective, promptsOut.Ranking.Primary())
	require.GreaterOrEqual(t, len(promptsOut.Prompts), prompt.MinPrompts)
	require.LessOrEqual(t, len(promptsOut.Prompts), prompt.MaxPrompts)
	require.True(t, promptsOut.Prompts[0].IsPrimary)

	// Create an entry answering the first prompt.
	created, err := ops.Create(ctx, store, ops.CreateInput{
		Temperature:   2.0,
		Condition:     "rainy",
		Precipitation: true,
		ObservedAt:    clock.Now(),
		MoodTags:      []string{"Reflective", "cozy"},
		PromptText:    promptsOut.Prompts[0].Text,
		Body:          "Rain all day. I stayed in and watched the drops race down the glass.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Entry.ID)
	require.Equal(t, []mood.Mood{mood.Reflective, mood.Cozy}, created.Entry.MoodTags)
	require.Equal(t, 14, created.Entry.WordCount)

	clock.Advance(24 * time.Hour)
	second, err := ops.Create(ctx, store, ops.CreateInput{
		Temperature: 27,
		Condition:   "sunny",
		MoodTags:    []string{"energetic"},
		Body:        "Sunshine at last. Went for a long run.",
	})
	require.NoError(t, err)

	// List: default sort is date, two entries.
	listOut, err := ops.List(store, ops.ListInput{})
	require.NoError(t, err)
	require.Len(t, listOut.Entries, 2)
	require.Equal(t, 2, listOut.Pagination.Total)
	require.False(t, listOut.Pagination.HasMore)
	require.Equal(t, created.Entry.ID, listOut.Entries[0].ID)

	// Descending flips the order; limit 1 pages.
	listOut, err = ops.List(store, ops.ListInput{Descending: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, listOut.Entries, 1)
	require.Equal(t, second.Entry.ID, listOut.Entries[0].ID)
	require.True(t, listOut.Pagination.HasMore)

	// Search matches body text case-insensitively.
	searchOut, err := ops.Search(store, ops.SearchInput{Query: "RAIN"})
	require.NoError(t, err)
	require.Len(t, searchOut.Entries, 1)
	require.Equal(t, created.Entry.ID, searchOut.Entries[0].ID)

	// Filter by mood and by condition, AND-combined.
	filterOut, err := ops.Filter(store, ops.FilterInput{Mood: "cozy", Condition: "rainy"})
	require.NoError(t, err)
	require.Len(t, filterOut.Entries, 1)

	filterOut, err = ops.Filter(store, ops.FilterInput{Mood: "cozy", Condition: "sunny"})
	require.NoError(t, err)
	require.Empty(t, filterOut.Entries)

	// Get round-trips the entry.
	getOut, err := ops.Get(store, ops.GetInput{ID: created.Entry.ID})
	require.NoError(t, err)
	require.Equal(t, created.Entry.Body, getOut.Entry.Body)

	// Stats over both entries.
	statsOut, err := ops.Stats(store, clock, ops.StatsInput{})
	require.NoError(t, err)
	require.Equal(t, 2, statsOut.Summary.TotalEntries)
	require.Equal(t, 2, statsOut.Summary.Streaks.Current)
	require.Equal(t, 1, statsOut.MoodDistribution[mood.Cozy])
	require.Equal(t, len(weather.Conditions), len(statsOut.Correlation.Rows))

	// Trends: two days of activity.
	trendsOut, err := ops.Trends(store, ops.TrendsInput{WindowDays: 7})
	require.NoError(t, err)
	require.Len(t, trendsOut.WordCountTrend, 2)
	require.Len(t, trendsOut.WeatherTimeline, 2)
	require.Len(t, trendsOut.Calendar, 2)

	// Export writes one JSONL line per entry.
	exportPath := filepath.Join(dir, "out.jsonl")
	exportOut, err := ops.Export(store, clock, dir, ops.ExportInput{Path: exportPath})
	require.NoError(t, err)
	require.Equal(t, 2, exportOut.Count)
	require.Equal(t, exportPath, exportOut.Path)

	f, err := os.Open(exportPath)
	require.NoError(t, err)
	defer f.Close()
	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		require.Contains(t, record, "id")
		require.Contains(t, record, "prompt_text")
		lines++
	}
	require.NoError(t, scanner.Err())
	require.Equal(t, 2, lines)

	// Delete the first entry, then get reports not found.
	delOut, err := ops.Delete(ctx, store, ops.DeleteInput{ID: created.Entry.ID})
	require.NoError(t, err)
	require.True(t, delOut.Deleted)

	_, err = ops.Get(store, ops.GetInput{ID: created.Entry.ID})
	require.True(t, errors.Is(err, errors.ErrNotFound))

	// A second store over the same database sees the surviving entry.
	store2, err := journal.NewStore(ctx, db.NewPersister(database), clock)
	require.NoError(t, err)
	listOut, err = ops.List(store2, ops.ListInput{})
	require.NoError(t, err)
	require.Len(t, listOut.Entries, 1)
	require.Equal(t, second.Entry.ID, listOut.Entries[0].ID)
}

func TestPromptsInputValidation(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	gen := prompt.NewGenerator("celsius")

	// Neither city nor a manual observation.
	_, err := ops.Prompts(ctx, nil, gen, clock, "celsius", ops.PromptsInput{})
	require.True(t, errors.Is(err, errors.ErrInvalidRequest))

	// City given but no fetch collaborator wired.
	_, err = ops.Prompts(ctx, nil, gen, clock, "celsius", ops.PromptsInput{City: "London"})
	require.True(t, errors.Is(err, errors.ErrCollaboratorUnavailable))

	// Manual condition that classifies to nothing.
	temp := 10.0
	_, err = ops.Prompts(ctx, nil, gen, clock, "celsius", ops.PromptsInput{Temperature: &temp, Condition: "volcanic"})
	require.True(t, errors.Is(err, errors.ErrInvalidWeatherKind))
}
