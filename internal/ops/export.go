package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// ExportInput contains parameters for the export operation.
type ExportInput struct {
	// Path is the destination file. Empty means a timestamped file under the
	// default export directory.
	Path string `json:"path,omitempty"`
}

// ExportOutput describes the completed export.
type ExportOutput struct {
	Path       string    `json:"path"`
	Count      int       `json:"count"`
	ExportedAt time.Time `json:"exported_at"`
}

// exportRecord is the JSONL line shape: one self-contained record per entry.
type exportRecord struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Weather   exportWeather `json:"weather"`
	MoodTags  []mood.Mood   `json:"mood_tags"`
	Prompt    string        `json:"prompt_text"`
	Body      string        `json:"body"`
	WordCount int           `json:"word_count"`
}

type exportWeather struct {
	Temperature   float64           `json:"temperature"`
	Condition     weather.Condition `json:"condition"`
	Precipitation bool              `json:"precipitation"`
}

// Export writes every entry, insertion order, as JSON Lines. The file is
// written to a temp path and renamed into place so a failed export never
// leaves a truncated file behind.
func Export(store *journal.Store, clock clockwork.Clock, exportDir string, input ExportInput) (*ExportOutput, error) {
	now := clock.Now().UTC()

	path := strings.TrimSpace(input.Path)
	if path == "" {
		if exportDir == "" {
			return nil, errors.NewInvalidRequest("export path is required")
		}
		path = filepath.Join(exportDir, fmt.Sprintf("skymemo-%s.jsonl", now.Format("20060102-150405")))
	}

	entries := store.All()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.jsonl")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	for _, e := range entries {
		if err := enc.Encode(toExportRecord(e)); err != nil {
			tmp.Close()
			return nil, errors.NewInternal(err)
		}
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.NewInternal(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &ExportOutput{
		Path:       path,
		Count:      len(entries),
		ExportedAt: now,
	}, nil
}

func toExportRecord(e journal.Entry) exportRecord {
	return exportRecord{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Weather: exportWeather{
			Temperature:   e.Weather.TemperatureC,
			Condition:     e.Weather.Condition,
			Precipitation: e.Weather.Precipitation,
		},
		MoodTags:  e.MoodTags,
		Prompt:    e.PromptText,
		Body:      e.Body,
		WordCount: e.WordCount,
	}
}
