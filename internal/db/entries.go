package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/weather"
)

// Persister backs journal.Store with SQLite. Flush replaces the stored
// sequence inside a single transaction, so a subsequent Load can never
// observe a partial write.
type Persister struct {
	db *sql.DB
}

// NewPersister wraps an initialized database.
func NewPersister(database *sql.DB) *Persister {
	return &Persister{db: database}
}

// Load returns the full ordered entry sequence. A fresh database yields an
// empty sequence, not an error. Records carrying an unknown condition or
// mood fail the load rather than being silently carried forward.
func (p *Persister) Load(ctx context.Context) ([]journal.Entry, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, created_at, temperature, condition, precipitation,
			observed_at, mood_tags_json, prompt_text, body, word_count
		FROM entries
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	entries := make([]journal.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	return entries, nil
}

// Flush persists the full updated sequence atomically.
func (p *Persister) Flush(ctx context.Context, entries []journal.Entry) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("flush entries: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("flush entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (
			id, created_at, temperature, condition, precipitation,
			observed_at, mood_tags_json, prompt_text, body, word_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("flush entries: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		tagsJSON, err := json.Marshal(e.MoodTags)
		if err != nil {
			return fmt.Errorf("flush entries: %w", err)
		}
		precipitation := 0
		if e.Weather.Precipitation {
			precipitation = 1
		}
		_, err = stmt.ExecContext(ctx,
			e.ID,
			e.CreatedAt.UTC().Format(time.RFC3339Nano),
			e.Weather.TemperatureC,
			string(e.Weather.Condition),
			precipitation,
			e.Weather.Timestamp.UTC().Format(time.RFC3339Nano),
			string(tagsJSON),
			e.PromptText,
			e.Body,
			e.WordCount,
		)
		if err != nil {
			return fmt.Errorf("flush entries: %w", err)
		}
	}

	return tx.Commit()
}

// scanEntry reads one entry row and validates its enum fields.
func scanEntry(rows *sql.Rows) (journal.Entry, error) {
	var (
		e             journal.Entry
		createdAt     string
		condition     string
		precipitation int
		observedAt    string
		tagsJSON      string
	)
	if err := rows.Scan(
		&e.ID, &createdAt, &e.Weather.TemperatureC, &condition, &precipitation,
		&observedAt, &tagsJSON, &e.PromptText, &e.Body, &e.WordCount,
	); err != nil {
		return journal.Entry{}, fmt.Errorf("scan entry: %w", err)
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("entry %s: bad created_at: %w", e.ID, err)
	}
	e.CreatedAt = created

	observed, err := time.Parse(time.RFC3339Nano, observedAt)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("entry %s: bad observed_at: %w", e.ID, err)
	}
	e.Weather.Timestamp = observed

	cond, err := weather.ParseCondition(condition)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
	}
	e.Weather.Condition = cond
	e.Weather.Precipitation = precipitation != 0

	if err := json.Unmarshal([]byte(tagsJSON), &e.MoodTags); err != nil {
		return journal.Entry{}, fmt.Errorf("entry %s: bad mood_tags: %w", e.ID, err)
	}
	for _, t := range e.MoodTags {
		if !t.Valid() {
			return journal.Entry{}, fmt.Errorf("entry %s: unknown mood tag %q", e.ID, t)
		}
	}

	return e, nil
}
