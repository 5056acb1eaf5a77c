package journal

import (
	"context"
	"crypto/rand"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// Persister is the persistence collaborator. Load returns the full ordered
// entry sequence at startup (an empty sequence when no prior data exists,
// never an error for that case). Flush persists the full updated sequence
// atomically after every mutation.
type Persister interface {
	Load(ctx context.Context) ([]Entry, error)
	Flush(ctx context.Context, entries []Entry) error
}

// SortKey selects the ordering for List.
type SortKey string

const (
	SortByDate      SortKey = "date"
	SortByWordCount SortKey = "word_count"
)

// Store owns the in-memory ordered entry collection. Iteration order is
// insertion order unless a sort key is requested. Single-writer: the
// surrounding application is single-user, single-process, so no locking.
type Store struct {
	persister Persister
	clock     clockwork.Clock
	entries   []Entry
}

// NewStore creates a Store and loads the persisted entry sequence.
func NewStore(ctx context.Context, persister Persister, clock clockwork.Clock) (*Store, error) {
	entries, err := persister.Load(ctx)
	if err != nil {
		return nil, persistenceFailure(err)
	}
	return &Store{
		persister: persister,
		clock:     clock,
		entries:   entries,
	}, nil
}

// CreateParams contains the fields for a new entry.
type CreateParams struct {
	Weather    weather.Observation
	MoodTags   []mood.Mood
	PromptText string
	Body       string
}

// Create appends a new entry with a fresh ULID and the current timestamp,
// computing WordCount from the body, then flushes the full sequence. A blank
// body fails with EMPTY_BODY. When the persister fails, the in-memory
// collection is left unchanged.
func (s *Store) Create(ctx context.Context, params CreateParams) (*Entry, error) {
	if strings.TrimSpace(params.Body) == "" {
		return nil, errors.NewEmptyBody()
	}
	if err := params.Weather.Validate(); err != nil {
		return nil, err
	}
	tags := dedupeTags(params.MoodTags)
	if len(tags) == 0 {
		return nil, errors.NewInvalidRequest("at least one mood tag is required")
	}
	for _, t := range tags {
		if !t.Valid() {
			return nil, errors.NewInvalidRequest("unknown mood tag: " + string(t))
		}
	}

	now := s.clock.Now()
	id, err := newULID(now)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	entry := Entry{
		ID:         id,
		CreatedAt:  now,
		Weather:    params.Weather,
		MoodTags:   tags,
		PromptText: params.PromptText,
		Body:       params.Body,
		WordCount:  CountWords(params.Body),
	}

	s.entries = append(s.entries, entry)
	if err := s.persister.Flush(ctx, s.entries); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return nil, persistenceFailure(err)
	}

	out := entry.clone()
	return &out, nil
}

// Delete removes the entry with the given id and flushes. It reports whether
// a removal occurred; an unknown id returns (false, nil) rather than an
// error. When the persister fails, the entry is restored at its original
// position.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	removed := s.entries[idx]
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	if err := s.persister.Flush(ctx, s.entries); err != nil {
		s.entries = append(s.entries[:idx], append([]Entry{removed}, s.entries[idx:]...)...)
		return false, persistenceFailure(err)
	}
	return true, nil
}

// Get returns a copy of the entry with the given id.
func (s *Store) Get(id string) (*Entry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			out := e.clone()
			return &out, nil
		}
	}
	return nil, errors.NewNotFound(id)
}

// All returns copies of every entry in insertion order.
func (s *Store) All() []Entry {
	return cloneAll(s.entries)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// List returns copies of every entry ordered by the given sort key.
func (s *Store) List(key SortKey, descending bool) ([]Entry, error) {
	out := cloneAll(s.entries)
	switch key {
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			if descending {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortByWordCount:
		sort.SliceStable(out, func(i, j int) bool {
			if descending {
				return out[i].WordCount > out[j].WordCount
			}
			return out[i].WordCount < out[j].WordCount
		})
	default:
		return nil, errors.NewInvalidRequest("sort key must be one of: date, word_count")
	}
	return out, nil
}

// Search returns entries whose body or prompt text contains the query,
// case-insensitive, in insertion order. No results is an empty slice, not an
// error.
func (s *Store) Search(query string) ([]Entry, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	matches := make([]Entry, 0)
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Body), q) || strings.Contains(strings.ToLower(e.PromptText), q) {
			matches = append(matches, e.clone())
		}
	}
	return matches, nil
}

// Filter returns entries matching the given mood tag and/or weather
// condition, AND-combined, in insertion order. Nil filters match everything.
func (s *Store) Filter(m *mood.Mood, cond *weather.Condition) ([]Entry, error) {
	if m != nil && !m.Valid() {
		return nil, errors.NewInvalidRequest("unknown mood tag: " + string(*m))
	}
	if cond != nil && !cond.Valid() {
		return nil, errors.NewInvalidWeatherKind(string(*cond))
	}

	matches := make([]Entry, 0)
	for _, e := range s.entries {
		if m != nil && !e.HasMood(*m) {
			continue
		}
		if cond != nil && e.Weather.Condition != *cond {
			continue
		}
		matches = append(matches, e.clone())
	}
	return matches, nil
}

// newULID generates a ULID stamped with the given time.
func newULID(now time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// dedupeTags removes duplicate moods while preserving first-seen order.
func dedupeTags(tags []mood.Mood) []mood.Mood {
	seen := make(map[mood.Mood]bool, len(tags))
	out := make([]mood.Mood, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// persistenceFailure reports a persister error as a collaborator failure,
// preserving an already-shaped SkyError.
func persistenceFailure(err error) error {
	if errors.Is(err, errors.ErrCollaboratorUnavailable) {
		return err
	}
	return errors.NewCollaboratorUnavailable("persistence", err)
}
