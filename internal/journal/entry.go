package journal

import (
	"strings"
	"time"

	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// Entry is a single journal entry. Created once on save; immutable
// thereafter except for explicit deletion. WordCount is always derived from
// Body so the two can never drift.
type Entry struct {
	// ID is a ULID that uniquely identifies this entry for the lifetime of
	// the store; ids are never reused, even after deletion.
	ID string `json:"id"`

	// CreatedAt is the entry creation time.
	CreatedAt time.Time `json:"created_at"`

	// Weather is the observation that triggered the prompt.
	Weather weather.Observation `json:"weather"`

	// MoodTags is the set of moods tagged on the entry; it always contains
	// at least the chosen prompt's mood.
	MoodTags []mood.Mood `json:"mood_tags"`

	// PromptText is the fully substituted prompt the user selected.
	PromptText string `json:"prompt_text"`

	// Body is the user-written text.
	Body string `json:"body"`

	// WordCount is the count of whitespace-delimited tokens in Body.
	WordCount int `json:"word_count"`
}

// CountWords counts whitespace-delimited tokens.
func CountWords(body string) int {
	return len(strings.Fields(body))
}

// Day returns the entry's calendar date in UTC, formatted 2006-01-02.
func (e Entry) Day() string {
	return e.CreatedAt.UTC().Format("2006-01-02")
}

// HasMood reports whether the entry carries the given mood tag.
func (e Entry) HasMood(m mood.Mood) bool {
	for _, t := range e.MoodTags {
		if t == m {
			return true
		}
	}
	return false
}

// clone returns a copy of the entry with its own tag slice, so callers can
// never mutate store-owned state.
func (e Entry) clone() Entry {
	out := e
	out.MoodTags = make([]mood.Mood, len(e.MoodTags))
	copy(out.MoodTags, e.MoodTags)
	return out
}

// cloneAll copies a slice of entries.
func cloneAll(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}
	return out
}
