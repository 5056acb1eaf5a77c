package ops

import (
	"github.com/hpungsan/skymemo/internal/journal"
)

// ListInput contains parameters for the list operation.
type ListInput struct {
	Sort       string `json:"sort,omitempty"` // "date" (default) or "word_count"
	Descending bool   `json:"descending,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// ListOutput contains the listed entries and pagination info.
type ListOutput struct {
	Entries    []journal.Entry `json:"entries"`
	Pagination Pagination      `json:"pagination"`
}

// List returns a sorted window over the journal.
func List(store *journal.Store, input ListInput) (*ListOutput, error) {
	key := journal.SortKey(input.Sort)
	if input.Sort == "" {
		key = journal.SortByDate
	}

	entries, err := store.List(key, input.Descending)
	if err != nil {
		return nil, err
	}

	items, pg := page(entries, input.Limit, input.Offset)
	return &ListOutput{Entries: items, Pagination: pg}, nil
}
