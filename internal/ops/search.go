package ops

import (
	"github.com/hpungsan/skymemo/internal/journal"
)

// SearchInput contains parameters for the search operation.
type SearchInput struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// SearchOutput contains the matching entries and pagination info.
type SearchOutput struct {
	Entries    []journal.Entry `json:"entries"`
	Pagination Pagination      `json:"pagination"`
}

// Search returns entries whose body or prompt text contains the query,
// case-insensitive.
func Search(store *journal.Store, input SearchInput) (*SearchOutput, error) {
	entries, err := store.Search(input.Query)
	if err != nil {
		return nil, err
	}

	items, pg := page(entries, input.Limit, input.Offset)
	return &SearchOutput{Entries: items, Pagination: pg}, nil
}
