package ops

import (
	"strings"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/journal"
)

// GetInput contains parameters for the get operation.
type GetInput struct {
	ID string `json:"id"`
}

// GetOutput contains the requested entry.
type GetOutput struct {
	Entry journal.Entry `json:"entry"`
}

// Get returns the entry with the given id.
func Get(store *journal.Store, input GetInput) (*GetOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	entry, err := store.Get(id)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Entry: *entry}, nil
}
