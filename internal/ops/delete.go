package ops

import (
	"context"
	"strings"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/journal"
)

// DeleteInput contains parameters for the delete operation.
type DeleteInput struct {
	ID string `json:"id"`
}

// DeleteOutput reports whether an entry was removed. Deleting an unknown id
// is not an error; Deleted is simply false.
type DeleteOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// Delete removes the entry with the given id.
func Delete(ctx context.Context, store *journal.Store, input DeleteInput) (*DeleteOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	deleted, err := store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DeleteOutput{ID: id, Deleted: deleted}, nil
}
