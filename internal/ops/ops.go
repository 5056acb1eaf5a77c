// Package ops implements SkyMemo's operations: the shared surface consumed
// by the CLI, the MCP server, and the web view.
package ops

import (
	"context"

	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/weather"
)

// List limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Pagination describes a window over a result set.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// WeatherFetcher is the weather fetch collaborator consumed by the Prompts
// operation (implemented by openweather.Client).
type WeatherFetcher interface {
	Fetch(ctx context.Context, city string) (weather.Observation, error)
}

// clampLimit applies limit defaults and bounds.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// page slices entries to the requested window and reports pagination.
func page(entries []journal.Entry, limit, offset int) ([]journal.Entry, Pagination) {
	limit = clampLimit(limit)
	offset = max(offset, 0)

	total := len(entries)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)

	items := entries[offset:end]
	return items, Pagination{
		Limit:   limit,
		Offset:  offset,
		HasMore: end < total,
		Total:   total,
	}
}
