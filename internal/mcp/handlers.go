package mcp

import (
	"context"
	"encoding/json"

	"github.com/jonboulle/clockwork"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/skymemo/internal/config"
	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/ops"
	"github.com/hpungsan/skymemo/internal/prompt"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store     *journal.Store
	fetcher   ops.WeatherFetcher
	gen       *prompt.Generator
	clock     clockwork.Clock
	cfg       *config.Config
	exportDir string
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *journal.Store, fetcher ops.WeatherFetcher, gen *prompt.Generator, clock clockwork.Clock, cfg *config.Config, exportDir string) *Handlers {
	return &Handlers{
		store:     store,
		fetcher:   fetcher,
		gen:       gen,
		clock:     clock,
		cfg:       cfg,
		exportDir: exportDir,
	}
}

// Request types for each tool

// PromptsRequest represents the arguments for prompts.
type PromptsRequest struct {
	City          string   `json:"city,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Condition     string   `json:"condition,omitempty"`
	Precipitation bool     `json:"precipitation,omitempty"`
}

// CreateRequest represents the arguments for create.
type CreateRequest struct {
	Temperature   float64  `json:"temperature"`
	Condition     string   `json:"condition"`
	Precipitation bool     `json:"precipitation,omitempty"`
	MoodTags      []string `json:"mood_tags"`
	PromptText    string   `json:"prompt_text,omitempty"`
	Body          string   `json:"body"`
}

// ListRequest represents the arguments for list.
type ListRequest struct {
	Sort       string `json:"sort,omitempty"`
	Descending bool   `json:"descending,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// SearchRequest represents the arguments for search.
type SearchRequest struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// FilterRequest represents the arguments for filter.
type FilterRequest struct {
	Mood      string `json:"mood,omitempty"`
	Condition string `json:"condition,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// GetRequest represents the arguments for get.
type GetRequest struct {
	ID string `json:"id"`
}

// DeleteRequest represents the arguments for delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// TrendsRequest represents the arguments for trends.
type TrendsRequest struct {
	WindowDays int `json:"window_days,omitempty"`
}

// ExportRequest represents the arguments for export.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
}

// Handler implementations

// HandlePrompts handles the prompts tool call.
func (h *Handlers) HandlePrompts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Prompts(ctx, h.fetcher, h.gen, h.clock, h.cfg.TemperatureUnit, ops.PromptsInput{
		City:          input.City,
		Temperature:   input.Temperature,
		Condition:     input.Condition,
		Precipitation: input.Precipitation,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCreate handles the create tool call.
func (h *Handlers) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CreateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Create(ctx, h.store, ops.CreateInput{
		Temperature:   input.Temperature,
		Condition:     input.Condition,
		Precipitation: input.Precipitation,
		ObservedAt:    h.clock.Now().UTC(),
		MoodTags:      input.MoodTags,
		PromptText:    input.PromptText,
		Body:          input.Body,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.store, ops.ListInput{
		Sort:       input.Sort,
		Descending: input.Descending,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSearch handles the search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Search(h.store, ops.SearchInput{
		Query:  input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFilter handles the filter tool call.
func (h *Handlers) HandleFilter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FilterRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Filter(h.store, ops.FilterInput{
		Mood:      input.Mood,
		Condition: input.Condition,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleGet handles the get tool call.
func (h *Handlers) HandleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Get(h.store, ops.GetInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(ctx, h.store, ops.DeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStats handles the stats tool call.
func (h *Handlers) HandleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Stats(h.store, h.clock, ops.StatsInput{})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTrends handles the trends tool call.
func (h *Handlers) HandleTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TrendsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Trends(h.store, ops.TrendsInput{WindowDays: input.WindowDays})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.store, h.clock, h.exportDir, ops.ExportInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if skyErr, ok := err.(*errors.SkyError); ok {
		errorObj := map[string]any{
			"code":    skyErr.Code,
			"message": skyErr.Message,
			"status":  skyErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if skyErr.Code != errors.ErrInternal && skyErr.Details != nil {
			errorObj["details"] = skyErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
