package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/skymemo/internal/config"
	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/prompt"
)

// memPersister keeps the flushed sequence in memory.
type memPersister struct {
	entries []journal.Entry
}

func (p *memPersister) Load(_ context.Context) ([]journal.Entry, error) {
	return append([]journal.Entry(nil), p.entries...), nil
}

func (p *memPersister) Flush(_ context.Context, entries []journal.Entry) error {
	p.entries = append([]journal.Entry(nil), entries...)
	return nil
}

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	store, err := journal.NewStore(context.Background(), &memPersister{}, clock)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	cfg := config.DefaultConfig()
	return NewHandlers(store, nil, prompt.NewGenerator(cfg.TemperatureUnit), clock, cfg, t.TempDir())
}

func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

// resultPayload decodes the JSON text content of a tool result.
func resultPayload(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("result has %d content blocks, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("payload is not JSON: %v\n%s", err, text.Text)
	}
	return payload
}

func createEntry(t *testing.T, h *Handlers, body string) string {
	t.Helper()
	result, err := h.HandleCreate(context.Background(), makeRequest(map[string]any{
		"temperature": 2.0,
		"condition":   "rainy",
		"mood_tags":   []any{"reflective", "cozy"},
		"prompt_text": "What emotions are sitting with you right now?",
		"body":        body,
	}))
	if err != nil {
		t.Fatalf("HandleCreate returned transport error: %v", err)
	}
	if result.IsError {
		t.Fatalf("HandleCreate failed: %v", resultPayload(t, result))
	}
	payload := resultPayload(t, result)
	entry := payload["entry"].(map[string]any)
	id, _ := entry["id"].(string)
	if id == "" {
		t.Fatal("created entry has no id")
	}
	return id
}

func TestHandlePromptsManualObservation(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandlePrompts(context.Background(), makeRequest(map[string]any{
		"temperature":   2.0,
		"condition":     "light rain",
		"precipitation": true,
	}))
	if err != nil {
		t.Fatalf("HandlePrompts failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", resultPayload(t, result))
	}

	payload := resultPayload(t, result)
	prompts, ok := payload["prompts"].([]any)
	if !ok || len(prompts) < 3 {
		t.Fatalf("prompts = %v, want at least 3", payload["prompts"])
	}
	first := prompts[0].(map[string]any)
	if first["is_primary"] != true {
		t.Error("first prompt is not primary")
	}
	if payload["description"] != "cold rainy (2.0°C) with precipitation" {
		t.Errorf("description = %v", payload["description"])
	}
}

func TestHandlePromptsWithoutObservation(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandlePrompts(context.Background(), makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("HandlePrompts failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}

	payload := resultPayload(t, result)
	errObj := payload["error"].(map[string]any)
	if errObj["code"] != "INVALID_REQUEST" {
		t.Errorf("code = %v, want INVALID_REQUEST", errObj["code"])
	}
}

func TestHandleCreateAndGet(t *testing.T) {
	h := newTestHandlers(t)
	id := createEntry(t, h, "Rain again. Tea and a blanket.")

	result, err := h.HandleGet(context.Background(), makeRequest(map[string]any{"id": id}))
	if err != nil {
		t.Fatalf("HandleGet failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", resultPayload(t, result))
	}

	entry := resultPayload(t, result)["entry"].(map[string]any)
	if entry["body"] != "Rain again. Tea and a blanket." {
		t.Errorf("body = %v", entry["body"])
	}
	if entry["word_count"] != float64(6) {
		t.Errorf("word_count = %v, want 6", entry["word_count"])
	}
}

func TestHandleGetUnknownID(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleGet(context.Background(), makeRequest(map[string]any{"id": "01NOPE"}))
	if err != nil {
		t.Fatalf("HandleGet failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}

	errObj := resultPayload(t, result)["error"].(map[string]any)
	if errObj["code"] != "NOT_FOUND" {
		t.Errorf("code = %v, want NOT_FOUND", errObj["code"])
	}
	if errObj["status"] != float64(404) {
		t.Errorf("status = %v, want 404", errObj["status"])
	}
}

func TestHandleListPagination(t *testing.T) {
	h := newTestHandlers(t)
	createEntry(t, h, "first entry")
	createEntry(t, h, "second entry")
	createEntry(t, h, "third entry")

	result, err := h.HandleList(context.Background(), makeRequest(map[string]any{"limit": 2}))
	if err != nil {
		t.Fatalf("HandleList failed: %v", err)
	}
	payload := resultPayload(t, result)

	entries := payload["entries"].([]any)
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
	pg := payload["pagination"].(map[string]any)
	if pg["total"] != float64(3) || pg["has_more"] != true {
		t.Errorf("pagination = %v", pg)
	}
}

func TestHandleDelete(t *testing.T) {
	h := newTestHandlers(t)
	id := createEntry(t, h, "short lived")

	result, err := h.HandleDelete(context.Background(), makeRequest(map[string]any{"id": id}))
	if err != nil {
		t.Fatalf("HandleDelete failed: %v", err)
	}
	payload := resultPayload(t, result)
	if payload["deleted"] != true {
		t.Errorf("deleted = %v, want true", payload["deleted"])
	}

	// Deleting again is not an error; it just reports false.
	result, err = h.HandleDelete(context.Background(), makeRequest(map[string]any{"id": id}))
	if err != nil {
		t.Fatalf("second HandleDelete failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", resultPayload(t, result))
	}
	if payload := resultPayload(t, result); payload["deleted"] != false {
		t.Errorf("deleted = %v, want false", payload["deleted"])
	}
}

func TestHandleStats(t *testing.T) {
	h := newTestHandlers(t)
	createEntry(t, h, "a rainy day entry")

	result, err := h.HandleStats(context.Background(), makeRequest(nil))
	if err != nil {
		t.Fatalf("HandleStats failed: %v", err)
	}
	payload := resultPayload(t, result)

	summary := payload["summary"].(map[string]any)
	if summary["total_entries"] != float64(1) {
		t.Errorf("total_entries = %v", summary["total_entries"])
	}
	dist := payload["mood_distribution"].(map[string]any)
	if dist["reflective"] != float64(1) || dist["cozy"] != float64(1) {
		t.Errorf("mood_distribution = %v", dist)
	}
	if _, ok := payload["correlation"].(map[string]any); !ok {
		t.Error("correlation table missing")
	}
}

func TestHandleCreateInvalidCondition(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleCreate(context.Background(), makeRequest(map[string]any{
		"temperature": 5.0,
		"condition":   "volcanic",
		"mood_tags":   []any{"calm"},
		"body":        "won't make it",
	}))
	if err != nil {
		t.Fatalf("HandleCreate failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	errObj := resultPayload(t, result)["error"].(map[string]any)
	if errObj["code"] != "INVALID_WEATHER_KIND" {
		t.Errorf("code = %v, want INVALID_WEATHER_KIND", errObj["code"])
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"journal_list", "journal_teleport", "journal_export"})
	if len(unknown) != 1 || unknown[0] != "journal_teleport" {
		t.Errorf("unknown = %v, want [journal_teleport]", unknown)
	}
}

func TestAllToolNamesCoverRegistry(t *testing.T) {
	names := AllToolNames()
	sort.Strings(names)
	want := []string{
		"journal_create", "journal_delete", "journal_export", "journal_filter",
		"journal_get", "journal_list", "journal_prompts", "journal_search",
		"journal_stats", "journal_trends",
	}
	if len(names) != len(want) {
		t.Fatalf("got %d tools, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("tool %d = %s, want %s", i, names[i], want[i])
		}
	}
}
