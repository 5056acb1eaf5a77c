package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	store    *journal.Store
	clock    clockwork.Clock
	renderer *Renderer
}

// HandleList handles GET /entries: list journal entries, optionally
// filtered by mood and/or condition.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	moodParam := r.URL.Query().Get("mood")
	condParam := r.URL.Query().Get("condition")
	sort := r.URL.Query().Get("sort")
	if sort == "" {
		sort = "date"
	}
	descending := r.URL.Query().Get("order") != "asc"
	limit := parseIntParam(r, "limit", ops.DefaultListLimit)
	offset := parseIntParam(r, "offset", 0)

	var items []journal.Entry
	var pg ops.Pagination

	if moodParam != "" || condParam != "" {
		result, err := ops.Filter(h.store, ops.FilterInput{
			Mood:      moodParam,
			Condition: condParam,
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		items, pg = result.Entries, result.Pagination
	} else {
		result, err := ops.List(h.store, ops.ListInput{
			Sort:       sort,
			Descending: descending,
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		items, pg = result.Entries, result.Pagination
	}

	h.renderer.renderPage(w, r, "list", ListPageData{
		PageData: PageData{
			Title:   "Entries",
			Version: h.renderer.version,
			Nav:     "entries",
		},
		Items:      items,
		Pagination: pg,
		Sort:       sort,
		Descending: descending,
		Mood:       moodParam,
		Condition:  condParam,
	})
}

// HandleSearch handles GET /entries/search: substring search over bodies
// and prompt texts.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	data := SearchPageData{
		PageData: PageData{
			Title:   "Search",
			Version: h.renderer.version,
			Nav:     "search",
		},
		Query:    query,
		HasQuery: query != "",
	}

	if query == "" {
		// If htmx targets #results (user cleared the search box), return just the results fragment
		if r.Header.Get("HX-Target") == "results" {
			h.renderer.renderBlock(w, http.StatusOK, "search", "search-results", data)
			return
		}
		h.renderer.renderPage(w, r, "search", data)
		return
	}

	result, err := ops.Search(h.store, ops.SearchInput{
		Query:  query,
		Limit:  parseIntParam(r, "limit", ops.DefaultListLimit),
		Offset: parseIntParam(r, "offset", 0),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	data.Items = result.Entries
	data.Pagination = result.Pagination

	// If htmx targets #results, render only the results fragment
	if r.Header.Get("HX-Target") == "results" {
		h.renderer.renderBlock(w, http.StatusOK, "search", "search-results", data)
		return
	}

	h.renderer.renderPage(w, r, "search", data)
}

// HandleTrends handles GET /entries/trends, the analytics dashboard.
func (h *Handlers) HandleTrends(w http.ResponseWriter, r *http.Request) {
	window := parseIntParam(r, "window", 0)

	stats, err := ops.Stats(h.store, h.clock, ops.StatsInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	trends, err := ops.Trends(h.store, ops.TrendsInput{WindowDays: window})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "trends", TrendsPageData{
		PageData: PageData{
			Title:   "Trends",
			Version: h.renderer.version,
			Nav:     "trends",
		},
		Stats:      stats,
		Trends:     trends,
		WindowDays: window,
	})
}

// HandleDetail handles GET /entries/{id}: view a single entry with its body
// rendered as markdown.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("entry ID is required"))
		return
	}

	result, err := ops.Get(h.store, ops.GetInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "detail", DetailPageData{
		PageData: PageData{
			Title:   result.Entry.Day(),
			Version: h.renderer.version,
			Nav:     "entries",
		},
		Entry:        result.Entry,
		RenderedHTML: renderMarkdown(result.Entry.Body),
	})
}

// HandleDelete handles DELETE /entries/{id}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("entry ID is required"))
		return
	}

	result, err := ops.Delete(r.Context(), h.store, ops.DeleteInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/entries")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, map[string]any{
			"deleted": result.Deleted,
			"id":      result.ID,
		})
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/entries", http.StatusFound)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
