package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var promptsToolDef = mcp.NewTool("journal_prompts",
	mcp.WithDescription("Generate weather-aware journaling prompts. Give a city to fetch current weather, or temperature and condition for a manual observation."),
	mcp.WithString("city", mcp.Description("City to fetch current weather for")),
	mcp.WithNumber("temperature", mcp.Description("Manual temperature in Celsius")),
	mcp.WithString("condition", mcp.Description("Manual weather condition or free-text description")),
	mcp.WithBoolean("precipitation", mcp.Description("Whether precipitation is falling (manual entry)")),
)

var createToolDef = mcp.NewTool("journal_create",
	mcp.WithDescription("Create a journal entry tied to a weather observation."),
	mcp.WithNumber("temperature", mcp.Required(), mcp.Description("Temperature in Celsius at writing time")),
	mcp.WithString("condition", mcp.Required(), mcp.Description("Weather condition (sunny, partly_cloudy, cloudy, rainy, stormy, snowy, foggy, windy)")),
	mcp.WithBoolean("precipitation", mcp.Description("Whether precipitation was falling")),
	mcp.WithArray("mood_tags", mcp.Required(), mcp.Description("Mood tags for the entry; include at least the chosen prompt's mood"), mcp.Items(map[string]any{"type": "string"})),
	mcp.WithString("prompt_text", mcp.Description("The prompt the entry responds to")),
	mcp.WithString("body", mcp.Required(), mcp.Description("The entry text; must not be blank")),
)

var listToolDef = mcp.NewTool("journal_list",
	mcp.WithDescription("List journal entries sorted by date or word count."),
	mcp.WithString("sort", mcp.Description("Sort key: date (default) or word_count")),
	mcp.WithBoolean("descending", mcp.Description("Sort descending (newest or longest first)")),
	mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default 20, max 100)")),
	mcp.WithNumber("offset", mcp.Description("Entries to skip")),
)

var searchToolDef = mcp.NewTool("journal_search",
	mcp.WithDescription("Search entry bodies and prompt texts, case-insensitive."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Substring to search for")),
	mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default 20, max 100)")),
	mcp.WithNumber("offset", mcp.Description("Entries to skip")),
)

var filterToolDef = mcp.NewTool("journal_filter",
	mcp.WithDescription("Filter entries by mood tag and/or weather condition (AND-combined)."),
	mcp.WithString("mood", mcp.Description("Mood tag to match")),
	mcp.WithString("condition", mcp.Description("Weather condition to match")),
	mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default 20, max 100)")),
	mcp.WithNumber("offset", mcp.Description("Entries to skip")),
)

var getToolDef = mcp.NewTool("journal_get",
	mcp.WithDescription("Fetch a single journal entry by id."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Entry id (ULID)")),
)

var deleteToolDef = mcp.NewTool("journal_delete",
	mcp.WithDescription("Delete a journal entry by id. Deleting an unknown id reports deleted=false rather than an error."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Entry id (ULID)")),
)

var statsToolDef = mcp.NewTool("journal_stats",
	mcp.WithDescription("Summary statistics: totals, most common mood and condition, writing streaks, mood distribution, and the weather-mood correlation matrix."),
)

var trendsToolDef = mcp.NewTool("journal_trends",
	mcp.WithDescription("Longitudinal views: per-day word-count trend with moving average, weather timeline, and activity calendar."),
	mcp.WithNumber("window_days", mcp.Description("Moving-average window in days (default 7)")),
)

var exportToolDef = mcp.NewTool("journal_export",
	mcp.WithDescription("Export all entries as JSON Lines, one self-contained record per entry."),
	mcp.WithString("path", mcp.Description("Destination file; empty writes a timestamped file under the export directory")),
)
