package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/ops"
	"github.com/hpungsan/skymemo/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(a *app) *cli.App {
	cliApp := &cli.App{
		Name:    "skymemo",
		Usage:   "Weather-aware journaling companion",
		Version: Version,
		Commands: []*cli.Command{
			promptsCmd(a),
			newCmd(a),
			listCmd(a),
			searchCmd(a),
			filterCmd(a),
			showCmd(a),
			deleteCmd(a),
			statsCmd(a),
			trendsCmd(a),
			exportCmd(a),
			webCmd(a),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	cliApp.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return cliApp
}

// promptsCmd creates the prompts command.
func promptsCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "prompts",
		Usage: "Generate journaling prompts for current or manual weather",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "city", Aliases: []string{"c"}, Usage: "City to fetch weather for (default: configured city)"},
			&cli.Float64Flag{Name: "temp", Aliases: []string{"t"}, Usage: "Manual temperature in Celsius"},
			&cli.StringFlag{Name: "condition", Usage: "Manual weather condition or description"},
			&cli.BoolFlag{Name: "precip", Usage: "Precipitation is falling (manual entry)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.PromptsInput{
				Condition:     c.String("condition"),
				Precipitation: c.Bool("precip"),
			}
			if c.IsSet("temp") {
				t := c.Float64("temp")
				input.Temperature = &t
			}

			// Manual fields win; otherwise fetch for the chosen city.
			if input.Temperature == nil && input.Condition == "" {
				input.City = c.String("city")
				if input.City == "" {
					input.City = a.cfg.DefaultCity
				}
			}

			output, err := ops.Prompts(c.Context, a.fetcher, a.gen, a.clock, a.cfg.TemperatureUnit, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// newCmd creates the new command (reads the entry body from stdin).
func newCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Create a journal entry (reads body from stdin)",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "temp", Aliases: []string{"t"}, Required: true, Usage: "Temperature in Celsius"},
			&cli.StringFlag{Name: "condition", Required: true, Usage: "Weather condition"},
			&cli.BoolFlag{Name: "precip", Usage: "Precipitation was falling"},
			&cli.StringFlag{Name: "moods", Aliases: []string{"m"}, Required: true, Usage: "Comma-separated mood tags"},
			&cli.StringFlag{Name: "prompt", Aliases: []string{"p"}, Usage: "The prompt the entry responds to"},
		},
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("entry body must be piped via stdin"))
			}

			body, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			output, err := ops.Create(c.Context, a.store, ops.CreateInput{
				Temperature:   c.Float64("temp"),
				Condition:     c.String("condition"),
				Precipitation: c.Bool("precip"),
				ObservedAt:    a.clock.Now().UTC(),
				MoodTags:      splitList(c.String("moods")),
				PromptText:    c.String("prompt"),
				Body:          body,
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List journal entries",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Value: "date", Usage: "Sort key: date|word_count"},
			&cli.BoolFlag{Name: "asc", Usage: "Sort ascending (oldest or shortest first)"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum entries to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Entries to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(a.store, ops.ListInput{
				Sort:       c.String("sort"),
				Descending: !c.Bool("asc"),
				Limit:      c.Int("limit"),
				Offset:     c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// searchCmd creates the search command.
func searchCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search entry bodies and prompts",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum entries to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Entries to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Search(a.store, ops.SearchInput{
				Query:  strings.Join(c.Args().Slice(), " "),
				Limit:  c.Int("limit"),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// filterCmd creates the filter command.
func filterCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "filter",
		Usage: "Filter entries by mood and/or condition",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mood", Aliases: []string{"m"}, Usage: "Mood tag to match"},
			&cli.StringFlag{Name: "condition", Aliases: []string{"c"}, Usage: "Weather condition to match"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum entries to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Entries to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Filter(a.store, ops.FilterInput{
				Mood:      c.String("mood"),
				Condition: c.String("condition"),
				Limit:     c.Int("limit"),
				Offset:    c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a single entry by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Get(a.store, ops.GetInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an entry by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Delete(c.Context, a.store, ops.DeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Summary statistics, streaks, and the weather-mood matrix",
		Action: func(c *cli.Context) error {
			output, err := ops.Stats(a.store, a.clock, ops.StatsInput{})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// trendsCmd creates the trends command.
func trendsCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "trends",
		Usage: "Word-count trend, weather timeline, and activity calendar",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "window", Aliases: []string{"w"}, Usage: "Moving-average window in days (default: configured window)"},
		},
		Action: func(c *cli.Context) error {
			window := c.Int("window")
			if window == 0 {
				window = a.cfg.TrendWindowDays
			}

			output, err := ops.Trends(a.store, ops.TrendsInput{WindowDays: window})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export entries to a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.skymemo/exports/skymemo-<timestamp>.jsonl)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(a.store, a.clock, a.exportDir, ops.ExportInput{
				Path: c.String("path"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// webCmd creates the web command.
func webCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8269, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(a.store, a.clock, a.cfg.TemperatureUnit, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if skyErr, ok := err.(*errors.SkyError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", skyErr.Code, skyErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// splitList splits a comma-separated string into trimmed, non-empty items.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			items = append(items, t)
		}
	}
	return items
}
