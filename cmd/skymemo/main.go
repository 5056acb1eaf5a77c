package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/hpungsan/skymemo/internal/config"
	"github.com/hpungsan/skymemo/internal/db"
	"github.com/hpungsan/skymemo/internal/journal"
	"github.com/hpungsan/skymemo/internal/mcp"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/openweather"
	"github.com/hpungsan/skymemo/internal/ops"
	"github.com/hpungsan/skymemo/internal/prompt"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"prompts": true, "new": true, "list": true, "search": true,
	"filter": true, "show": true, "delete": true,
	"stats": true, "trends": true, "export": true, "web": true,
	"help": true,
}

// app bundles the wired collaborators shared by CLI commands and the MCP
// server.
type app struct {
	store     *journal.Store
	fetcher   ops.WeatherFetcher
	gen       *prompt.Generator
	clock     clockwork.Clock
	cfg       *config.Config
	exportDir string
}

// newApp initializes the database, config, and collaborators under baseDir.
func newApp(ctx context.Context, baseDir string) (*app, func(), error) {
	database, err := db.Init(baseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}
	closer := func() { _ = database.Close() }

	cfg, err := config.Load(baseDir)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	clock := clockwork.NewRealClock()

	store, err := journal.NewStore(ctx, db.NewPersister(database), clock)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("load journal: %w", err)
	}

	fetcherOpts := []openweather.Option{
		openweather.WithCache(db.NewWeatherCache(database), time.Duration(cfg.CacheBucketMinutes)*time.Minute),
	}
	if cfg.WeatherAPIBaseURL != "" {
		fetcherOpts = append(fetcherOpts, openweather.WithBaseURL(cfg.WeatherAPIBaseURL))
	}
	fetcher := openweather.NewClient(cfg.WeatherAPIKey, clock, fetcherOpts...)

	return &app{
		store:     store,
		fetcher:   fetcher,
		gen:       prompt.NewGenerator(cfg.TemperatureUnit),
		clock:     clock,
		cfg:       cfg,
		exportDir: filepath.Join(baseDir, "exports"),
	}, closer, nil
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ___ _        __  __
  / __| |___  _|  \/  |___ _ __  ___
  \__ \ / / || | |\/| / -_) '  \/ _ \
  |___/_\_\\_, |_|  |_\___|_|_|_\___/
           |__/

  Weather-aware journaling companion

  Usage: skymemo <command> [options]
         skymemo --help

  MCP server mode requires piped input.`)
}

func main() {
	// .env is optional; environment wins for the API key either way.
	_ = godotenv.Load()

	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		cliApp := newCLIApp(nil)
		if err := cliApp.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The static tables ship with the binary; a malformed table is a build
	// defect, caught here before any command runs.
	if err := mood.ValidateTable(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := prompt.CheckBank(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".skymemo")

	a, closer, err := newApp(context.Background(), baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	// CLI mode: known subcommand
	if isCLIMode() {
		cliApp := newCLIApp(a)
		if err := cliApp.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'skymemo --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	unknown := mcp.ValidateDisabledTools(a.cfg.DisabledTools)
	for _, name := range unknown {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tool %q\n", name)
	}

	h := mcp.NewHandlers(a.store, a.fetcher, a.gen, a.clock, a.cfg, a.exportDir)
	if err := mcp.Run(h, Version, a.cfg.DisabledTools); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
