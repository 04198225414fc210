// Package main is the entry point for the sodiumview display.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/sodiumview/internal/app"
	"github.com/dshills/sodiumview/internal/config"
	"github.com/dshills/sodiumview/internal/config/watcher"
	"github.com/dshills/sodiumview/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	ConfigPath  string
	LogPath     string
	LogLevel    string
	NoHighlight bool
	LineMarker  bool
	Prompt      string
	ShowVersion bool
	Files       []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.ShowVersion {
		fmt.Printf("sodiumview %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	logger, closeLog, err := openLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Config: cfg,
		Files:  opts.Files,
		Prompt: opts.Prompt,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	if opts.ConfigPath != "" {
		w, err := watcher.New(opts.ConfigPath, application.NotifyConfig,
			watcher.WithLoader(func(string) (*config.Config, error) { return loadConfig(opts) }))
		if err != nil {
			logger.WithComponent("config").Warn("not watching %s: %v", opts.ConfigPath, err)
		} else {
			defer w.Close()
		}
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("sodiumview", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogPath, "log", "", "Write diagnostics to this file")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.NoHighlight, "no-highlight", false, "Disable syntax coloring")
	fs.BoolVar(&opts.LineMarker, "line-marker", false, "Highlight the cursor line")
	fs.StringVar(&opts.Prompt, "prompt", "", "Start in prompt mode with this text")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.ShowVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "sodiumview - terminal display for Sodium buffers\n\n")
		fmt.Fprintf(stderr, "Usage: sodiumview [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys: arrows/hjkl move, PgUp/PgDn scroll, : prompt, q quits\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if _, ok := app.ParseLogLevel(opts.LogLevel); !ok {
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, fmt.Errorf("invalid log level %q", opts.LogLevel)
	}

	opts.Files = fs.Args()
	return opts, nil
}

// loadConfig reads the config file, then environment overrides, then
// command line flags, and validates the result.
func loadConfig(opts cliOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if opts.NoHighlight {
		cfg.Display.Highlight = false
	}
	if opts.LineMarker {
		cfg.Display.LineMarker = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger opens the log file, if any. Without -log, diagnostics are
// discarded so they never draw over the terminal.
func openLogger(opts cliOptions) (*app.Logger, func(), error) {
	if opts.LogPath == "" {
		return app.NullLogger(), func() {}, nil
	}

	f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	level, _ := app.ParseLogLevel(opts.LogLevel)
	logger := app.NewLogger(app.LoggerConfig{
		Level:  level,
		Output: f,
		Prefix: "sodiumview",
	})
	return logger, func() { _ = f.Close() }, nil
}
