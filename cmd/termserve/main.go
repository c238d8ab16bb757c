// Copyright 2025 The TermServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the abbreviation search server and CLI [DBG] application.

TermServe indexes a list of free-text multi-word terms and resolves short,
space-free abbreviation queries against them, QuickSilver style: "phosh"
finds "Photoshop" and "phobo" finds "Photo Booth". It can operate as a
MessagePack IPC server for integration with launchers and text editors, or
as a CLI application for testing and debugging.

Every term is indexed once per constituent word and once as a single
compacted run, so a query can abbreviate a single word, jump across word
boundaries, or spell the whole term without spaces. Lookups run in strict,
prefix or fuzzy mode; fuzzy mode absorbs typos and word-boundary jumps
within a configurable budget.

# Usage

Start the server with default settings:

	termserve

Use a custom term list and enable debug mode:

	termserve -data /path/to/terms.txt -d

Run in CLI mode for interactive testing:

	termserve -c -limit 10 -fuzz 5

The term list is a plain text file with one term per line. Casing and
punctuation are preserved in results but ignored for matching.

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, default search behavior, and CLI defaults:

	[server]
	max_limit = 64
	min_query = 1
	max_query = 60
	enable_filter = true

	[search]
	mode = "fuzzy"
	prefix_depth = 10
	fuzz_budget = 3
	priority = "typo"

The config file is automatically created with defaults if it doesn't exist.
Server mode reloads configuration periodically without restart.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Query requests
are processed synchronously with microsecond timing information included in
responses.

Send a query:

	{"id": "req1", "q": "helwor", "k": "fuzzy", "f": 3, "p": "typo"}

Receive the matching terms:

	{"id": "req1", "t": ["Hello World"], "c": 1, "us": 145}

Management requests allow runtime inspection and indexing:

	{"id": "idx1", "action": "get_info"}
	{"id": "idx2", "action": "learn", "term": "Photo Booth"}

# CLI Mode

CLI mode provides an interactive interface for testing and debugging the
index. It reads queries from stdin and displays matches with timing
information. The search mode can be switched in place with ':' commands
(":strict", ":prefix 10", ":fuzzy 3 typo").

This mode is primarily intended for development and testing new features
before deploying to server mode.

# Search Engine

The core functionality is provided by the index package, which implements a
character trie over the words of learned terms, with bounded backtracking
recovery for fuzzy queries.

	dict := index.New[string]()
	dict.Learn("Adobe Photoshop", "Adobe Photoshop")
	terms := dict.FindTerms("phosh", index.Fuzzy(3, index.TypoCorrection))

Results are deduplicated but not ranked; an empty result means no match,
never an error.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Path to the term list file (default from config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of terms to return (default from config)
	-qmin int
	    Minimum query length
	-qmax int
	    Maximum query length
	-no-filter
	    Disable input filtering for debugging
	-terms int
	    Maximum terms to load (0 for all)
	-depth int
	    Collection depth for prefix mode
	-fuzz int
	    Fuzz budget for fuzzy mode
	-mode string
	    Default search mode: strict, prefix or fuzzy
	-priority string
	    Fuzzy recovery priority: word or typo

The application automatically resolves data and config paths relative to the
executable location, supporting both development and production deployments.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/termserve/internal/cli"
	"github.com/bastiangx/termserve/internal/logger"
	"github.com/bastiangx/termserve/internal/utils"
	"github.com/bastiangx/termserve/pkg/config"
	"github.com/bastiangx/termserve/pkg/dictionary"
	"github.com/bastiangx/termserve/pkg/index"
	"github.com/bastiangx/termserve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "termserve"
	gh      = "https://github.com/bastiangx/termserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	termList := flag.String("data", defaultConfig.Dict.Path, "Path to the term list file (one term per line)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of terms to return")
	minQuery := flag.Int("qmin", defaultConfig.CLI.DefaultMinLen, "Minimum query length (1 < n <= qmax)")
	maxQuery := flag.Int("qmax", defaultConfig.CLI.DefaultMaxLen, "Maximum query length")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - passes through numbers, symbols, etc")
	termLimit := flag.Int("terms", defaultConfig.Dict.MaxTerms, "Maximum number of terms to load (use 0 for all terms)")
	mode := flag.String("mode", defaultConfig.Search.Mode, "Default search mode: strict, prefix or fuzzy")
	depth := flag.Int("depth", defaultConfig.Search.PrefixDepth, "Collection depth for prefix mode")
	fuzz := flag.Int("fuzz", defaultConfig.Search.FuzzBudget, "Fuzz budget for fuzzy mode")
	priority := flag.String("priority", defaultConfig.Search.Priority, "Fuzzy recovery priority: word or typo")

	flag.Parse()

	if *showVersion {
		vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ TermServe ] QuickSilver-style abbreviation search!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	defaultKind, err := index.ParseKind(*mode, *depth, *fuzz, *priority)
	if err != nil {
		log.Fatalf("Bad search flags: %v", err)
	}

	store := dictionary.NewStore()

	// Pathfinder for the term list
	resolvedList, err := pathResolver.GetTermListPath(*termList)
	if err != nil {
		log.Warnf("No term list found at %s, starting with an empty index", *termList)
	} else {
		log.Debugf("Using term list at: %s", resolvedList)
		loader := dictionary.NewLoader(*termLimit)
		stats, err := loader.LoadFile(resolvedList, store)
		if err != nil {
			log.Fatalf("Failed to load term list: %v", err)
		}
		log.Debugf("Loaded %d terms (%.0f terms/sec)", stats.Terms, stats.TermsPerSecond())
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minQuery", *minQuery,
			"maxQuery", *maxQuery,
			"limit", *limit,
			"kind", defaultKind.String(),
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(store, defaultKind, *minQuery, *maxQuery, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	configPath, err := pathResolver.GetConfigPath("termserve-config.toml")
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}
	log.Debugf("Using config file: (%s)", configPath)

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	srv := server.NewServer(store, appConfig, configPath)

	showStartupInfo(store.TermCount())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(termCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("TermServe %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("indexed terms: %s", utils.FormatWithCommas(termCount))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
