// Copyright 2025 The Boggle Solver Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the board solver, interactive play and IPC server application.

Note: This is a BETA release. APIs and functionality may rapidly change.

Boggle finds every dictionary word hiding on a 4x4 letter grid. Words are
traced through chains of adjacent cells, diagonals included, with each cell
used at most once per word; the qu die contributes both of its letters. The
binary can operate as a MessagePack IPC server for integration with other
programs, or solve and play single boards from the command line.

# Usage

Solve one board and print the word list:

	boggle -b quidaeltsnrocesyx

Play the same board interactively after solving:

	boggle -b quidaeltsnrocesyx -play

Roll a random board and play it:

	boggle -play

Start the IPC server with default settings:

	boggle

The board string is the sixteen cells in reading order, with the qu die
spelled out as "qu". The word list is a plain text file, one word per line.

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, dictionary settings, solver and CLI defaults:

	[server]
	max_limit = 32
	enable_cache = true
	cache_boards = 64

	[dict]
	path = "words.txt"

	[solver]
	parallel = false
	workers = 0

	[cli]
	default_limit = 10
	show_points = true

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a solve request:

	{"id": "req1", "op": "solve", "b": "quidaeltsnrocesyx"}

Receive every word on the board with points per word and the total score:

	{"id": "req1", "b": "...", "ws": [{"w": "quid", "p": 1}], "c": 1, "sc": 1, "t": 145}

Hint requests search a solved board by prefix, and roll requests shake a
fresh board, optionally from a fixed seed:

	{"id": "req2", "op": "hint", "b": "...", "p": "qu", "l": 5}
	{"id": "req3", "op": "roll", "seed": 42}

# Server Mode

The default mode starts a MessagePack IPC server that processes solve
requests from stdin and writes responses to stdout. Solved boards are kept
in an LRU cache so repeated requests for the same board skip the walk
entirely.

	srv := server.NewServer(sv, lex, appConfig, Version)
	err := srv.Start()

The server handles request parsing, validation, and response formatting.
Errors are sent in-band and the loop keeps serving; EOF on stdin ends the
session cleanly.

# Play Mode

Play mode solves the board up front, renders the grid, and reads guesses
from stdin. Found words score by length, each word once; a prefix ending in
'?' answers how many findable words start with it.

	handler := cli.NewPlayHandler(b, res)
	err := handler.Start()

# Solver

The core search is provided by the solver package, which walks simple paths
over the 8-adjacent grid and checks them against a sorted word list.

	sv := solver.New(lex)
	res := sv.FindAll(b)

Prefix pruning cuts dead branches as soon as no dictionary word can extend
them, which keeps a full solve well under a millisecond on common word
lists.

# Command Line Flags

The following flags control application behavior:

	-b string
	    Board to solve, sixteen cells in reading order (qu spelled out)
	-play
	    Play the board interactively after solving (rolls one if -b is absent)
	-dict string
	    Path to the word list, one word per line
	-config string
	    Custom config file path
	-limit int
	    Default number of hints per hint request
	-seed int
	    Seed for rolled boards (0 uses the clock)
	-par
	    Solve with one worker per start cell
	-d  Enable debug mode with detailed logging
	-version
	    Show current version

The application resolves word list and config paths relative to the
executable location as a fallback, supporting both development and
production deployments.
*/
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kromey/boggle-solver/internal/cli"
	"github.com/Kromey/boggle-solver/internal/logger"
	"github.com/Kromey/boggle-solver/internal/utils"
	"github.com/Kromey/boggle-solver/pkg/board"
	"github.com/Kromey/boggle-solver/pkg/config"
	"github.com/Kromey/boggle-solver/pkg/lexicon"
	"github.com/Kromey/boggle-solver/pkg/server"
	"github.com/Kromey/boggle-solver/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "boggle"
	gh      = "https://github.com/Kromey/boggle-solver"
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

// main calls other packages to solve boards, run play or serve IPC.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	boardStr := flag.String("b", "", "Board to solve, sixteen cells in reading order (qu spelled out)")
	playMode := flag.Bool("play", false, "Play the board interactively after solving")
	dictPath := flag.String("dict", defaultConfig.Dict.Path, "Path to the word list, one word per line")
	configPath := flag.String("config", "", "Custom config file path")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Default number of hints per hint request")
	seed := flag.Int64("seed", 0, "Seed for rolled boards (0 uses the clock)")
	parallel := flag.Bool("par", defaultConfig.Solver.Parallel, "Solve with one worker per start cell")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ Boggle ] Finds every word the dice are hiding!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		logger.EnableDebug()
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
		os.Exit(1)
	}

	var appConfig *config.Config
	var activeConfigPath string
	if *configPath != "" {
		appConfig, activeConfigPath, err = config.LoadConfigWithPriority(*configPath)
		if err != nil {
			log.Warnf("Config load failed, using defaults: %v", err)
			appConfig = config.DefaultConfig()
		}
	} else {
		activeConfigPath, err = pathResolver.GetConfigPath("config.toml")
		if err != nil {
			log.Fatalf("Failed to determine config path: (%v)", err)
			os.Exit(1)
		}
		log.Debugf("Using config file: (%s)", activeConfigPath)

		appConfig, err = config.InitConfig(activeConfigPath)
		if err != nil {
			log.Warnf("Config load failed, using defaults: %v", err)
			appConfig = config.DefaultConfig()
		}
	}
	mergeLimit(appConfig, flag.CommandLine, *limit)

	// The -dict flag wins over the config when both name a word list.
	wordlist := *dictPath
	if wordlist == defaultConfig.Dict.Path && appConfig.Dict.Path != "" {
		wordlist = appConfig.Dict.Path
	}

	dictFile, err := pathResolver.GetDictionaryPath(wordlist)
	if err != nil {
		log.Fatalf("No word list at %s: %v", dictFile, err)
		os.Exit(1)
	}
	log.Debugf("Using word list at: %s", dictFile)

	lex, err := lexicon.Load(dictFile)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
		os.Exit(1)
	}

	var sv *solver.Solver
	if *parallel || appConfig.Solver.Parallel {
		sv = solver.NewParallel(lex, appConfig.Solver.Workers)
	} else {
		sv = solver.New(lex)
	}

	// One-shot solve, with optional play on the same board.
	if *boardStr != "" {
		b, err := board.Parse(*boardStr)
		if err != nil {
			log.Fatalf("Bad board: %v", err)
			os.Exit(1)
		}

		res := sv.FindAll(b)
		m := sv.LastMetrics()
		log.Debugf("visited %d cells, pruned %d branches, max depth %d", m.Visits, m.Prunes, m.MaxDepth)

		if *playMode {
			runPlay(b, res)
			return
		}

		fmt.Println(cli.RenderBoard(b))
		cli.WriteResults(os.Stdout, res, appConfig.CLI.ShowPoints)
		return
	}

	// Play on a rolled board.
	if *playMode {
		seedVal := *seed
		if seedVal == 0 {
			seedVal = time.Now().UnixNano()
		}
		b := board.Shake(rand.New(rand.NewSource(seedVal)))
		log.Debugf("Rolled board %q from seed %d", b.Letters(), seedVal)

		runPlay(b, sv.FindAll(b))
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(sv, lex, appConfig, Version)

	showStartupInfo(dictFile, lex.Len(), activeConfigPath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// mergeLimit applies the -limit flag over the loaded config. The flag
// wins only when it was passed on the command line.
func mergeLimit(cfg *config.Config, fs *flag.FlagSet, limit int) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "limit" {
			cfg.CLI.DefaultLimit = limit
		}
	})
}

// runPlay hands a solved board to the interactive loop.
func runPlay(b *board.Board, res *solver.Results) {
	handler := cli.NewPlayHandler(b, res)
	if err := handler.Start(); err != nil {
		log.Fatalf("Play error: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictFile string, words int, configPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println("  Boggle  ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("word list: ( %s )", dictFile)
	log.Infof("words loaded: %s", utils.FormatWithCommas(words))
	if configPath != "" {
		log.Infof("config: ( %s )", configPath)
	}
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
