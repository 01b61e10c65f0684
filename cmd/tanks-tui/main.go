package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/amalg/go-tanks/internal/game"
	"github.com/amalg/go-tanks/internal/level"
	"github.com/amalg/go-tanks/internal/ui"
)

func main() {
	levelPath := flag.String("level", "", "JSON level file")
	prompt := flag.String("prompt", "", "Describe a level for the AI generator")
	classic := flag.Bool("classic", false, "Play a random classic layout")
	configPath := flag.String("config", "", "YAML tuning file")
	watch := flag.Bool("watch", false, "Reload the -level file when it changes")
	seed := flag.Int64("seed", 0, "Random seed (default: clock)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Redirect log output IMMEDIATELY, before any logger is derived.
	// Any stderr output will corrupt Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(2)
	}
	log.SetLevel(lvl)

	config := game.DefaultConfig()
	if *configPath != "" {
		config, err = game.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed)) // #nosec G404 -- gameplay randomness

	if *prompt != "" {
		fmt.Println("Generating level...")
	}
	src := level.Source{Path: *levelPath, Prompt: *prompt, Classic: *classic}
	grid, err := level.Resolve(context.Background(), src, config, rng, log.Default().WithPrefix("level"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	var levels <-chan game.Grid
	if *watch && *levelPath != "" {
		w, err := level.Watch(*levelPath, config.GridSize, log.Default().WithPrefix("level"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch level: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		levels = w.Levels
		go func() {
			for err := range w.Errors {
				log.Warn("level watcher", "error", err)
			}
		}()
	}

	engine := game.NewEngine(config, grid, game.WithRand(rng))
	engine.OnGameOver(func(score int, won bool) {
		log.Info("Game over", "score", score, "won", won)
	})

	// Start the TUI; this takes over the terminal completely
	p := tea.NewProgram(ui.NewModel(engine, levels), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
