package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amalg/go-tanks/internal/game"
	"github.com/amalg/go-tanks/internal/level"
	"github.com/amalg/go-tanks/internal/screen"
)

func main() {
	levelPath := flag.String("level", "", "JSON level file")
	prompt := flag.String("prompt", "", "Describe a level for the AI generator")
	classic := flag.Bool("classic", false, "Play a random classic layout")
	configPath := flag.String("config", "", "YAML tuning file")
	watch := flag.Bool("watch", false, "Reload the -level file when it changes")
	seed := flag.Int64("seed", 0, "Random seed (default: clock)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

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
			log.Fatal("Failed to load config", "error", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed)) // #nosec G404 -- gameplay randomness
	log.Debug("seeded", "seed", *seed)

	src := level.Source{Path: *levelPath, Prompt: *prompt, Classic: *classic}
	grid, err := level.Resolve(context.Background(), src, config, rng, log.Default().WithPrefix("level"))
	if err != nil {
		log.Fatal("Failed to load level", "error", err)
	}

	var levels <-chan game.Grid
	if *watch {
		if *levelPath == "" {
			log.Fatal("-watch needs -level")
		}
		w, err := level.Watch(*levelPath, config.GridSize, log.Default().WithPrefix("level"))
		if err != nil {
			log.Fatal("Failed to watch level", "error", err)
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

	if err := screen.NewGame(engine, levels, nil).Run("Tanks"); err != nil {
		log.Error("Game exited", "error", err)
		os.Exit(1)
	}
}
