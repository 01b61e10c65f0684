package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/amalg/go-tanks/internal/game"
	"github.com/amalg/go-tanks/internal/level"
)

func main() {
	prompt := flag.String("prompt", "", "Level description, e.g. \"a maze with water around the base\"")
	out := flag.String("out", "", "Write the level JSON to this file instead of stdout")
	copyOut := flag.Bool("clipboard", false, "Also copy the level JSON to the clipboard")
	size := flag.Int("size", game.DefaultConfig().GridSize, "Grid size")
	timeout := flag.Duration("timeout", time.Minute, "Generation timeout")
	flag.Parse()

	if *prompt == "" {
		fmt.Fprintln(os.Stderr, "Usage: levelgen -prompt <description> [-out file] [-clipboard]")
		os.Exit(1)
	}
	if *size < 10 {
		fmt.Fprintf(os.Stderr, "error: -size must be at least 10, got %d\n", *size)
		os.Exit(1)
	}

	// Logs go to stderr so stdout stays clean JSON.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "levelgen"})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	gen := level.NewGeminiGenerator(ctx, level.APIKeyFromEnv(), *size, logger)
	data, err := level.Marshal(gen.Generate(ctx, *prompt))
	if err != nil {
		logger.Fatal("Failed to encode level", "error", err)
	}

	if *out != "" {
		if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
			logger.Fatal("Failed to write level", "error", err)
		}
		logger.Info("Level written", "path", *out)
	} else {
		fmt.Println(string(data))
	}

	if *copyOut {
		if err := clipboard.WriteAll(string(data)); err != nil {
			logger.Fatal("Failed to copy to clipboard", "error", err)
		}
		logger.Info("Level copied to clipboard")
	}
}
