package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/amalg/go-tanks/internal/game"
	"github.com/amalg/go-tanks/internal/level"
)

type runStats struct {
	runIndex int
	seed     int64

	ticks         int
	score         int
	over          bool
	won           bool
	baseDestroyed bool
	shotsFired    int
	bricksLeft    int
}

func main() {
	var runs int
	var ticks int
	var tps int
	var seedBase int64
	var levelPath string
	var configPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 3600, "tick limit per run")
	flag.IntVar(&tps, "tps", 2000, "ticks per second for the run loop")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1; run i uses seed-base+i-1")
	flag.StringVar(&levelPath, "level", "", "JSON level file (default: classic layout per seed)")
	flag.StringVar(&configPath, "config", "", "YAML tuning file")
	flag.BoolVar(&verbose, "v", false, "log engine events to stderr")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	config := game.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = game.LoadConfig(configPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	}
	config.TickRate = tps
	if err := config.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(io.Discard)
	if verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel, Prefix: "game"})
	}

	fmt.Printf("=== Headless Tanks Report ===\n")
	fmt.Printf("runs=%d ticks=%d tps=%d seed_base=%d\n\n", runs, ticks, tps, seedBase)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		stats, err := runAutopilot(i+1, seedBase+int64(i), ticks, levelPath, config, logger)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runAutopilot plays one session with a scripted player: hold a random
// direction for a while, fire whenever possible.
func runAutopilot(runIndex int, seed int64, ticks int, levelPath string, config game.GameConfig, logger *log.Logger) (runStats, error) {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation randomness
	src := level.Source{Path: levelPath, Classic: true}
	grid, err := level.Resolve(context.Background(), src, config, rng, logger)
	if err != nil {
		return runStats{}, err
	}

	engine := game.NewEngine(config, grid, game.WithRand(rng), game.WithLogger(logger))
	stats := runStats{runIndex: runIndex, seed: seed}

	pilot := rand.New(rand.NewSource(seed ^ 0x5eed)) // #nosec G404 -- simulation randomness
	input := engine.Input()
	hold := 0
	stopped := false

	// Run may step once more between Stop and its return; that tick is
	// not recorded, so runs replay identically.
	engine.OnTick(func(s game.Snapshot) {
		if stopped {
			return
		}
		stats.ticks = s.Tick
		stats.score = s.Score
		stats.baseDestroyed = s.BaseDestroyed
		stats.bricksLeft = s.Grid.Count(game.Brick)

		if shotFired(s, config.FireCooldown) {
			stats.shotsFired++
		}

		if s.Tick >= ticks {
			stopped = true
			engine.Stop()
			return
		}

		hold--
		if hold <= 0 {
			input.Clear()
			d := game.Directions[pilot.Intn(len(game.Directions))]
			input.Press(game.DirectionKey(d))
			hold = 20 + pilot.Intn(60)
		}
		input.Press(game.KeyFire)
	})
	engine.OnGameOver(func(score int, won bool) {
		if stopped {
			return
		}
		stats.over = true
		stats.won = won
		stats.score = score
	})

	if err := engine.Run(context.Background()); err != nil {
		return stats, err
	}
	return stats, nil
}

// shotFired reports whether the player fired during the tick that produced
// s. Firing resets the cooldown to its full value, and the next tick
// decrements it, so the full value shows up only on the firing tick. With
// a zero cooldown shots can not be told apart and none are counted.
func shotFired(s game.Snapshot, fireCooldown int) bool {
	return fireCooldown > 0 && s.Player.Cooldown == fireCooldown
}

func outcome(s runStats) string {
	switch {
	case !s.over:
		return "timeout"
	case s.won:
		return "won"
	case s.baseDestroyed:
		return "base_lost"
	default:
		return "tank_lost"
	}
}

func printRun(s runStats) {
	fmt.Printf("run=%d seed=%d outcome=%s ticks=%d score=%d shots=%d bricks_left=%d\n",
		s.runIndex, s.seed, outcome(s), s.ticks, s.score, s.shotsFired, s.bricksLeft)
}

func printAggregate(all []runStats) {
	counts := map[string]int{}
	totalScore, totalTicks := 0, 0
	best := all[0]
	for _, s := range all {
		counts[outcome(s)]++
		totalScore += s.score
		totalTicks += s.ticks
		if s.score > best.score {
			best = s
		}
	}

	n := float64(len(all))
	fmt.Printf("\n--- Aggregate ---\n")
	fmt.Printf("won=%d base_lost=%d tank_lost=%d timeout=%d\n",
		counts["won"], counts["base_lost"], counts["tank_lost"], counts["timeout"])
	fmt.Printf("mean_score=%.1f mean_ticks=%.1f best_run=%d best_score=%d\n",
		float64(totalScore)/n, float64(totalTicks)/n, best.runIndex, best.score)
}
