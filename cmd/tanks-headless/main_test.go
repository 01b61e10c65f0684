package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/amalg/go-tanks/internal/game"
)

func TestRunAutopilotIsDeterministic(t *testing.T) {
	config := game.DefaultConfig()
	config.TickRate = 10000
	logger := log.New(io.Discard)

	a, err := runAutopilot(1, 99, 400, "", config, logger)
	if err != nil {
		t.Fatalf("run a: %v", err)
	}
	b, err := runAutopilot(1, 99, 400, "", config, logger)
	if err != nil {
		t.Fatalf("run b: %v", err)
	}
	if a != b {
		t.Errorf("same seed should replay identically:\n%+v\n%+v", a, b)
	}
	if !a.over && a.ticks != 400 {
		t.Errorf("run should stop at the tick limit, stopped at %d", a.ticks)
	}
	if a.shotsFired == 0 {
		t.Error("autopilot should fire")
	}
}

func TestOutcome(t *testing.T) {
	cases := []struct {
		stats runStats
		want  string
	}{
		{runStats{}, "timeout"},
		{runStats{over: true, won: true}, "won"},
		{runStats{over: true, baseDestroyed: true}, "base_lost"},
		{runStats{over: true}, "tank_lost"},
	}
	for _, tc := range cases {
		if got := outcome(tc.stats); got != tc.want {
			t.Errorf("outcome(%+v) = %q, want %q", tc.stats, got, tc.want)
		}
	}
}

func TestShotFiredUsesCooldown(t *testing.T) {
	const cooldown = 30
	fired := game.Snapshot{Player: game.Tank{Cooldown: cooldown}}

	// One player bullet died this tick and another was fired, so the live
	// bullet count did not change.
	fired.Bullets = []game.Bullet{{OwnerID: "player"}}
	if !shotFired(fired, cooldown) {
		t.Error("full cooldown marks a shot even when the bullet count is unchanged")
	}
	if shotFired(game.Snapshot{Player: game.Tank{Cooldown: cooldown - 1}}, cooldown) {
		t.Error("a cooling tank did not fire this tick")
	}
	if shotFired(game.Snapshot{}, 0) {
		t.Error("zero cooldown shots are not counted")
	}
}

func TestRunAutopilotShotsMatchCooldown(t *testing.T) {
	config := game.DefaultConfig()
	config.TickRate = 10000
	stats, err := runAutopilot(1, 5, 300, "", config, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	// Fire is held from tick 2 on, so the player shoots once per cooldown.
	if limit := stats.ticks/config.FireCooldown + 1; stats.shotsFired == 0 || stats.shotsFired > limit {
		t.Errorf("expected 1..%d shots in %d ticks, got %d", limit, stats.ticks, stats.shotsFired)
	}
}
