package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if config.CanvasSize() != 624 {
		t.Errorf("expected 624px canvas, got %d", config.CanvasSize())
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tanks.yaml")
	data := "killScore: 250\nenemySpeed: 1\nkillTarget: 20\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.KillScore != 250 || config.EnemySpeed != 1 || config.KillTarget != 20 {
		t.Errorf("overrides not applied: %+v", config)
	}
	if config.GridSize != 26 || config.BulletSpeed != 6 {
		t.Errorf("missing fields should keep defaults: %+v", config)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"tunneling speed": "playerSpeed: 11\n",
		"bad chance":      "enemyFireChance: 1.5\n",
		"tiny grid":       "gridSize: 5\n",
		"tank too big":    "tankSize: 24\n",
		"malformed":       "killScore: [1, 2\n",
	}
	for name, data := range cases {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
