package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds the tuning parameters for a game session.
type GameConfig struct {
	GridSize     int `yaml:"gridSize"`
	TileSize     int `yaml:"tileSize"`
	TankSize     int `yaml:"tankSize"`
	BulletSize   int `yaml:"bulletSize"`
	TickRate     int `yaml:"tickRate"` // Ticks per second for the Run loop
	KillScore    int `yaml:"killScore"`
	KillTarget   int `yaml:"killTarget"` // Kills needed to win; 0 plays endless waves
	MinEnemies   int `yaml:"minEnemies"`
	FireCooldown int `yaml:"fireCooldown"` // Ticks

	PlayerSpeed float64 `yaml:"playerSpeed"`
	EnemySpeed  float64 `yaml:"enemySpeed"`
	BulletSpeed float64 `yaml:"bulletSpeed"`

	EnemyTurnChance  float64 `yaml:"enemyTurnChance"`
	EnemyFireChance  float64 `yaml:"enemyFireChance"`
	EnemySpawnChance float64 `yaml:"enemySpawnChance"`
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() GameConfig {
	return GameConfig{
		GridSize:         26,
		TileSize:         24,
		TankSize:         22,
		BulletSize:       4,
		TickRate:         60,
		KillScore:        100,
		KillTarget:       0,
		MinEnemies:       3,
		FireCooldown:     30,
		PlayerSpeed:      2,
		EnemySpeed:       1.5,
		BulletSpeed:      6,
		EnemyTurnChance:  0.02,
		EnemyFireChance:  0.02,
		EnemySpawnChance: 0.01,
	}
}

// CanvasSize returns the side length of the playfield in pixels.
func (c GameConfig) CanvasSize() int {
	return c.GridSize * c.TileSize
}

// LoadConfig reads a YAML tuning file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(filePath string) (GameConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks the config for values the simulation cannot run with.
func (c GameConfig) Validate() error {
	if c.GridSize < 10 {
		return fmt.Errorf("gridSize must be at least 10, got %d", c.GridSize)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %d", c.TileSize)
	}
	if c.TankSize <= 0 || c.TankSize >= c.TileSize {
		return fmt.Errorf("tankSize must be in (0, %d), got %d", c.TileSize, c.TankSize)
	}
	if c.BulletSize <= 0 || c.BulletSize > c.TankSize {
		return fmt.Errorf("bulletSize must be in (0, %d], got %d", c.TankSize, c.BulletSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.TickRate)
	}
	if c.FireCooldown < 0 || c.MinEnemies < 0 || c.KillTarget < 0 || c.KillScore < 0 {
		return fmt.Errorf("fireCooldown, minEnemies, killTarget and killScore must not be negative")
	}

	// Corner sampling tunnels through walls once a step reaches half the box.
	half := float64(c.TankSize) / 2
	for name, speed := range map[string]float64{"playerSpeed": c.PlayerSpeed, "enemySpeed": c.EnemySpeed} {
		if speed <= 0 || speed >= half {
			return fmt.Errorf("%s must be in (0, %.1f), got %.2f", name, half, speed)
		}
	}
	if c.BulletSpeed <= 0 {
		return fmt.Errorf("bulletSpeed must be positive, got %.2f", c.BulletSpeed)
	}

	for name, p := range map[string]float64{
		"enemyTurnChance":  c.EnemyTurnChance,
		"enemyFireChance":  c.EnemyFireChance,
		"enemySpawnChance": c.EnemySpawnChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %.3f", name, p)
		}
	}
	return nil
}
