package level

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/amalg/go-tanks/internal/game"
)

// Source selects where a session's level comes from. Path wins over Prompt,
// which wins over Classic; with none set the default layout is used.
type Source struct {
	Path    string
	Prompt  string
	Classic bool
}

// Resolve builds the level described by src. Only a level file can fail;
// generation always falls back to the default layout.
func Resolve(ctx context.Context, src Source, config game.GameConfig, rng game.Rand, logger *log.Logger) (game.Grid, error) {
	if logger == nil {
		logger = log.Default().WithPrefix("level")
	}

	switch {
	case src.Path != "":
		g, err := LoadFile(src.Path, config.GridSize)
		if err != nil {
			return nil, err
		}
		logger.Info("level loaded", "path", src.Path)
		return g, nil
	case src.Prompt != "":
		gen := NewGeminiGenerator(ctx, APIKeyFromEnv(), config.GridSize, logger)
		return gen.Generate(ctx, src.Prompt), nil
	case src.Classic:
		logger.Debug("classic level")
		return Classic(config, rng), nil
	default:
		return Default(config.GridSize), nil
	}
}
