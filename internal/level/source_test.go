package level

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/amalg/go-tanks/internal/game"
)

func TestResolve(t *testing.T) {
	config := game.DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	ctx := context.Background()

	g, err := Resolve(ctx, Source{}, config, rng, quietLogger())
	if err != nil || !isDefault(g) {
		t.Fatalf("empty source should give the default level, err=%v", err)
	}

	g, err = Resolve(ctx, Source{Classic: true}, config, rng, quietLogger())
	if err != nil || isDefault(g) {
		t.Fatalf("classic source should add obstacles, err=%v", err)
	}

	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, []byte(`[[4, 4]]`), 0644); err != nil {
		t.Fatal(err)
	}
	g, err = Resolve(ctx, Source{Path: path, Classic: true}, config, rng, quietLogger())
	if err != nil {
		t.Fatalf("Resolve file: %v", err)
	}
	if g.Size() != config.GridSize || g[0][1] != game.Grass {
		t.Errorf("file level should win and be padded, got row %v", g[0])
	}

	if _, err := Resolve(ctx, Source{Path: path + ".missing"}, config, rng, quietLogger()); err == nil {
		t.Error("missing level file should be an error")
	}
}

func TestResolvePromptWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	g, err := Resolve(context.Background(), Source{Prompt: "maze"}, game.DefaultConfig(), nil, quietLogger())
	if err != nil || !isDefault(g) {
		t.Fatalf("prompt without a key should fall back, err=%v", err)
	}
}
