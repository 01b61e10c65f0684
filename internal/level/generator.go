package level

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"github.com/amalg/go-tanks/internal/game"
)

// DefaultModel is the Gemini model used for level generation.
const DefaultModel = "gemini-2.5-flash"

var errNoAPIKey = errors.New("API key is missing")

// Model is the part of the genai client the generator uses.
type Model interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator turns a natural-language description into a layout. Every
// failure falls back to Default and is logged, so Generate always returns a
// playable grid.
type Generator struct {
	models Model
	model  string
	size   int
	logger *log.Logger
}

// NewGenerator returns a generator backed by models. A nil models value makes
// every request fall back to the default level.
func NewGenerator(models Model, size int, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default().WithPrefix("levelgen")
	}
	return &Generator{
		models: models,
		model:  DefaultModel,
		size:   size,
		logger: logger,
	}
}

// NewGeminiGenerator connects to the Gemini API with apiKey. An empty key or
// a client error yields a generator that always falls back.
func NewGeminiGenerator(ctx context.Context, apiKey string, size int, logger *log.Logger) *Generator {
	g := NewGenerator(nil, size, logger)
	if apiKey == "" {
		return g
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		g.logger.Error("create genai client", "error", err)
		return g
	}
	g.models = client.Models
	return g
}

// APIKeyFromEnv returns GEMINI_API_KEY, or API_KEY when that is unset.
func APIKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

// Generate asks the model for a layout matching prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) game.Grid {
	grid, err := g.generate(ctx, prompt)
	if err != nil {
		g.logger.Error("Failed to generate level, using default", "error", err)
		return Default(g.size)
	}
	g.logger.Info("level generated", "prompt", prompt, "bases", grid.Count(game.Base))
	return grid
}

func (g *Generator) generate(ctx context.Context, prompt string) (game.Grid, error) {
	if g.models == nil {
		return nil, errNoAPIKey
	}

	resp, err := g.models.GenerateContent(ctx, g.model,
		genai.Text("Generate a level layout: "+prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction(g.size), genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    layoutSchema,
		})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.New("no response from model")
	}
	return Parse([]byte(text), g.size)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range c.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

var layoutSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"layout": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeInteger},
			},
		},
	},
	Required: []string{"layout"},
}

func systemInstruction(n int) string {
	return fmt.Sprintf(`You are a level designer for a grid-based tank battle game (like Battle City).
The grid is %dx%d.

Tile types:
0 = Empty (passable)
1 = Brick wall (destructible, blocks movement and bullets)
2 = Steel wall (indestructible, blocks movement and bullets)
3 = Water (blocks movement, bullets pass)
4 = Grass (visual cover)
9 = Base (the eagle; must exist exactly once, usually at bottom center)

Generate a 2D array representing the level layout based on the user's description.
Protect the base with some walls.
Leave open paths for tanks to move.
Do not fill the entire map; leave plenty of 0s.`, n, n)
}
