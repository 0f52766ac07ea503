package advisory

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls Google Gemini through langchaingo.
type GeminiGenerator struct {
	model llms.Model
}

// NewGeminiGenerator creates a Gemini client for the given model name.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{model: llm}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(0.9),
		llms.WithTopP(0.95),
		llms.WithTopK(40),
		llms.WithMaxTokens(2048),
	)
}

// UnconfiguredGenerator is used when no API key is configured; every call fails.
type UnconfiguredGenerator struct{}

func (UnconfiguredGenerator) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("advisory service is not configured")
}
