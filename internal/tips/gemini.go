package tips

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const systemInstruction = "You are a concise strength and conditioning coach. " +
	"Answer with one or two practical sentences about training, technique, recovery or progression. " +
	"Do not give medical diagnoses."

// GeminiGenerator implements Generator using Google's Gemini API.
type GeminiGenerator struct {
	models contentGenerator
	model  string
}

// contentGenerator is the subset of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiGenerator{models: client.Models, model: model}, nil
}

func (g *GeminiGenerator) Name() string {
	return "gemini:" + g.model
}

// GenerateTip asks the model for a tip answering prompt.
func (g *GeminiGenerator) GenerateTip(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	result, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	tip := strings.TrimSpace(result.Text())
	if tip == "" {
		return "", errors.New("model returned an empty tip")
	}
	return tip, nil
}
