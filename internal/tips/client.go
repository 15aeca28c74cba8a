// Package tips generates short training tips from a free-form prompt.
package tips

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("tip generation is not configured: set GEMINI_API_KEY")
	ErrEmptyPrompt   = errors.New("prompt is empty")
)

// Generator defines the interface for tip providers.
type Generator interface {
	GenerateTip(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Disabled is used when no provider is configured. Every call fails with ErrNotConfigured.
type Disabled struct{}

func (Disabled) GenerateTip(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Name() string {
	return "disabled"
}
