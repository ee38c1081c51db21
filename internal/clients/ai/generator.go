// Package ai looks up monsters the catalog does not know by asking a
// generative model for a record that follows a fixed JSON schema.
package ai

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/monster-codex/internal/errors"
)

// Providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// DefaultGeminiModel is used when no model is configured for Gemini
const DefaultGeminiModel = "gemini-2.5-flash"

// DefaultOpenAIModel is used when no model is configured for OpenAI
const DefaultOpenAIModel = "gpt-4o-mini"

// Generator produces a JSON document for a prompt. Implementations constrain
// the model to the monster schema.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Provider names the backend for logs and metrics
	Provider() string
}

// Prompt builds the lookup instruction for a monster name or free-form question
func Prompt(query string) string {
	return fmt.Sprintf(`Provide detailed ecological data for the Monster Hunter monster: %q.
If the monster does not exist in the Monster Hunter franchise, return null (or empty object).
Ensure Japanese translations for Name and specific terms are accurate to the game.
Language: Japanese.`, query)
}

// Disabled stands in for a provider with no API key. Every lookup fails as
// Unavailable so the rest of the catalog keeps working.
type Disabled struct {
	Name string
}

// GenerateJSON always fails
func (d Disabled) GenerateJSON(context.Context, string) (string, error) {
	return "", errors.Unavailablef("%s api key is not configured", d.Provider())
}

// Provider returns the configured provider name
func (d Disabled) Provider() string {
	if d.Name == "" {
		return "disabled"
	}
	return d.Name
}
