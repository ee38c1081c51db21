package ai

import (
	"context"
	"net/http"

	"google.golang.org/genai"

	"github.com/KirkDiggler/monster-codex/internal/errors"
)

// GeminiConfig configures the Gemini generator
type GeminiConfig struct {
	APIKey string
	// Model (optional, defaults to DefaultGeminiModel)
	Model string
	// BaseURL overrides the API endpoint (optional)
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the GeminiConfig and sets defaults
func (cfg *GeminiConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	return nil
}

// Gemini generates monster records with Google's Gemini models
type Gemini struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewGemini creates a Gemini generator
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*Gemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
		config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   GeminiSchema(),
		},
	}, nil
}

// Provider implements Generator
func (g *Gemini) Provider() string { return ProviderGemini }

// GenerateJSON implements Generator
func (g *Gemini) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		g.config,
	)
	if err != nil {
		if ctxErr := errors.FromContext(ctx.Err()); ctxErr != nil {
			return "", ctxErr
		}
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "gemini request failed")
	}
	return resp.Text(), nil
}
