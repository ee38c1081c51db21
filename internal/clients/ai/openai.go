package ai

import (
	"context"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/KirkDiggler/monster-codex/internal/errors"
)

const systemPrompt = "You are a Monster Hunter field guide. Answer only with JSON that matches the supplied schema."

// OpenAIConfig configures the OpenAI-compatible generator
type OpenAIConfig struct {
	APIKey string
	// Model (optional, defaults to DefaultOpenAIModel)
	Model string
	// BaseURL points at any OpenAI-compatible endpoint (optional)
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the OpenAIConfig and sets defaults
func (cfg *OpenAIConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	return nil
}

// OpenAI generates monster records through the chat completions API
type OpenAI struct {
	client *openai.Client
	model  string
	format *openai.ChatCompletionResponseFormat
}

// NewOpenAI creates an OpenAI generator
func NewOpenAI(cfg *OpenAIConfig) (*OpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		format: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: OpenAISchema(),
			},
		},
	}, nil
}

// Provider implements Generator
func (o *OpenAI) Provider() string { return ProviderOpenAI }

// GenerateJSON implements Generator
func (o *OpenAI) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: o.format,
	})
	if err != nil {
		if ctxErr := errors.FromContext(ctx.Err()); ctxErr != nil {
			return "", ctxErr
		}
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "openai request failed")
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
