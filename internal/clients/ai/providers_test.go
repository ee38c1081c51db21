package ai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-codex/internal/clients/ai"
	"github.com/KirkDiggler/monster-codex/internal/errors"
)

type capturedRequest struct {
	path string
	body map[string]any
}

func newJSONServer(t *testing.T, status int, response any, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		captured.path = r.URL.Path
		_ = json.Unmarshal(raw, &captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiGenerateJSON(t *testing.T) {
	var got capturedRequest
	srv := newJSONServer(t, http.StatusOK, map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": `{"name":"リオレウス"}`}},
				},
			},
		},
	}, &got)

	gen, err := ai.NewGemini(context.Background(), &ai.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)
	assert.Equal(t, ai.ProviderGemini, gen.Provider())

	text, err := gen.GenerateJSON(context.Background(), ai.Prompt("リオレウス"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"リオレウス"}`, text)

	assert.Contains(t, got.path, "models/"+ai.DefaultGeminiModel+":generateContent")
	genCfg, ok := got.body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from request")
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.NotNil(t, genCfg["responseSchema"])
}

func TestGeminiUpstreamFailure(t *testing.T) {
	var got capturedRequest
	srv := newJSONServer(t, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"code": 500, "message": "boom", "status": "INTERNAL"},
	}, &got)

	gen, err := ai.NewGemini(context.Background(), &ai.GeminiConfig{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = gen.GenerateJSON(context.Background(), "x")
	assert.True(t, errors.IsUnavailable(err))
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	_, err := ai.NewGemini(context.Background(), &ai.GeminiConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOpenAIGenerateJSON(t *testing.T) {
	var got capturedRequest
	srv := newJSONServer(t, http.StatusOK, map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  ai.DefaultOpenAIModel,
		"choices": []any{
			map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": `{"name":"ジンオウガ"}`},
			},
		},
	}, &got)

	gen, err := ai.NewOpenAI(&ai.OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	assert.Equal(t, ai.ProviderOpenAI, gen.Provider())

	text, err := gen.GenerateJSON(context.Background(), ai.Prompt("ジンオウガ"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ジンオウガ"}`, text)

	assert.Equal(t, "/v1/chat/completions", got.path)
	assert.Equal(t, ai.DefaultOpenAIModel, got.body["model"])
	format, ok := got.body["response_format"].(map[string]any)
	require.True(t, ok, "response_format missing from request")
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, "monster", schema["name"])
}

func TestOpenAIUpstreamFailure(t *testing.T) {
	var got capturedRequest
	srv := newJSONServer(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"message": "rate limited", "type": "rate_limit"},
	}, &got)

	gen, err := ai.NewOpenAI(&ai.OpenAIConfig{APIKey: "k", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = gen.GenerateJSON(context.Background(), "x")
	assert.True(t, errors.IsUnavailable(err))
}

func TestOpenAICancellation(t *testing.T) {
	var got capturedRequest
	srv := newJSONServer(t, http.StatusOK, map[string]any{}, &got)

	gen, err := ai.NewOpenAI(&ai.OpenAIConfig{APIKey: "k", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.GenerateJSON(ctx, "x")
	assert.True(t, errors.IsCanceled(err))
}

func TestSchemasRequireCoreFields(t *testing.T) {
	gs := ai.GeminiSchema()
	assert.ElementsMatch(t, []string{"name", "title", "description", "elements", "weaknesses"}, gs.Required)
	assert.Contains(t, gs.Properties, "keyDrops")
	assert.NotNil(t, gs.Properties["weaknesses"].Items.Properties["stars"])

	def := ai.OpenAISchema()
	raw, err := json.Marshal(def)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "object", decoded["type"])
	props := decoded["properties"].(map[string]any)
	assert.Contains(t, props, "threatLevel")
	assert.Equal(t, "number", props["size"].(map[string]any)["properties"].(map[string]any)["min"].(map[string]any)["type"])
}

func TestDisabledGenerator(t *testing.T) {
	gen := ai.Disabled{Name: ai.ProviderOpenAI}
	_, err := gen.GenerateJSON(context.Background(), "リオレウス")
	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, ai.ProviderOpenAI, gen.Provider())
	assert.Equal(t, "disabled", ai.Disabled{}.Provider())
}
