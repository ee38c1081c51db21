// Package mhapi is the client for the public monster catalog API
package mhapi

//go:generate mockgen -destination=mock/mock_client.go -package=mhapimock github.com/KirkDiggler/monster-codex/internal/clients/mhapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/metrics"
)

// DefaultBaseURL is the public catalog endpoint
const DefaultBaseURL = "https://api.mh-api.com/v1"

// Limit bounds accepted by the upstream list endpoint
const (
	MinLimit = 1
	MaxLimit = 1000
)

// maxErrorBody caps how much of an upstream error body is kept in metadata
const maxErrorBody = 512

// Client defines the interface for upstream catalog access
type Client interface {
	// ListMonsters fetches one window of the catalog. Cancelling ctx aborts
	// the request and yields a Canceled error.
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
}

// Config contains configuration options for the upstream client.
type Config struct {
	// BaseURL for the catalog API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, zero leaves requests bounded
	// only by ctx and the transport)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base url %q: %v", cfg.BaseURL, err)
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgumentf("http timeout must not be negative, got %s", cfg.HTTPTimeout)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a new upstream client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// ValidateListInput checks the window bounds accepted by the upstream API
func ValidateListInput(input *ListMonstersInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("limit", input.Limit, MinLimit, MaxLimit, vb)
	errors.ValidateNonNegative("offset", input.Offset, vb)
	return vb.Build()
}

func (c *client) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	if err := ValidateListInput(input); err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.listMonsters(ctx, input)
	switch {
	case err == nil:
		metrics.RecordUpstreamFetch(metrics.OutcomeOK, time.Since(start))
	case errors.IsCanceled(err):
		metrics.RecordUpstreamFetch(metrics.OutcomeCanceled, time.Since(start))
		c.logger.Debug("upstream fetch cancelled",
			zap.Int("limit", input.Limit), zap.Int("offset", input.Offset))
	default:
		metrics.RecordUpstreamFetch(metrics.OutcomeError, time.Since(start))
		c.logger.Warn("upstream fetch failed",
			zap.Int("limit", input.Limit), zap.Int("offset", input.Offset), zap.Error(err))
	}
	return out, err
}

func (c *client) listMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(input.Limit))
	q.Set("offset", strconv.Itoa(input.Offset))
	endpoint := c.baseURL + "/monsters?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build monster list request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := errors.FromContext(ctx.Err()); ctxErr != nil {
			return nil, ctxErr
		}
		if ctxErr := errors.FromContext(err); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "monster catalog is unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Unavailablef("monster catalog returned %d", resp.StatusCode).
			WithMeta("status", resp.StatusCode).
			WithMeta("body", strings.TrimSpace(string(body)))
	}

	var out ListMonstersOutput
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctxErr := errors.FromContext(ctx.Err()); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal,
			fmt.Sprintf("failed to decode monster list (limit=%d offset=%d)", input.Limit, input.Offset))
	}

	return &out, nil
}
