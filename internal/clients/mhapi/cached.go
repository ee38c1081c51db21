package mhapi

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/metrics"
	"github.com/KirkDiggler/monster-codex/internal/repositories/pagecache"
)

// DefaultCacheTTL is how long a fetched page stays fresh
const DefaultCacheTTL = 10 * time.Minute

// CachedConfig configures the caching decorator
type CachedConfig struct {
	Client Client
	Cache  pagecache.Repository
	// TTL (optional, defaults to DefaultCacheTTL)
	TTL    time.Duration
	Logger *zap.Logger
}

// Validate validates the CachedConfig and sets defaults
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Cache == nil {
		vb.RequiredField("Cache")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type cachedClient struct {
	next   Client
	cache  pagecache.Repository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached wraps a Client so identical windows are served from the page
// cache until they go stale. Cache failures never reach the caller.
func NewCached(cfg *CachedConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cachedClient{
		next:   cfg.Client,
		cache:  cfg.Cache,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}, nil
}

func (c *cachedClient) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	if err := ValidateListInput(input); err != nil {
		return nil, err
	}

	if out, ok := c.lookup(ctx, input); ok {
		return out, nil
	}

	out, err := c.next.ListMonsters(ctx, input)
	if err != nil {
		return nil, err
	}

	c.store(ctx, input, out)
	return out, nil
}

func (c *cachedClient) lookup(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, bool) {
	got, err := c.cache.Get(ctx, pagecache.GetInput{Limit: input.Limit, Offset: input.Offset})
	if err != nil {
		if errors.IsNotFound(err) {
			metrics.RecordPageCacheLookup(metrics.OutcomeMiss)
		} else {
			metrics.RecordPageCacheLookup(metrics.OutcomeError)
			c.logger.Warn("page cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var out ListMonstersOutput
	if err := json.Unmarshal(got.Data, &out); err != nil {
		metrics.RecordPageCacheLookup(metrics.OutcomeError)
		c.logger.Warn("discarding unreadable cached page",
			zap.Int("limit", input.Limit), zap.Int("offset", input.Offset), zap.Error(err))
		return nil, false
	}

	metrics.RecordPageCacheLookup(metrics.OutcomeHit)
	return &out, true
}

func (c *cachedClient) store(ctx context.Context, input *ListMonstersInput, out *ListMonstersOutput) {
	data, err := json.Marshal(out)
	if err != nil {
		c.logger.Warn("failed to encode page for cache", zap.Error(err))
		return
	}

	if _, err := c.cache.Put(ctx, pagecache.PutInput{
		Limit:  input.Limit,
		Offset: input.Offset,
		Data:   data,
		TTL:    c.ttl,
	}); err != nil {
		c.logger.Warn("page cache write failed", zap.Error(err))
	}
}
