package main

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/clients/ai"
	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	"github.com/KirkDiggler/monster-codex/internal/config"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/health"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-codex/internal/redis"
	"github.com/KirkDiggler/monster-codex/internal/repositories/discovered"
	"github.com/KirkDiggler/monster-codex/internal/repositories/pagecache"
	"github.com/KirkDiggler/monster-codex/internal/repositories/preferences"
)

// app holds the wired dependencies shared by server and browse
type app struct {
	catalog     catalog.Service
	preferences preferences.Repository
	probes      map[string]health.Probe
	closers     []func() error
}

func (a *app) Close(logger *zap.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("failed to close dependency", zap.Error(err))
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{probes: make(map[string]health.Probe)}

	upstream, err := mhapi.New(&mhapi.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		HTTPTimeout: cfg.Upstream.Timeout,
		Logger:      logger.Named("mhapi"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create upstream client")
	}
	a.probes["upstream"] = func(ctx context.Context) error {
		_, err := upstream.ListMonsters(ctx, &mhapi.ListMonstersInput{Limit: 1})
		return err
	}

	var catalogClient = upstream
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg.Redis.Addr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		a.closers = append(a.closers, redisClient.Close)
		a.probes["redis"] = func(ctx context.Context) error {
			return redis.Ping(ctx, redisClient)
		}

		cache, err := pagecache.NewRedis(&pagecache.RedisConfig{Client: redisClient})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create page cache")
		}
		catalogClient, err = mhapi.NewCached(&mhapi.CachedConfig{
			Client: upstream,
			Cache:  cache,
			TTL:    cfg.Upstream.CacheTTL,
			Logger: logger.Named("pagecache"),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create cached client")
		}

		a.preferences, err = preferences.NewRedis(&preferences.RedisConfig{Client: redisClient})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create preference store")
		}
	} else {
		a.preferences = preferences.NewInMemory()
	}

	generator, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	aiClient, err := ai.New(&ai.Config{
		Generator: generator,
		Logger:    logger.Named("ai"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ai client")
	}

	archive, err := newArchive(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := archive.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	a.catalog, err = catalog.NewOrchestrator(&catalog.Config{
		Client:      catalogClient,
		AI:          aiClient,
		Archive:     archive,
		IDGenerator: idgen.NewUUID("ai"),
		Logger:      logger.Named("catalog"),
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func newGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ai.Generator, error) {
	key := cfg.ResolveAPIKey()
	if key == "" {
		logger.Warn("no ai api key configured, lookups will fail",
			zap.String("provider", cfg.AI.Provider),
			zap.String("env", config.DefaultAPIKeyEnv(cfg.AI.Provider)))
		return ai.Disabled{Name: cfg.AI.Provider}, nil
	}

	switch cfg.AI.Provider {
	case ai.ProviderOpenAI:
		gen, err := ai.NewOpenAI(&ai.OpenAIConfig{
			APIKey:  key,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create openai generator")
		}
		return gen, nil
	default:
		gen, err := ai.NewGemini(ctx, &ai.GeminiConfig{
			APIKey:  key,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create gemini generator")
		}
		return gen, nil
	}
}

func newArchive(cfg *config.Config) (discovered.Repository, error) {
	if cfg.Archive.Driver == config.ArchiveMemory {
		return discovered.NewInMemory(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Archive.Path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create archive directory")
	}
	repo, err := discovered.NewSQLite(&discovered.SQLiteConfig{Path: cfg.Archive.Path})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive %s", cfg.Archive.Path)
	}
	return repo, nil
}
