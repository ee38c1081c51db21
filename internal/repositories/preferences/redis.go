package preferences

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	redisclient "github.com/KirkDiggler/monster-codex/internal/redis"
)

const preferenceKeyPrefix = "preference:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis preference store.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed preference store
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) GetTheme(ctx context.Context, input *GetThemeInput) (*GetThemeOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	key := GetThemeKey(input.ClientID)
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return &GetThemeOutput{Theme: entities.ThemeSystem}, nil
		}
		return nil, errors.Wrapf(err, "failed to read theme for %s", input.ClientID)
	}

	return &GetThemeOutput{Theme: entities.ParseTheme(value), Stored: true}, nil
}

func (r *redisRepository) SetTheme(ctx context.Context, input *SetThemeInput) (*SetThemeOutput, error) {
	if err := validateSet(input); err != nil {
		return nil, err
	}

	key := GetThemeKey(input.ClientID)
	if err := r.client.Set(ctx, key, string(input.Theme), 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write theme for %s", input.ClientID)
	}

	return &SetThemeOutput{Theme: input.Theme}, nil
}

// GetThemeKey returns the Redis key holding a client's theme
// Exposed for testing purposes
func GetThemeKey(clientID string) string {
	return fmt.Sprintf("%s%s:theme", preferenceKeyPrefix, clientID)
}
