package pagecache

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/monster-codex/internal/errors"
	redisclient "github.com/KirkDiggler/monster-codex/internal/redis"
)

const pageKeyPrefix = "monster_page:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis page cache.
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

// NewRedis creates a new Redis-backed page cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func validateWindow(limit, offset int) error {
	vb := errors.NewValidationBuilder()
	if limit < 1 {
		vb.Field("limit", "must be positive")
	}
	errors.ValidateNonNegative("offset", offset, vb)
	return vb.Build()
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateWindow(input.Limit, input.Offset); err != nil {
		return nil, err
	}

	key := GetKey(input.Limit, input.Offset)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("page %s not cached", key)
		}
		return nil, errors.Wrapf(err, "failed to read page %s", key)
	}

	return &GetOutput{Data: data}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateWindow(input.Limit, input.Offset); err != nil {
		return nil, err
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("page data cannot be empty")
	}

	key := GetKey(input.Limit, input.Offset)
	if err := r.client.Set(ctx, key, input.Data, input.TTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write page %s", key)
	}

	return &PutOutput{}, nil
}

// GetKey returns the Redis key for a fetch window
// Exposed for testing purposes
func GetKey(limit, offset int) string {
	return fmt.Sprintf("%s%d:%d", pageKeyPrefix, limit, offset)
}
