package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on this package
// rather than go-redis directly.
type Client interface {
	redis.UniversalClient
}
