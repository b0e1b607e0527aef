package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy mocking and to
// keep go-redis out of repository signatures
type Client interface {
	redis.UniversalClient
}
