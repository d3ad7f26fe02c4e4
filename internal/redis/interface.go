package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the world store is written against
type Client interface {
	redis.UniversalClient
}
