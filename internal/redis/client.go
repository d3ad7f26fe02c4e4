// Package redis wraps the go-redis client so storage code can depend on an
// interface and tests can swap in miniredis.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
)

// Options configures how the world store connects to Redis.
//
// One address gives a single node client, several give a cluster client and
// a MasterName switches to Sentinel failover over the listed addresses.
type Options struct {
	Addrs           []string
	MasterName      string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// Validate checks the connection settings
func (o *Options) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(o.Addrs) == 0 {
		vb.RequiredField("addrs")
	}
	for i, addr := range o.Addrs {
		if addr == "" {
			vb.Fieldf("addrs", "address %d is empty", i)
		}
	}
	if o.DB != 0 && len(o.Addrs) > 1 && o.MasterName == "" {
		vb.Field("db", "cluster mode only supports db 0")
	}
	if o.PoolSize < 0 {
		vb.Field("pool_size", "must not be negative")
	}

	return vb.Build()
}

// NewClient creates a Redis client for the configured topology
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		return nil, errors.InvalidArgument("redis options are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis options")
	}

	universal := &redis.UniversalOptions{
		Addrs:           opts.Addrs,
		MasterName:      opts.MasterName,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		universal.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}

	return redis.NewUniversalClient(universal), nil
}
