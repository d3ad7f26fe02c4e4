// Package config loads server settings from the environment
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/redis"
)

// Config holds everything the perception server needs to start
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	RedisAddrs      []string      `env:"REDIS_ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	RedisMasterName string        `env:"REDIS_MASTER_NAME"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize   int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisTLS        bool          `env:"REDIS_TLS"`
	RedisIdleTime   time.Duration `env:"REDIS_IDLE_TIME" envDefault:"5m"`

	// WorldTTL expires stored worlds; zero keeps them forever
	WorldTTL time.Duration `env:"WORLD_TTL" envDefault:"0s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Prefix namespaces every variable read by Load
const Prefix = "RPG_PERCEPTION_"

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("grpc_port", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("redis_addrs")
	}
	if c.WorldTTL < 0 {
		vb.Field("world_ttl", "must not be negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		vb.Fieldf("log_level", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// RedisOptions converts the redis settings for redis.NewClient
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Addrs:           c.RedisAddrs,
		MasterName:      c.RedisMasterName,
		Password:        c.RedisPassword,
		DB:              c.RedisDB,
		PoolSize:        c.RedisPoolSize,
		ConnMaxIdleTime: c.RedisIdleTime,
		UseTLS:          c.RedisTLS,
	}
}
