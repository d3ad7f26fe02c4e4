// Package testutils provides shared test helpers: an in-memory Redis and
// world fixtures
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-perception/internal/redis"
)

// CreateTestRedisServer creates an in-memory Redis and returns the server as
// well, so tests can inspect keys or fast forward TTLs. setupFunc may
// populate the server before the client connects.
func CreateTestRedisServer(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	if setupFunc != nil {
		setupFunc(mr)
	}

	client, err := redis.NewClient(&redis.Options{Addrs: []string{mr.Addr()}})
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, mr, cleanup
}
