package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safe/backend/internal/infrastructure/config"
)

func unreachableRedis() config.RedisConfig {
	// A port nothing listens on, so Create exercises the fallback path.
	return config.RedisConfig{Host: "127.0.0.1", Port: 1}
}

func TestBlacklistFactory_FallsBackToInMemory(t *testing.T) {
	factory := NewBlacklistFactory(unreachableRedis())

	blacklist, err := factory.Create()

	require.NoError(t, err)
	require.NotNil(t, blacklist)

	ctx := context.Background()
	require.NoError(t, blacklist.Revoke(ctx, "some-jti", time.Minute))

	revoked, err := blacklist.IsRevoked(ctx, "some-jti")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestBlacklistFactory_NoFallback(t *testing.T) {
	factory := NewBlacklistFactory(unreachableRedis(), WithInMemoryFallback(false))

	_, err := factory.Create()

	assert.Error(t, err)
}
