package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) (string, func()) {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") != "1" {
		t.Skip("set GO_TEST_INTEGRATION=1 to run integration tests")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port()), func() { _ = c.Terminate(ctx) }
}

func TestNewRedisCache_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "://nope", "")
	require.Error(t, err)
}

func TestRedisCache_RevokeLifecycle(t *testing.T) {
	url, stop := startRedis(t)
	defer stop()

	ctx := context.Background()
	c, err := NewRedisCache(ctx, url, "test:session:")
	require.NoError(t, err)
	defer c.Close()

	sid := uuid.NewString()

	revoked, err := c.IsRevoked(ctx, sid)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, c.Revoke(ctx, sid, uuid.New(), time.Now().Add(time.Minute)))

	revoked, err = c.IsRevoked(ctx, sid)
	require.NoError(t, err)
	require.True(t, revoked)

	// Повторный отзыв идемпотентен.
	require.NoError(t, c.Revoke(ctx, sid, uuid.New(), time.Now().Add(time.Minute)))

	rc := c.(*redisCache)
	ttl, err := rc.rdb.TTL(ctx, rc.key(sid)).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisCache_RevokeExpiredIsNoop(t *testing.T) {
	url, stop := startRedis(t)
	defer stop()

	ctx := context.Background()
	c, err := NewRedisCache(ctx, url, "")
	require.NoError(t, err)
	defer c.Close()

	sid := uuid.NewString()
	require.NoError(t, c.Revoke(ctx, sid, uuid.New(), time.Now().Add(-time.Minute)))

	revoked, err := c.IsRevoked(ctx, sid)
	require.NoError(t, err)
	require.False(t, revoked)
}
