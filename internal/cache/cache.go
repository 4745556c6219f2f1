// cache хранит отозванные сессии в Redis.
//
// Запись живёт ровно до истечения токена: после exp токен отвергается
// проверкой подписи, и запись об отзыве больше не нужна.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionCache — минимальный контракт кэша отозванных сессий.
type SessionCache interface {
	// IsRevoked сообщает, была ли сессия отозвана.
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
	// Revoke помечает сессию отозванной до expiresAt.
	Revoke(ctx context.Context, sessionID string, userID uuid.UUID, expiresAt time.Time) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "social:session:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (SessionCache, error) {
	if prefix == "" {
		prefix = "social:session:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix, now: time.Now}, nil
}

func (c *redisCache) key(sid string) string { return c.prefix + sid }

func (c *redisCache) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := c.rdb.Exists(ctx, c.key(sessionID)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// Храним как Redis Hash с полями: uid, rev (unix-время отзыва).
func (c *redisCache) Revoke(ctx context.Context, sessionID string, userID uuid.UUID, expiresAt time.Time) error {
	now := c.now()

	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(sessionID), map[string]any{
		"uid": userID.String(),
		"rev": now.Unix(),
	})
	pipe.Expire(ctx, c.key(sessionID), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Close() error { return c.rdb.Close() }
