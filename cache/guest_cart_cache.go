package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/models"
)

// GuestCartCache is a read-through cache for guest cart views. It is never
// authoritative: misses and Redis failures fall back to Postgres, and every
// cart mutation invalidates the key.
type GuestCartCache interface {
	Get(ctx context.Context, sessionID string) (*models.CartView, bool)
	Set(ctx context.Context, sessionID string, view *models.CartView)
	Invalidate(ctx context.Context, sessionID string)
}

type RedisGuestCartCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisGuestCartCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisGuestCartCache {
	return &RedisGuestCartCache{client: client, ttl: ttl, logger: logger}
}

func cartKey(sessionID string) string {
	return "guest_cart:" + sessionID
}

func (c *RedisGuestCartCache) Get(ctx context.Context, sessionID string) (*models.CartView, bool) {
	raw, err := c.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("guest cart cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var view models.CartView
	if err := json.Unmarshal(raw, &view); err != nil {
		c.logger.Warn("guest cart cache entry corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, cartKey(sessionID))
		return nil, false
	}
	return &view, true
}

func (c *RedisGuestCartCache) Set(ctx context.Context, sessionID string, view *models.CartView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cartKey(sessionID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("guest cart cache write failed", zap.Error(err))
	}
}

func (c *RedisGuestCartCache) Invalidate(ctx context.Context, sessionID string) {
	if err := c.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		c.logger.Warn("guest cart cache invalidation failed", zap.Error(err))
	}
}

// NoopGuestCartCache stands in when Redis is not configured.
type NoopGuestCartCache struct{}

func (NoopGuestCartCache) Get(context.Context, string) (*models.CartView, bool) { return nil, false }
func (NoopGuestCartCache) Set(context.Context, string, *models.CartView)        {}
func (NoopGuestCartCache) Invalidate(context.Context, string)                   {}
