package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/logger"
)

// ProfileCache keeps the full get-profile payload in Redis. The UI
// refetches the whole profile after every mutation, so this read is by
// far the hottest path. Misses and Redis failures fall through to
// Postgres; every mutation invalidates.
type ProfileCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

type CachedProfile struct {
	User        *user.User               `json:"user"`
	Experiences []*experience.Experience `json:"experiences"`
}

func NewProfileCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl, logger: log}
}

func profileCacheKey(userID uuid.UUID) string {
	return "profile:full:" + userID.String()
}

func (c *ProfileCache) Get(ctx context.Context, userID uuid.UUID) (*CachedProfile, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, profileCacheKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("profile cache read failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil, false
	}

	var cached CachedProfile
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.logger.Warn("profile cache entry corrupt, dropping", zap.String("user_id", userID.String()), zap.Error(err))
		c.rdb.Del(ctx, profileCacheKey(userID))
		return nil, false
	}
	return &cached, true
}

func (c *ProfileCache) Set(ctx context.Context, userID uuid.UUID, p *CachedProfile) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(p)
	if err != nil {
		c.logger.Warn("failed to marshal profile for cache", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, profileCacheKey(userID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("profile cache write failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func (c *ProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, profileCacheKey(userID)).Err(); err != nil {
		c.logger.Warn("profile cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}
