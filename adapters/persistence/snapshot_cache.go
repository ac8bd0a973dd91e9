package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/portfolio"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

const snapshotKey = "portfolio:snapshot"

// SnapshotCache keeps the public aggregate snapshot in Redis so anonymous
// page loads never hit Postgres. Cache failures are logged and ignored:
// the store is always the source of truth.
type SnapshotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *SnapshotCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SnapshotCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *SnapshotCache) Get(ctx context.Context) (*portfolio.Snapshot, bool) {
	raw, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("snapshot cache read failed")
		}
		return nil, false
	}
	var snap portfolio.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.logger.Warn("snapshot cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return &snap, true
}

func (c *SnapshotCache) Set(ctx context.Context, snap *portfolio.Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("snapshot cache marshal failed")
		return
	}
	if err := c.rdb.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("snapshot cache write failed")
	}
}

func (c *SnapshotCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, snapshotKey).Err(); err != nil {
		c.logger.Warn("snapshot cache invalidation failed")
	}
}
