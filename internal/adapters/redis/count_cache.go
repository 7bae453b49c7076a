package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexora/corpsite-api/internal/domain/model"
)

const defaultSnapshotKey = "pending_counts:snapshot"

// CountCache shares the pending-count snapshot through Redis so every server
// instance (and every browser tab) observes the same badge state.
type CountCache struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewCountCache creates a snapshot cache with the given TTL.
func NewCountCache(client redis.UniversalClient, ttl time.Duration) *CountCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CountCache{client: client, key: defaultSnapshotKey, ttl: ttl}
}

func (c *CountCache) SaveSnapshot(ctx context.Context, snap model.PendingCounts) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *CountCache) LoadSnapshot(ctx context.Context) (model.PendingCounts, error) {
	data, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.EmptyPendingCounts(), nil
		}
		return model.PendingCounts{}, fmt.Errorf("redis get: %w", err)
	}

	var snap model.PendingCounts
	if unmarshalErr := json.Unmarshal([]byte(data), &snap); unmarshalErr != nil {
		return model.PendingCounts{}, fmt.Errorf("unmarshal snapshot: %w", unmarshalErr)
	}
	return snap, nil
}

func (c *CountCache) ClearSnapshot(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
