package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/infrastructure/metrics"
)

const (
	// statsCacheKeyPrefix is the prefix for channel stats keys in Redis.
	statsCacheKeyPrefix = "channelstats:"
)

// statsJSON is the JSON representation of ChannelStats for caching.
// Using an explicit struct avoids coupling to the view-model's JSON tags.
type statsJSON struct {
	TotalVideos     int64 `json:"total_videos"`
	TotalViews      int64 `json:"total_views"`
	TotalLikes      int64 `json:"total_likes"`
	SubscriberCount int64 `json:"subscriber_count"`
}

// RedisStatsCache implements StatsCache using Redis as the backing store.
type RedisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a new Redis-backed channel stats cache.
func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{
		client: client,
	}
}

var _ StatsCache = (*RedisStatsCache)(nil)

// Get retrieves channel stats from Redis cache.
// Returns nil, nil on cache miss.
func (c *RedisStatsCache) Get(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	key := c.buildKey(owner)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeRedis).Inc()
			return nil, nil // Cache miss
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var v statsJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("deserialize stats: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypeRedis).Inc()
	return &model.ChannelStats{
		TotalVideos:     v.TotalVideos,
		TotalViews:      v.TotalViews,
		TotalLikes:      v.TotalLikes,
		SubscriberCount: v.SubscriberCount,
	}, nil
}

// Set stores channel stats in Redis cache with the specified TTL.
func (c *RedisStatsCache) Set(ctx context.Context, owner primitive.ObjectID, stats *model.ChannelStats, ttl time.Duration) error {
	key := c.buildKey(owner)

	data, err := json.Marshal(statsJSON{
		TotalVideos:     stats.TotalVideos,
		TotalViews:      stats.TotalViews,
		TotalLikes:      stats.TotalLikes,
		SubscriberCount: stats.SubscriberCount,
	})
	if err != nil {
		return fmt.Errorf("serialize stats: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypeRedis).Inc()
	return nil
}

// Delete removes channel stats from Redis cache.
func (c *RedisStatsCache) Delete(ctx context.Context, owner primitive.ObjectID) error {
	key := c.buildKey(owner)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		return fmt.Errorf("redis del: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusSuccess, metrics.CacheTypeRedis).Inc()
	return nil
}

// buildKey constructs the Redis key for a channel's stats.
func (c *RedisStatsCache) buildKey(owner primitive.ObjectID) string {
	return statsCacheKeyPrefix + owner.Hex()
}
