package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/infrastructure/cache"
	"github.com/hszk-dev/vidtube/internal/infrastructure/metrics"
)

// CachedDashboardServiceConfig holds configuration for CachedDashboardService.
type CachedDashboardServiceConfig struct {
	// StatsTTL is the TTL for cached channel stats.
	StatsTTL time.Duration
}

// DefaultCachedDashboardServiceConfig returns the default configuration.
func DefaultCachedDashboardServiceConfig() CachedDashboardServiceConfig {
	return CachedDashboardServiceConfig{
		StatsTTL: 1 * time.Minute,
	}
}

// cachedDashboardService wraps DashboardService with caching for channel
// stats. It implements the decorator pattern to add caching without
// modifying the original service.
type cachedDashboardService struct {
	delegate DashboardService
	cache    cache.StatsCache
	sfGroup  singleflight.Group

	statsTTL time.Duration
}

// NewCachedDashboardService creates a new cached DashboardService wrapping
// the provided delegate.
func NewCachedDashboardService(
	delegate DashboardService,
	statsCache cache.StatsCache,
	cfg CachedDashboardServiceConfig,
) DashboardService {
	return &cachedDashboardService{
		delegate: delegate,
		cache:    statsCache,
		statsTTL: cfg.StatsTTL,
	}
}

// GetChannelStats retrieves channel stats with caching.
// Uses singleflight to prevent cache stampede on concurrent requests for
// the same channel.
func (s *cachedDashboardService) GetChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	key := owner.Hex()
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.getStatsWithCache(ctx, owner)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.(*model.ChannelStats), nil
}

// getStatsWithCache implements the cache-aside pattern.
func (s *cachedDashboardService) getStatsWithCache(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	stats, err := s.cache.Get(ctx, owner)
	if err != nil {
		// Log cache error but continue to the aggregation
		slog.Warn("stats cache get failed, falling back to aggregation",
			"channel_id", owner.Hex(),
			"error", err,
		)
	}

	if stats != nil {
		return stats, nil // Cache hit
	}

	stats, err = s.delegate.GetChannelStats(ctx, owner)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, owner, stats, s.statsTTL); err != nil {
		slog.Warn("failed to cache channel stats",
			"channel_id", owner.Hex(),
			"error", err,
		)
	}

	return stats, nil
}

// ListChannelVideos delegates to the underlying service. The listing
// reflects writes immediately, so it is never cached.
func (s *cachedDashboardService) ListChannelVideos(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error) {
	return s.delegate.ListChannelVideos(ctx, owner)
}
