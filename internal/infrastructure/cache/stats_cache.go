package cache

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// StatsCache defines the interface for caching channel statistics.
// Implementations should handle serialization/deserialization transparently.
type StatsCache interface {
	// Get retrieves channel stats from cache by owner.
	// Returns nil, nil if the stats are not cached (cache miss).
	Get(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)

	// Set stores channel stats in cache with the specified TTL.
	Set(ctx context.Context, owner primitive.ObjectID, stats *model.ChannelStats, ttl time.Duration) error

	// Delete removes channel stats from cache by owner.
	// Returns nil if the stats were not cached.
	Delete(ctx context.Context, owner primitive.ObjectID) error
}
