package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// DashboardRepository assembles channel statistics read-models.
type DashboardRepository interface {
	// ChannelStats aggregates totals for owner's channel. A channel with
	// no videos or subscribers yields all-zero stats, never an error.
	ChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)
}
