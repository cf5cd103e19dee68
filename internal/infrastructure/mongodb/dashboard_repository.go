package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
	"github.com/hszk-dev/vidtube/internal/pipeline"
)

// DashboardRepository assembles channel statistics across the videos,
// likes and subscriptions collections.
type DashboardRepository struct {
	videos        collection
	subscriptions collection
}

// NewDashboardRepository creates a new DashboardRepository backed by client.
func NewDashboardRepository(client *Client) *DashboardRepository {
	return &DashboardRepository{
		videos:        client.Collection(CollVideos),
		subscriptions: client.Collection(CollSubscriptions),
	}
}

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

// videoStatsRow is the folded output of the per-video stats pipeline.
type videoStatsRow struct {
	TotalVideos int64 `bson:"totalVideos"`
	TotalViews  int64 `bson:"totalViews"`
	TotalLikes  int64 `bson:"totalLikes"`
}

// ChannelStats aggregates totals for owner's channel. A channel with no
// videos or subscribers yields all-zero stats, never an error.
func (r *DashboardRepository) ChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	videoStats, err := r.videoStats(ctx, owner)
	if err != nil {
		return nil, err
	}

	subscriberCount, err := r.subscriberCount(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &model.ChannelStats{
		TotalVideos:     videoStats.TotalVideos,
		TotalViews:      videoStats.TotalViews,
		TotalLikes:      videoStats.TotalLikes,
		SubscriberCount: subscriberCount,
	}, nil
}

// videoStats folds the owner's videos into total counts: one likes join
// per video, then a single group over everything.
func (r *DashboardRepository) videoStats(ctx context.Context, owner primitive.ObjectID) (videoStatsRow, error) {
	p := pipeline.Pipeline{
		pipeline.Match{Filter: bson.D{{Key: "owner", Value: owner}}},
		pipeline.Lookup{
			From:         CollLikes,
			LocalField:   "_id",
			ForeignField: "video",
			As:           "likes",
		},
		pipeline.AddFields{Fields: bson.D{
			{Key: "likesCount", Value: pipeline.Size("$likes")},
		}},
		pipeline.Group{
			ID: nil,
			Fields: bson.D{
				{Key: "totalVideos", Value: pipeline.Sum(1)},
				{Key: "totalViews", Value: pipeline.Sum("$views")},
				{Key: "totalLikes", Value: pipeline.Sum("$likesCount")},
			},
		},
	}

	cursor, err := r.videos.Aggregate(ctx, p.Build())
	if err != nil {
		return videoStatsRow{}, fmt.Errorf("failed to aggregate video stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []videoStatsRow
	if err := cursor.All(ctx, &rows); err != nil {
		return videoStatsRow{}, fmt.Errorf("failed to decode video stats: %w", err)
	}
	if len(rows) == 0 {
		return videoStatsRow{}, nil
	}
	return rows[0], nil
}

func (r *DashboardRepository) subscriberCount(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	count, err := r.subscriptions.CountDocuments(ctx, bson.D{{Key: "channel", Value: owner}})
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}
