package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
	"github.com/hszk-dev/vidtube/internal/pipeline"
)

// LikeRepository implements repository.LikeRepository using MongoDB.
type LikeRepository struct {
	col collection
}

// NewLikeRepository creates a new LikeRepository backed by client.
func NewLikeRepository(client *Client) *LikeRepository {
	return &LikeRepository{col: client.Collection(CollLikes)}
}

var _ repository.LikeRepository = (*LikeRepository)(nil)

// Create persists a new like. A duplicate-key rejection from the partial
// unique (likedBy, target) index maps to ErrDuplicateReaction; that is the
// stable outcome of a racing double-toggle.
func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	if _, err := r.col.InsertOne(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateReaction
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// FindByActorTarget retrieves the like by actor on target.
func (r *LikeRepository) FindByActorTarget(ctx context.Context, actor primitive.ObjectID, target model.LikeTarget) (*model.Like, error) {
	filter := bson.D{
		{Key: "likedBy", Value: actor},
		{Key: target.Kind.String(), Value: target.ID},
	}

	var like model.Like
	err := r.col.FindOne(ctx, filter).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLikeNotFound
		}
		return nil, fmt.Errorf("failed to find like: %w", err)
	}
	return &like, nil
}

// Delete removes a like by its identifier.
func (r *LikeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrLikeNotFound
	}
	return nil
}

// DeleteByVideo removes every like referencing video.
func (r *LikeRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) error {
	if _, err := r.col.DeleteMany(ctx, bson.D{{Key: "video", Value: video}}); err != nil {
		return fmt.Errorf("failed to delete likes by video: %w", err)
	}
	return nil
}

// ListLikedVideos joins actor's video likes with the videos collection and
// returns the liked videos as summaries.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, actor primitive.ObjectID) ([]model.VideoSummary, error) {
	p := pipeline.Pipeline{
		pipeline.Match{Filter: bson.D{
			{Key: "likedBy", Value: actor},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}},
		pipeline.Lookup{
			From:         CollVideos,
			LocalField:   "video",
			ForeignField: "_id",
			As:           "video",
			Pipeline: pipeline.Pipeline{
				ownerProfileLookup(),
				pipeline.Unwind{Path: "$owner"},
			},
		},
		pipeline.Unwind{Path: "$video"},
		pipeline.Sort{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	cursor, err := r.col.Aggregate(ctx, p.Build())
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Video model.VideoSummary `bson:"video"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode liked videos: %w", err)
	}

	videos := make([]model.VideoSummary, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, row.Video)
	}
	return videos, nil
}
