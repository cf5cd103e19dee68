package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	// Create persists a new like. Returns ErrDuplicateReaction if the
	// storage-layer uniqueness constraint on (likedBy, target) rejects it.
	Create(ctx context.Context, like *model.Like) error

	// FindByActorTarget retrieves the like by actor on target.
	// Returns ErrLikeNotFound if no such like exists.
	FindByActorTarget(ctx context.Context, actor primitive.ObjectID, target model.LikeTarget) (*model.Like, error)

	// Delete removes a like by its identifier.
	// Returns ErrLikeNotFound if the like does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByVideo removes every like referencing video.
	// Used by the video deletion cascade.
	DeleteByVideo(ctx context.Context, video primitive.ObjectID) error

	// ListLikedVideos returns summaries of the videos actor has liked.
	ListLikedVideos(ctx context.Context, actor primitive.ObjectID) ([]model.VideoSummary, error)
}
