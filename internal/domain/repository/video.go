package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// SearchParams controls the video search pipeline.
type SearchParams struct {
	// Query is matched case-insensitively against title and description.
	Query string
	// SortBy is the field to sort on; empty means insertion order
	// (createdAt descending).
	SortBy string
	// Ascending selects sort direction when SortBy is set.
	Ascending bool
	Page      Page
}

// VideoRepository defines persistence and read-model operations for videos.
// Implementations are provided by the infrastructure layer.
type VideoRepository interface {
	// Create persists a new video entity.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its identifier.
	// Returns ErrVideoNotFound if the video does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error)

	// Update persists title, description, thumbnail and updatedAt changes.
	// Owner is never written; it is immutable after creation.
	Update(ctx context.Context, video *model.Video) error

	// SetPublished flips the publish flag.
	// Returns ErrVideoNotFound if the video does not exist.
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error

	// IncrementViews adds one view to the video counter.
	IncrementViews(ctx context.Context, id primitive.ObjectID) error

	// Delete removes the video document.
	// Returns ErrVideoNotFound if the video does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Search runs the search pipeline: regex match on title/description,
	// reduced owner join, sort and pagination. An empty result is a valid
	// outcome, not an error.
	Search(ctx context.Context, params SearchParams) ([]model.VideoSummary, error)

	// GetDetail runs the detail pipeline for viewer: like count and
	// viewer-relative isLiked, owner joined with subscriber count and
	// isSubscribed, plus embedded comments. The flags and counts come from
	// one pipeline execution so they are mutually consistent.
	// Returns ErrVideoNotFound if the video does not exist.
	GetDetail(ctx context.Context, id, viewer primitive.ObjectID) (*model.VideoDetail, error)

	// ListByOwner returns the owner's videos with their like counts.
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error)
}
