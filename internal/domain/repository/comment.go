package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID retrieves a comment by its identifier.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)

	// Update persists content and updatedAt changes.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *model.Comment) error

	// Delete removes a comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByVideo removes every comment referencing video.
	// Used by the video deletion cascade.
	DeleteByVideo(ctx context.Context, video primitive.ObjectID) error

	// ListByVideo runs the comment listing pipeline: reduced owner join,
	// like count, insertion order, pagination.
	ListByVideo(ctx context.Context, video primitive.ObjectID, page Page) ([]model.CommentView, error)
}
