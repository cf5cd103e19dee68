package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// TweetRepository defines persistence operations for tweets.
type TweetRepository interface {
	// Create persists a new tweet.
	Create(ctx context.Context, tweet *model.Tweet) error

	// GetByID retrieves a tweet by its identifier.
	// Returns ErrTweetNotFound if the tweet does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error)

	// ListByOwner returns all tweets by owner, newest first.
	// Returns an empty slice when the user has no tweets.
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Tweet, error)

	// Update persists content and updatedAt changes.
	// Returns ErrTweetNotFound if the tweet does not exist.
	Update(ctx context.Context, tweet *model.Tweet) error

	// Delete removes a tweet.
	// Returns ErrTweetNotFound if the tweet does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
