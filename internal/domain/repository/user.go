package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// UserRepository defines the user operations this service needs. Account
// creation and credentials live with the upstream auth service.
type UserRepository interface {
	// GetByID retrieves a user by its identifier.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)

	// AddToWatchHistory adds video to user's watch history with set
	// semantics; re-watching never produces a duplicate entry.
	AddToWatchHistory(ctx context.Context, user, video primitive.ObjectID) error

	// PullFromAllWatchHistories removes video from every user's watch
	// history. Used by the video deletion cascade.
	PullFromAllWatchHistories(ctx context.Context, video primitive.ObjectID) error
}
