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
)

// UserRepository implements repository.UserRepository using MongoDB.
type UserRepository struct {
	col collection
}

// NewUserRepository creates a new UserRepository backed by client.
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{col: client.Collection(CollUsers)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

// GetByID retrieves a user by its identifier.
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return &user, nil
}

// AddToWatchHistory adds video to user's watch history. $addToSet makes
// the operation idempotent; re-watching never duplicates the entry.
func (r *UserRepository) AddToWatchHistory(ctx context.Context, user, video primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: user}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "watchHistory", Value: video}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to add to watch history: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

// PullFromAllWatchHistories removes video from every user's watch history.
func (r *UserRepository) PullFromAllWatchHistories(ctx context.Context, video primitive.ObjectID) error {
	_, err := r.col.UpdateMany(ctx,
		bson.D{{Key: "watchHistory", Value: video}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "watchHistory", Value: video}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to pull video from watch histories: %w", err)
	}
	return nil
}
