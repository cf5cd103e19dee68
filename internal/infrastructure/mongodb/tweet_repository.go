package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// TweetRepository implements repository.TweetRepository using MongoDB.
type TweetRepository struct {
	col collection
}

// NewTweetRepository creates a new TweetRepository backed by client.
func NewTweetRepository(client *Client) *TweetRepository {
	return &TweetRepository{col: client.Collection(CollTweets)}
}

var _ repository.TweetRepository = (*TweetRepository)(nil)

// Create persists a new tweet.
func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	if _, err := r.col.InsertOne(ctx, tweet); err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

// GetByID retrieves a tweet by its identifier.
func (r *TweetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to get tweet by ID: %w", err)
	}
	return &tweet, nil
}

// ListByOwner returns all tweets by owner, newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer cursor.Close(ctx)

	var tweets []*model.Tweet
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode tweets: %w", err)
	}
	return tweets, nil
}

// Update persists content changes.
func (r *TweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	tweet.UpdatedAt = time.Now()

	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: tweet.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: tweet.Content},
			{Key: "updatedAt", Value: tweet.UpdatedAt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update tweet: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrTweetNotFound
	}
	return nil
}

// Delete removes a tweet.
func (r *TweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrTweetNotFound
	}
	return nil
}
