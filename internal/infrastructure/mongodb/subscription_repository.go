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

// SubscriptionRepository implements repository.SubscriptionRepository using
// MongoDB.
type SubscriptionRepository struct {
	col collection
}

// NewSubscriptionRepository creates a new SubscriptionRepository backed by
// client.
func NewSubscriptionRepository(client *Client) *SubscriptionRepository {
	return &SubscriptionRepository{col: client.Collection(CollSubscriptions)}
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)

// Create persists a new subscription. A duplicate-key rejection from the
// unique (subscriber, channel) index maps to ErrDuplicateReaction.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	if _, err := r.col.InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateReaction
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// FindBySubscriberChannel retrieves the subscription of subscriber to channel.
func (r *SubscriptionRepository) FindBySubscriberChannel(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error) {
	filter := bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	}

	var sub model.Subscription
	err := r.col.FindOne(ctx, filter).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	return &sub, nil
}

// Delete removes a subscription by its identifier.
func (r *SubscriptionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrSubscriptionNotFound
	}
	return nil
}

// ListSubscribers returns the public profiles of channel's subscribers
// plus the total count.
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error) {
	return r.listProfiles(ctx,
		bson.D{{Key: "channel", Value: channel}},
		"subscriber",
	)
}

// ListSubscribedChannels returns the public profiles of the channels
// subscriber follows plus the total count.
func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error) {
	return r.listProfiles(ctx,
		bson.D{{Key: "subscriber", Value: subscriber}},
		"channel",
	)
}

// CountByChannel returns the number of subscribers of channel.
func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.D{{Key: "channel", Value: channel}})
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

// listProfiles joins subscription rows against users via joinField and
// folds them into a single deduplicated ProfileList document.
func (r *SubscriptionRepository) listProfiles(ctx context.Context, match bson.D, joinField string) (*model.ProfileList, error) {
	p := pipeline.Pipeline{
		pipeline.Match{Filter: match},
		pipeline.Lookup{
			From:         CollUsers,
			LocalField:   joinField,
			ForeignField: "_id",
			As:           "profile",
			Pipeline: pipeline.Pipeline{
				pipeline.Project{Fields: bson.D{
					{Key: "username", Value: 1},
					{Key: "fullName", Value: 1},
					{Key: "avatar", Value: 1},
				}},
			},
		},
		pipeline.Unwind{Path: "$profile"},
		pipeline.Group{
			ID: nil,
			Fields: bson.D{
				{Key: "profiles", Value: pipeline.Push("$profile")},
				{Key: "total", Value: pipeline.Sum(1)},
			},
		},
		pipeline.Project{Fields: bson.D{
			{Key: "_id", Value: 0},
			{Key: "profiles", Value: 1},
			{Key: "total", Value: 1},
		}},
	}

	cursor, err := r.col.Aggregate(ctx, p.Build())
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var results []model.ProfileList
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	if len(results) == 0 {
		// No subscriptions matched; an empty list, not an error.
		return &model.ProfileList{Profiles: []model.Profile{}}, nil
	}
	return &results[0], nil
}
