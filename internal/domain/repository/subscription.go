package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	// Create persists a new subscription. Returns ErrDuplicateReaction if
	// the (subscriber, channel) uniqueness constraint rejects it.
	Create(ctx context.Context, sub *model.Subscription) error

	// FindBySubscriberChannel retrieves the subscription of subscriber to
	// channel. Returns ErrSubscriptionNotFound if none exists.
	FindBySubscriberChannel(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error)

	// Delete removes a subscription by its identifier.
	// Returns ErrSubscriptionNotFound if it does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ListSubscribers returns the deduplicated public profiles of channel's
	// subscribers plus the total count.
	ListSubscribers(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error)

	// ListSubscribedChannels returns the public profiles of the channels
	// subscriber follows plus the total count.
	ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error)

	// CountByChannel returns the number of subscribers of channel.
	CountByChannel(ctx context.Context, channel primitive.ObjectID) (int64, error)
}
