package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription links a subscriber to a channel (both users).
// The (subscriber, channel) pair is unique at the storage layer.
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `bson:"subscriber"`
	Channel    primitive.ObjectID `bson:"channel"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

var ErrSelfSubscription = errors.New("cannot subscribe to your own channel")

// NewSubscription creates a Subscription of subscriber to channel.
// Self-subscription is rejected.
func NewSubscription(subscriber, channel primitive.ObjectID) (*Subscription, error) {
	if subscriber.IsZero() {
		return nil, ErrInvalidActor
	}
	if channel.IsZero() {
		return nil, ErrInvalidTarget
	}
	if subscriber == channel {
		return nil, ErrSelfSubscription
	}

	return &Subscription{
		ID:         primitive.NewObjectID(),
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now(),
	}, nil
}
