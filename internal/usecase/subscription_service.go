package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// SubscriptionService defines the interface for subscription business logic
// operations.
type SubscriptionService interface {
	// ToggleSubscription flips the actor's subscription to channel.
	// Self-subscription is rejected before any lookup.
	ToggleSubscription(ctx context.Context, actor model.Actor, channel primitive.ObjectID) (ToggleState, error)

	// ListSubscribers returns the deduplicated public profiles of
	// channel's subscribers.
	ListSubscribers(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error)

	// ListSubscribedChannels returns the public profiles of the channels
	// subscriber follows.
	ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error)
}

type subscriptionService struct {
	subscriptions repository.SubscriptionRepository
	users         repository.UserRepository
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(subscriptions repository.SubscriptionRepository, users repository.UserRepository) SubscriptionService {
	return &subscriptionService{
		subscriptions: subscriptions,
		users:         users,
	}
}

var _ SubscriptionService = (*subscriptionService)(nil)

// ToggleSubscription verifies the channel exists and is not the actor's
// own, then flips the subscription record.
func (s *subscriptionService) ToggleSubscription(ctx context.Context, actor model.Actor, channel primitive.ObjectID) (ToggleState, error) {
	if actor.ID == channel {
		return "", model.ErrSelfSubscription
	}
	if _, err := s.users.GetByID(ctx, channel); err != nil {
		return "", err
	}

	var existing *model.Subscription
	return toggle(ctx,
		func(ctx context.Context) (bool, error) {
			sub, err := s.subscriptions.FindBySubscriberChannel(ctx, actor.ID, channel)
			if err != nil {
				if errors.Is(err, repository.ErrSubscriptionNotFound) {
					return false, nil
				}
				return false, err
			}
			existing = sub
			return true, nil
		},
		func(ctx context.Context) error {
			sub, err := model.NewSubscription(actor.ID, channel)
			if err != nil {
				return err
			}
			return s.subscriptions.Create(ctx, sub)
		},
		func(ctx context.Context) error {
			return s.subscriptions.Delete(ctx, existing.ID)
		},
	)
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error) {
	if _, err := s.users.GetByID(ctx, channel); err != nil {
		return nil, err
	}

	list, err := s.subscriptions.ListSubscribers(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return list, nil
}

func (s *subscriptionService) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error) {
	if _, err := s.users.GetByID(ctx, subscriber); err != nil {
		return nil, err
	}

	list, err := s.subscriptions.ListSubscribedChannels(ctx, subscriber)
	if err != nil {
		return nil, fmt.Errorf("list subscribed channels: %w", err)
	}
	return list, nil
}
