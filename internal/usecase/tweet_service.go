package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// TweetService defines the interface for tweet business logic operations.
type TweetService interface {
	// CreateTweet persists a new tweet by the actor.
	CreateTweet(ctx context.Context, actor model.Actor, content string) (*model.Tweet, error)

	// ListUserTweets returns all tweets by owner, newest first. A user
	// with no tweets yields an empty list.
	ListUserTweets(ctx context.Context, owner primitive.ObjectID) ([]*model.Tweet, error)

	// UpdateTweet replaces a tweet's content. Only the author may update;
	// ErrNotOwner otherwise.
	UpdateTweet(ctx context.Context, actor model.Actor, tweetID primitive.ObjectID, content string) (*model.Tweet, error)

	// DeleteTweet removes a tweet. Only the author may delete.
	DeleteTweet(ctx context.Context, actor model.Actor, tweetID primitive.ObjectID) error
}

type tweetService struct {
	tweets repository.TweetRepository
	users  repository.UserRepository
}

// NewTweetService creates a new TweetService instance.
func NewTweetService(tweets repository.TweetRepository, users repository.UserRepository) TweetService {
	return &tweetService{
		tweets: tweets,
		users:  users,
	}
}

var _ TweetService = (*tweetService)(nil)

func (s *tweetService) CreateTweet(ctx context.Context, actor model.Actor, content string) (*model.Tweet, error) {
	tweet, err := model.NewTweet(actor.ID, content)
	if err != nil {
		return nil, err
	}

	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}

	return tweet, nil
}

// ListUserTweets verifies the user exists, then lists their tweets.
func (s *tweetService) ListUserTweets(ctx context.Context, owner primitive.ObjectID) ([]*model.Tweet, error) {
	if _, err := s.users.GetByID(ctx, owner); err != nil {
		return nil, err
	}

	tweets, err := s.tweets.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}

	return tweets, nil
}

func (s *tweetService) UpdateTweet(ctx context.Context, actor model.Actor, tweetID primitive.ObjectID, content string) (*model.Tweet, error) {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if !tweet.OwnedBy(actor.ID) {
		return nil, ErrNotOwner
	}

	if err := tweet.SetContent(content); err != nil {
		return nil, err
	}

	if err := s.tweets.Update(ctx, tweet); err != nil {
		return nil, fmt.Errorf("update tweet: %w", err)
	}

	return tweet, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, actor model.Actor, tweetID primitive.ObjectID) error {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if !tweet.OwnedBy(actor.ID) {
		return ErrNotOwner
	}

	if err := s.tweets.Delete(ctx, tweetID); err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}

	return nil
}
