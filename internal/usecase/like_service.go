package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// LikeService defines the interface for like business logic operations.
type LikeService interface {
	// ToggleLike flips the actor's like on target. Returns ToggleAdded or
	// ToggleRemoved depending on the resulting state.
	ToggleLike(ctx context.Context, actor model.Actor, target model.LikeTarget) (ToggleState, error)

	// ListLikedVideos returns summaries of every video the actor has liked.
	ListLikedVideos(ctx context.Context, actor model.Actor) ([]model.VideoSummary, error)
}

type likeService struct {
	likes    repository.LikeRepository
	videos   repository.VideoRepository
	comments repository.CommentRepository
	tweets   repository.TweetRepository
}

// NewLikeService creates a new LikeService instance.
func NewLikeService(
	likes repository.LikeRepository,
	videos repository.VideoRepository,
	comments repository.CommentRepository,
	tweets repository.TweetRepository,
) LikeService {
	return &likeService{
		likes:    likes,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
	}
}

var _ LikeService = (*likeService)(nil)

// ToggleLike verifies the target exists, then flips the like record.
func (s *likeService) ToggleLike(ctx context.Context, actor model.Actor, target model.LikeTarget) (ToggleState, error) {
	if !target.Kind.IsValid() {
		return "", model.ErrInvalidTargetKind
	}
	if err := s.checkTargetExists(ctx, target); err != nil {
		return "", err
	}

	var existing *model.Like
	return toggle(ctx,
		func(ctx context.Context) (bool, error) {
			like, err := s.likes.FindByActorTarget(ctx, actor.ID, target)
			if err != nil {
				if errors.Is(err, repository.ErrLikeNotFound) {
					return false, nil
				}
				return false, err
			}
			existing = like
			return true, nil
		},
		func(ctx context.Context) error {
			like, err := model.NewLike(actor.ID, target)
			if err != nil {
				return err
			}
			return s.likes.Create(ctx, like)
		},
		func(ctx context.Context) error {
			return s.likes.Delete(ctx, existing.ID)
		},
	)
}

// ListLikedVideos runs the liked-videos read-model for the actor.
func (s *likeService) ListLikedVideos(ctx context.Context, actor model.Actor) ([]model.VideoSummary, error) {
	videos, err := s.likes.ListLikedVideos(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list liked videos: %w", err)
	}
	return videos, nil
}

// checkTargetExists resolves the target against its owning collection so
// likes never dangle on missing entities.
func (s *likeService) checkTargetExists(ctx context.Context, target model.LikeTarget) error {
	switch target.Kind {
	case model.TargetVideo:
		_, err := s.videos.GetByID(ctx, target.ID)
		return err
	case model.TargetComment:
		_, err := s.comments.GetByID(ctx, target.ID)
		return err
	case model.TargetTweet:
		_, err := s.tweets.GetByID(ctx, target.ID)
		return err
	default:
		return model.ErrInvalidTargetKind
	}
}
