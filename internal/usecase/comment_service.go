package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// AddCommentInput contains the input parameters for commenting on a video.
type AddCommentInput struct {
	Actor   model.Actor
	VideoID primitive.ObjectID
	Content string
}

// UpdateCommentInput contains the input parameters for editing a comment.
type UpdateCommentInput struct {
	Actor     model.Actor
	CommentID primitive.ObjectID
	Content   string
}

// CommentService defines the interface for comment business logic operations.
type CommentService interface {
	// AddComment attaches a new comment to a video.
	AddComment(ctx context.Context, input AddCommentInput) (*model.Comment, error)

	// ListComments returns the paginated comment read-model for a video.
	ListComments(ctx context.Context, videoID primitive.ObjectID, page repository.Page) ([]model.CommentView, error)

	// UpdateComment replaces a comment's content. Only the author may
	// update; ErrNotOwner otherwise.
	UpdateComment(ctx context.Context, input UpdateCommentInput) (*model.Comment, error)

	// DeleteComment removes a comment. Only the author may delete.
	DeleteComment(ctx context.Context, commentID primitive.ObjectID, actor model.Actor) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) CommentService {
	return &commentService{
		comments: comments,
		videos:   videos,
	}
}

var _ CommentService = (*commentService)(nil)

// AddComment verifies the video exists, then persists the comment.
func (s *commentService) AddComment(ctx context.Context, input AddCommentInput) (*model.Comment, error) {
	if _, err := s.videos.GetByID(ctx, input.VideoID); err != nil {
		return nil, err
	}

	comment, err := model.NewComment(input.Actor.ID, input.VideoID, input.Content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// ListComments runs the comment listing pipeline. A video with no comments
// yields an empty page, not an error.
func (s *commentService) ListComments(ctx context.Context, videoID primitive.ObjectID, page repository.Page) ([]model.CommentView, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	views, err := s.comments.ListByVideo(ctx, videoID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return views, nil
}

// UpdateComment replaces the comment body for its author.
func (s *commentService) UpdateComment(ctx context.Context, input UpdateCommentInput) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, input.CommentID)
	if err != nil {
		return nil, err
	}
	if !comment.OwnedBy(input.Actor.ID) {
		return nil, ErrNotOwner
	}

	if err := comment.SetContent(input.Content); err != nil {
		return nil, err
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes the comment for its author.
func (s *commentService) DeleteComment(ctx context.Context, commentID primitive.ObjectID, actor model.Actor) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !comment.OwnedBy(actor.ID) {
		return ErrNotOwner
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}
