package usecase

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

func TestCommentService_AddComment(t *testing.T) {
	actor := model.Actor{ID: primitive.NewObjectID()}
	videoID := primitive.NewObjectID()

	var created *model.Comment
	comments := &mockCommentRepository{
		createFn: func(ctx context.Context, comment *model.Comment) error {
			created = comment
			return nil
		},
	}

	svc := NewCommentService(comments, existingVideoRepo(primitive.NewObjectID()))

	comment, err := svc.AddComment(context.Background(), AddCommentInput{
		Actor:   actor,
		VideoID: videoID,
		Content: "nice video",
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	if created == nil {
		t.Fatal("expected comment to be persisted")
	}
	if comment.Video != videoID {
		t.Errorf("video = %s, want %s", comment.Video.Hex(), videoID.Hex())
	}
	if comment.Owner != actor.ID {
		t.Errorf("owner = %s, want %s", comment.Owner.Hex(), actor.ID.Hex())
	}
}

func TestCommentService_AddComment_VideoNotFound(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, &mockVideoRepository{})

	_, err := svc.AddComment(context.Background(), AddCommentInput{
		Actor:   model.Actor{ID: primitive.NewObjectID()},
		VideoID: primitive.NewObjectID(),
		Content: "orphan",
	})
	if !errors.Is(err, repository.ErrVideoNotFound) {
		t.Errorf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestCommentService_AddComment_EmptyContent(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, existingVideoRepo(primitive.NewObjectID()))

	_, err := svc.AddComment(context.Background(), AddCommentInput{
		Actor:   model.Actor{ID: primitive.NewObjectID()},
		VideoID: primitive.NewObjectID(),
		Content: "   ",
	})
	if !errors.Is(err, model.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestCommentService_ListComments(t *testing.T) {
	var gotPage repository.Page
	comments := &mockCommentRepository{
		listByVideoFn: func(ctx context.Context, video primitive.ObjectID, page repository.Page) ([]model.CommentView, error) {
			gotPage = page
			return []model.CommentView{}, nil
		},
	}

	svc := NewCommentService(comments, existingVideoRepo(primitive.NewObjectID()))

	views, err := svc.ListComments(context.Background(), primitive.NewObjectID(), repository.Page{Number: 3, Size: 20})
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}

	if len(views) != 0 {
		t.Errorf("views = %d, want 0", len(views))
	}
	if gotPage.Number != 3 || gotPage.Size != 20 {
		t.Errorf("page = %+v, want {3 20}", gotPage)
	}
}

func TestCommentService_ListComments_VideoMissing(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, &mockVideoRepository{})

	_, err := svc.ListComments(context.Background(), primitive.NewObjectID(), repository.Page{Number: 1, Size: 10})
	if !errors.Is(err, repository.ErrVideoNotFound) {
		t.Errorf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestCommentService_ListComments_InvalidPage(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, &mockVideoRepository{})

	_, err := svc.ListComments(context.Background(), primitive.NewObjectID(), repository.Page{Number: 0, Size: 10})
	if !errors.Is(err, repository.ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}
}

func TestCommentService_UpdateComment(t *testing.T) {
	actor := model.Actor{ID: primitive.NewObjectID()}

	var updated *model.Comment
	comments := &mockCommentRepository{
		getByIDFn: func(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
			return &model.Comment{ID: id, Owner: actor.ID, Content: "before"}, nil
		},
		updateFn: func(ctx context.Context, comment *model.Comment) error {
			updated = comment
			return nil
		},
	}

	svc := NewCommentService(comments, &mockVideoRepository{})

	comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		Actor:     actor,
		CommentID: primitive.NewObjectID(),
		Content:   "after",
	})
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}

	if comment.Content != "after" {
		t.Errorf("content = %s, want after", comment.Content)
	}
	if updated == nil {
		t.Error("expected comment to be written")
	}
}

func TestCommentService_UpdateComment_NotOwner(t *testing.T) {
	comments := &mockCommentRepository{
		getByIDFn: func(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
			return &model.Comment{ID: id, Owner: primitive.NewObjectID(), Content: "before"}, nil
		},
		updateFn: func(ctx context.Context, comment *model.Comment) error {
			t.Error("comment must not be written on ownership failure")
			return nil
		},
	}

	svc := NewCommentService(comments, &mockVideoRepository{})

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		Actor:     model.Actor{ID: primitive.NewObjectID()},
		CommentID: primitive.NewObjectID(),
		Content:   "hijacked",
	})
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestCommentService_DeleteComment(t *testing.T) {
	actor := model.Actor{ID: primitive.NewObjectID()}
	commentID := primitive.NewObjectID()

	var deleted primitive.ObjectID
	comments := &mockCommentRepository{
		getByIDFn: func(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
			return &model.Comment{ID: id, Owner: actor.ID}, nil
		},
		deleteFn: func(ctx context.Context, id primitive.ObjectID) error {
			deleted = id
			return nil
		},
	}

	svc := NewCommentService(comments, &mockVideoRepository{})

	if err := svc.DeleteComment(context.Background(), commentID, actor); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	if deleted != commentID {
		t.Errorf("deleted = %s, want %s", deleted.Hex(), commentID.Hex())
	}
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, &mockVideoRepository{})

	err := svc.DeleteComment(context.Background(), primitive.NewObjectID(), model.Actor{ID: primitive.NewObjectID()})
	if !errors.Is(err, repository.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}
