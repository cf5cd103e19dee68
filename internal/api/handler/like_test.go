package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
	"github.com/hszk-dev/vidtube/internal/usecase"
)

func TestLikeHandler_ToggleVideoLike(t *testing.T) {
	actor := model.Actor{ID: primitive.NewObjectID()}
	videoID := primitive.NewObjectID()

	var gotTarget model.LikeTarget
	svc := &mockLikeService{
		toggleFn: func(ctx context.Context, a model.Actor, target model.LikeTarget) (usecase.ToggleState, error) {
			gotTarget = target
			return usecase.ToggleAdded, nil
		},
	}
	h := NewLikeHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/likes/toggle/video/"+videoID.Hex(), nil)
	rec := serveAuthed(t, http.MethodPost, "/v1/likes/toggle/video/{id}", h.ToggleVideoLike, req, actor)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if gotTarget.Kind != model.TargetVideo {
		t.Errorf("target kind = %s, want %s", gotTarget.Kind, model.TargetVideo)
	}
	if gotTarget.ID != videoID {
		t.Errorf("target ID = %s, want %s", gotTarget.ID.Hex(), videoID.Hex())
	}

	var resp struct {
		Data ToggleResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.State != usecase.ToggleAdded {
		t.Errorf("state = %s, want %s", resp.Data.State, usecase.ToggleAdded)
	}
}

func TestLikeHandler_ToggleCommentLike_TargetMissing(t *testing.T) {
	svc := &mockLikeService{
		toggleFn: func(ctx context.Context, actor model.Actor, target model.LikeTarget) (usecase.ToggleState, error) {
			return "", repository.ErrCommentNotFound
		},
	}
	h := NewLikeHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/likes/toggle/comment/"+primitive.NewObjectID().Hex(), nil)
	rec := serveAuthed(t, http.MethodPost, "/v1/likes/toggle/comment/{id}", h.ToggleCommentLike, req, model.Actor{ID: primitive.NewObjectID()})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestLikeHandler_ListLikedVideos(t *testing.T) {
	actor := model.Actor{ID: primitive.NewObjectID()}

	svc := &mockLikeService{
		listFn: func(ctx context.Context, a model.Actor) ([]model.VideoSummary, error) {
			if a.ID != actor.ID {
				t.Errorf("listed for %s, want %s", a.ID.Hex(), actor.ID.Hex())
			}
			return []model.VideoSummary{{Title: "liked"}}, nil
		},
	}
	h := NewLikeHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/likes/videos", nil)
	rec := serveAuthed(t, http.MethodGet, "/v1/likes/videos", h.ListLikedVideos, req, actor)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
