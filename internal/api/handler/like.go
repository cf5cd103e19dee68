package handler

import (
	"net/http"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/usecase"
)

// ToggleResponse reports the resulting state of a toggle operation.
type ToggleResponse struct {
	State usecase.ToggleState `json:"state"`
}

// LikeHandler handles like-related HTTP requests.
type LikeHandler struct {
	svc usecase.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(svc usecase.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// ToggleVideoLike handles POST /v1/likes/toggle/video/{id}
func (h *LikeHandler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.TargetVideo)
}

// ToggleCommentLike handles POST /v1/likes/toggle/comment/{id}
func (h *LikeHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.TargetComment)
}

// ToggleTweetLike handles POST /v1/likes/toggle/tweet/{id}
func (h *LikeHandler) ToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.TargetTweet)
}

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, kind model.TargetKind) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	targetID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	state, err := h.svc.ToggleLike(r.Context(), actor, model.LikeTarget{Kind: kind, ID: targetID})
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, ToggleResponse{State: state}, "like toggled successfully")
}

// ListLikedVideos handles GET /v1/likes/videos
func (h *LikeHandler) ListLikedVideos(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	videos, err := h.svc.ListLikedVideos(r.Context(), actor)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, videos, "liked videos fetched successfully")
}
