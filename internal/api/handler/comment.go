package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hszk-dev/vidtube/internal/usecase"
)

// CommentRequest is the JSON body for comment create/update.
type CommentRequest struct {
	Content string `json:"content"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	svc usecase.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc usecase.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add handles POST /v1/videos/{id}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	comment, err := h.svc.AddComment(r.Context(), usecase.AddCommentInput{
		Actor:   actor,
		VideoID: videoID,
		Content: req.Content,
	})
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, comment, "comment added successfully")
}

// List handles GET /v1/videos/{id}/comments?page=...&limit=...
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	views, err := h.svc.ListComments(r.Context(), videoID, pageFrom(r, 10))
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, views, "comments fetched successfully")
}

// Update handles PATCH /v1/comments/{commentId}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "commentId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	comment, err := h.svc.UpdateComment(r.Context(), usecase.UpdateCommentInput{
		Actor:     actor,
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, comment, "comment updated successfully")
}

// Delete handles DELETE /v1/comments/{commentId}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "commentId")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), commentID, actor); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "comment deleted successfully")
}
