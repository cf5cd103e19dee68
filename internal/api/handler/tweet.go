package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hszk-dev/vidtube/internal/usecase"
)

// TweetRequest is the JSON body for tweet create/update.
type TweetRequest struct {
	Content string `json:"content"`
}

// TweetHandler handles tweet-related HTTP requests.
type TweetHandler struct {
	svc usecase.TweetService
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(svc usecase.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

// Create handles POST /v1/tweets
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	tweet, err := h.svc.CreateTweet(r.Context(), actor, req.Content)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, tweet, "tweet created successfully")
}

// ListByUser handles GET /v1/tweets/user/{userId}
func (h *TweetHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	tweets, err := h.svc.ListUserTweets(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, tweets, "tweets fetched successfully")
}

// Update handles PATCH /v1/tweets/{id}
func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	tweetID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	tweet, err := h.svc.UpdateTweet(r.Context(), actor, tweetID, req.Content)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, tweet, "tweet updated successfully")
}

// Delete handles DELETE /v1/tweets/{id}
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	tweetID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTweet(r.Context(), actor, tweetID); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "tweet deleted successfully")
}
