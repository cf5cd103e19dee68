package handler

import (
	"net/http"

	"github.com/hszk-dev/vidtube/internal/usecase"
)

// SubscriptionHandler handles subscription-related HTTP requests.
type SubscriptionHandler struct {
	svc usecase.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(svc usecase.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /v1/subscriptions/channel/{channelId}
func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	channelID, ok := pathID(w, r, "channelId")
	if !ok {
		return
	}

	state, err := h.svc.ToggleSubscription(r.Context(), actor, channelID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, ToggleResponse{State: state}, "subscription toggled successfully")
}

// ListSubscribers handles GET /v1/subscriptions/channel/{channelId}/subscribers
func (h *SubscriptionHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "channelId")
	if !ok {
		return
	}

	list, err := h.svc.ListSubscribers(r.Context(), channelID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, list, "subscribers fetched successfully")
}

// ListSubscribedChannels handles GET /v1/subscriptions/user/{userId}/channels
func (h *SubscriptionHandler) ListSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	list, err := h.svc.ListSubscribedChannels(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, list, "subscribed channels fetched successfully")
}
