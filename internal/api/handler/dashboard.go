package handler

import (
	"net/http"

	"github.com/hszk-dev/vidtube/internal/usecase"
)

// DashboardHandler handles channel dashboard HTTP requests.
type DashboardHandler struct {
	svc usecase.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc usecase.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats handles GET /v1/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.GetChannelStats(r.Context(), actor.ID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, stats, "channel stats fetched successfully")
}

// Videos handles GET /v1/dashboard/videos
func (h *DashboardHandler) Videos(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	videos, err := h.svc.ListChannelVideos(r.Context(), actor.ID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, videos, "channel videos fetched successfully")
}
