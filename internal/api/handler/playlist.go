package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hszk-dev/vidtube/internal/usecase"
)

// PlaylistRequest is the JSON body for playlist create/update.
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaylistHandler handles playlist-related HTTP requests.
type PlaylistHandler struct {
	svc usecase.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(svc usecase.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /v1/playlists
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req PlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	playlist, err := h.svc.CreatePlaylist(r.Context(), usecase.CreatePlaylistInput{
		Actor:       actor,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, playlist, "playlist created successfully")
}

// Get handles GET /v1/playlists/{id}
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	playlist, err := h.svc.GetPlaylist(r.Context(), playlistID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, playlist, "playlist fetched successfully")
}

// ListByUser handles GET /v1/playlists/user/{userId}
func (h *PlaylistHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	playlists, err := h.svc.ListUserPlaylists(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, playlists, "playlists fetched successfully")
}

// Update handles PATCH /v1/playlists/{id}
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req PlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	playlist, err := h.svc.UpdatePlaylist(r.Context(), usecase.UpdatePlaylistInput{
		Actor:       actor,
		PlaylistID:  playlistID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, playlist, "playlist updated successfully")
}

// Delete handles DELETE /v1/playlists/{id}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeletePlaylist(r.Context(), actor, playlistID); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "playlist deleted successfully")
}

// AddVideo handles PATCH /v1/playlists/{id}/videos/{videoId}
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}

	playlist, err := h.svc.AddVideo(r.Context(), actor, playlistID, videoID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, playlist, "video added to playlist successfully")
}

// RemoveVideo handles DELETE /v1/playlists/{id}/videos/{videoId}
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}

	playlist, err := h.svc.RemoveVideo(r.Context(), actor, playlistID, videoID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, playlist, "video removed from playlist successfully")
}
