package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidtube/internal/usecase"
)

// maxUploadSize bounds the in-memory part of multipart parsing; larger
// parts spill to disk.
const maxUploadSize = 32 << 20

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	svc usecase.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc usecase.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Publish handles POST /v1/videos
// Expects a multipart form with title, description, duration fields and
// videoFile, thumbnail file parts.
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		BadRequest(w, "invalid multipart form")
		return
	}

	duration := 0.0
	if v := r.FormValue("duration"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			BadRequest(w, "invalid duration")
			return
		}
		duration = parsed
	}

	input := usecase.PublishVideoInput{
		Actor:       actor,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Duration:    duration,
	}

	videoPath, videoType, err := stageUpload(r, "videoFile")
	if err != nil {
		BadRequest(w, "videoFile upload is required")
		return
	}
	input.VideoFilePath = videoPath
	input.VideoFileContentType = videoType

	thumbPath, thumbType, err := stageUpload(r, "thumbnail")
	if err != nil {
		_ = os.Remove(videoPath)
		BadRequest(w, "thumbnail upload is required")
		return
	}
	input.ThumbnailPath = thumbPath
	input.ThumbnailContentType = thumbType

	video, err := h.svc.PublishVideo(r.Context(), input)
	if err != nil {
		discardStaged(input.VideoFilePath, input.ThumbnailPath)
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, video, "video published successfully")
}

// Search handles GET /v1/videos?query=...&sortBy=...&sortType=...&page=...&limit=...
func (h *VideoHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	results, err := h.svc.SearchVideos(r.Context(), usecase.SearchVideosInput{
		Query:     q.Get("query"),
		SortBy:    q.Get("sortBy"),
		Ascending: q.Get("sortType") == "asc",
		Page:      pageFrom(r, 10),
	})
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, results, "videos fetched successfully")
}

// Get handles GET /v1/videos/{id}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetVideoDetail(r.Context(), videoID, actor)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, detail, "video fetched successfully")
}

// Update handles PATCH /v1/videos/{id}
// Expects a multipart form with optional title, description fields and an
// optional thumbnail replacement.
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	input := usecase.UpdateVideoInput{
		Actor:   actor,
		VideoID: videoID,
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		BadRequest(w, "invalid multipart form")
		return
	}
	input.Title = r.FormValue("title")
	input.Description = r.FormValue("description")

	if thumbPath, thumbType, err := stageUpload(r, "thumbnail"); err == nil {
		input.ThumbnailPath = thumbPath
		input.ThumbnailContentType = thumbType
	}

	video, err := h.svc.UpdateVideo(r.Context(), input)
	if err != nil {
		discardStaged(input.ThumbnailPath)
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, video, "video updated successfully")
}

// TogglePublish handles PATCH /v1/videos/{id}/toggle-publish
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	video, err := h.svc.TogglePublish(r.Context(), videoID, actor)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, video, "publish status toggled successfully")
}

// Delete handles DELETE /v1/videos/{id}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteVideo(r.Context(), videoID, actor); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "video deleted successfully")
}

// stageUpload copies the named multipart file to a uniquely-named local
// staging file and returns its path and declared content type. The staged
// file is consumed (and removed) by the storage layer.
func stageUpload(r *http.Request, field string) (string, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	dir := filepath.Join(os.TempDir(), "vidtube-uploads", uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", "", fmt.Errorf("create staging dir: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create staging file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(path)
		return "", "", fmt.Errorf("write staging file: %w", err)
	}

	return path, contentTypeOf(header), nil
}

// discardStaged removes staged upload files that the service never consumed.
// Paths already consumed (and removed) by the storage layer are skipped.
func discardStaged(paths ...string) {
	for _, p := range paths {
		if p != "" {
			_ = os.Remove(p)
		}
	}
}

func contentTypeOf(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
