package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// PublishVideoInput contains the input parameters for publishing a video.
// The file paths point at staged local copies of the multipart uploads.
type PublishVideoInput struct {
	Actor       model.Actor
	Title       string
	Description string
	Duration    float64

	VideoFilePath        string
	VideoFileContentType string
	ThumbnailPath        string
	ThumbnailContentType string
}

// UpdateVideoInput contains the input parameters for updating a video.
// Empty Title/Description fields keep the current values; an empty
// ThumbnailPath keeps the current thumbnail.
type UpdateVideoInput struct {
	Actor       model.Actor
	VideoID     primitive.ObjectID
	Title       string
	Description string

	ThumbnailPath        string
	ThumbnailContentType string
}

// SearchVideosInput contains the input parameters for searching videos.
type SearchVideosInput struct {
	Query     string
	SortBy    string
	Ascending bool
	Page      repository.Page
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// PublishVideo uploads the staged media files and persists the video.
	PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error)

	// SearchVideos runs the search read-model over title and description.
	SearchVideos(ctx context.Context, input SearchVideosInput) ([]model.VideoSummary, error)

	// GetVideoDetail returns the detail view-model for viewer, counting
	// the view and recording it in the viewer's watch history.
	GetVideoDetail(ctx context.Context, videoID primitive.ObjectID, viewer model.Actor) (*model.VideoDetail, error)

	// UpdateVideo updates title, description and optionally the thumbnail.
	// Only the owner may update; ErrNotOwner otherwise.
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error)

	// TogglePublish flips the publish flag. Only the owner may toggle.
	TogglePublish(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) (*model.Video, error)

	// DeleteVideo removes the video and cascades over its comments, likes
	// and watch-history references, then schedules media object cleanup.
	// Only the owner may delete.
	DeleteVideo(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) error
}

type videoService struct {
	videos   repository.VideoRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
	users    repository.UserRepository
	storage  repository.MediaStorage
	queue    repository.MessageQueue
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	videos repository.VideoRepository,
	comments repository.CommentRepository,
	likes repository.LikeRepository,
	users repository.UserRepository,
	storage repository.MediaStorage,
	queue repository.MessageQueue,
) VideoService {
	return &videoService{
		videos:   videos,
		comments: comments,
		likes:    likes,
		users:    users,
		storage:  storage,
		queue:    queue,
	}
}

var _ VideoService = (*videoService)(nil)

// PublishVideo validates the metadata, uploads both staged files and
// persists the video document. The video file is uploaded first; if the
// thumbnail upload fails afterwards, the orphaned video object is removed
// before returning.
func (s *videoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	if input.VideoFilePath == "" || input.ThumbnailPath == "" {
		return nil, ErrMissingMedia
	}

	video, err := model.NewVideo(input.Actor.ID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	videoFile, err := s.storage.Store(ctx, input.VideoFilePath, input.VideoFileContentType)
	if err != nil {
		return nil, fmt.Errorf("store video file: %w", err)
	}

	thumbnail, err := s.storage.Store(ctx, input.ThumbnailPath, input.ThumbnailContentType)
	if err != nil {
		if removeErr := s.storage.Remove(ctx, videoFile.Key); removeErr != nil {
			slog.Error("failed to remove orphaned video object",
				"key", videoFile.Key,
				"error", removeErr,
			)
		}
		return nil, fmt.Errorf("store thumbnail: %w", err)
	}

	video.SetMedia(
		model.MediaRef{URL: videoFile.URL, Key: videoFile.Key},
		model.MediaRef{URL: thumbnail.URL, Key: thumbnail.Key},
		input.Duration,
	)

	if err := s.videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}

	return video, nil
}

// SearchVideos runs the search pipeline. An empty result list is a valid
// outcome; only a missing query is rejected.
func (s *videoService) SearchVideos(ctx context.Context, input SearchVideosInput) ([]model.VideoSummary, error) {
	if input.Query == "" {
		return nil, ErrEmptySearchQuery
	}
	if err := input.Page.Validate(); err != nil {
		return nil, err
	}

	results, err := s.videos.Search(ctx, repository.SearchParams{
		Query:     input.Query,
		SortBy:    input.SortBy,
		Ascending: input.Ascending,
		Page:      input.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}

	return results, nil
}

// GetVideoDetail runs the detail pipeline, then counts the view and
// records the video in the viewer's watch history. The side effects are
// best-effort: a failure is logged but never fails the read.
func (s *videoService) GetVideoDetail(ctx context.Context, videoID primitive.ObjectID, viewer model.Actor) (*model.VideoDetail, error) {
	detail, detailErr := s.videos.GetDetail(ctx, videoID, viewer.ID)

	// The view and watch-history writes are attempted whether or not the
	// aggregation produced a detail; on a missing video they are no-ops in
	// the store.
	if err := s.videos.IncrementViews(ctx, videoID); err != nil {
		slog.Error("failed to increment view count",
			"video_id", videoID.Hex(),
			"error", err,
		)
	}
	if err := s.users.AddToWatchHistory(ctx, viewer.ID, videoID); err != nil {
		slog.Error("failed to record watch history",
			"user_id", viewer.ID.Hex(),
			"video_id", videoID.Hex(),
			"error", err,
		)
	}

	if detailErr != nil {
		if errors.Is(detailErr, repository.ErrVideoNotFound) {
			return nil, detailErr
		}
		return nil, fmt.Errorf("get video detail: %w", detailErr)
	}
	return detail, nil
}

// UpdateVideo updates the mutable video fields. A new thumbnail replaces
// the old object; removal of the superseded object is best-effort.
func (s *videoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	video, err := s.videos.GetByID(ctx, input.VideoID)
	if err != nil {
		return nil, err
	}
	if !video.OwnedBy(input.Actor.ID) {
		return nil, ErrNotOwner
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}

	oldThumbnailKey := ""
	if input.ThumbnailPath != "" {
		thumbnail, err := s.storage.Store(ctx, input.ThumbnailPath, input.ThumbnailContentType)
		if err != nil {
			return nil, fmt.Errorf("store thumbnail: %w", err)
		}
		oldThumbnailKey = video.Thumbnail.Key
		video.Thumbnail = model.MediaRef{URL: thumbnail.URL, Key: thumbnail.Key}
	}

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}

	if oldThumbnailKey != "" {
		if err := s.storage.Remove(ctx, oldThumbnailKey); err != nil {
			slog.Error("failed to remove superseded thumbnail",
				"key", oldThumbnailKey,
				"error", err,
			)
		}
	}

	return video, nil
}

// TogglePublish flips the publish flag for the owner.
func (s *videoService) TogglePublish(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) (*model.Video, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.OwnedBy(actor.ID) {
		return nil, ErrNotOwner
	}

	video.IsPublished = !video.IsPublished
	if err := s.videos.SetPublished(ctx, videoID, video.IsPublished); err != nil {
		return nil, fmt.Errorf("set published: %w", err)
	}

	return video, nil
}

// DeleteVideo removes the video document, then its dependent records:
// comments, likes and watch-history references. The in-store cascade is
// mandatory; the first failing step aborts with an error. Media object
// removal is decoupled and best-effort: it is handed to the cleanup queue,
// falling back to direct removal if publishing fails.
func (s *videoService) DeleteVideo(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) error {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if !video.OwnedBy(actor.ID) {
		return ErrNotOwner
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if err := s.comments.DeleteByVideo(ctx, videoID); err != nil {
		return fmt.Errorf("delete video comments: %w", err)
	}
	if err := s.likes.DeleteByVideo(ctx, videoID); err != nil {
		return fmt.Errorf("delete video likes: %w", err)
	}
	if err := s.users.PullFromAllWatchHistories(ctx, videoID); err != nil {
		return fmt.Errorf("prune watch histories: %w", err)
	}

	s.scheduleMediaCleanup(ctx, video)
	return nil
}

// scheduleMediaCleanup enqueues removal of the video's storage objects.
// If the queue is unavailable the objects are removed inline; remaining
// failures leave orphans for manual cleanup and are logged.
func (s *videoService) scheduleMediaCleanup(ctx context.Context, video *model.Video) {
	keys := make([]string, 0, 2)
	if video.VideoFile.Key != "" {
		keys = append(keys, video.VideoFile.Key)
	}
	if video.Thumbnail.Key != "" {
		keys = append(keys, video.Thumbnail.Key)
	}
	if len(keys) == 0 {
		return
	}

	task := repository.MediaCleanupTask{
		VideoID:    video.ID.Hex(),
		ObjectKeys: keys,
	}
	if err := s.queue.PublishMediaCleanupTask(ctx, task); err != nil {
		slog.Error("failed to enqueue media cleanup, removing inline",
			"video_id", task.VideoID,
			"error", err,
		)
		for _, key := range keys {
			if removeErr := s.storage.Remove(ctx, key); removeErr != nil {
				slog.Error("failed to remove media object",
					"key", key,
					"error", removeErr,
				)
			}
		}
	}
}
