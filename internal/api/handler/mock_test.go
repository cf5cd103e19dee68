package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/api/middleware"
	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
	"github.com/hszk-dev/vidtube/internal/usecase"
)

// serveAuthed routes a request through chi and the auth middleware, the
// way the real router wires protected endpoints.
func serveAuthed(t *testing.T, method, pattern string, h http.HandlerFunc, req *http.Request, actor model.Actor) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Use(middleware.Auth)
	router.MethodFunc(method, pattern, h)

	if !actor.ID.IsZero() {
		req.Header.Set("X-User-Id", actor.ID.Hex())
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// servePublic routes a request through chi without authentication.
func servePublic(t *testing.T, method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// mockVideoService provides a configurable mock for usecase.VideoService.
type mockVideoService struct {
	publishFn       func(ctx context.Context, input usecase.PublishVideoInput) (*model.Video, error)
	searchFn        func(ctx context.Context, input usecase.SearchVideosInput) ([]model.VideoSummary, error)
	getDetailFn     func(ctx context.Context, videoID primitive.ObjectID, viewer model.Actor) (*model.VideoDetail, error)
	updateFn        func(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error)
	togglePublishFn func(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) (*model.Video, error)
	deleteFn        func(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) error
}

func (m *mockVideoService) PublishVideo(ctx context.Context, input usecase.PublishVideoInput) (*model.Video, error) {
	if m.publishFn != nil {
		return m.publishFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) SearchVideos(ctx context.Context, input usecase.SearchVideosInput) ([]model.VideoSummary, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, input)
	}
	return []model.VideoSummary{}, nil
}

func (m *mockVideoService) GetVideoDetail(ctx context.Context, videoID primitive.ObjectID, viewer model.Actor) (*model.VideoDetail, error) {
	if m.getDetailFn != nil {
		return m.getDetailFn(ctx, videoID, viewer)
	}
	return nil, repository.ErrVideoNotFound
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) TogglePublish(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) (*model.Video, error) {
	if m.togglePublishFn != nil {
		return m.togglePublishFn(ctx, videoID, actor)
	}
	return nil, nil
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, videoID primitive.ObjectID, actor model.Actor) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID, actor)
	}
	return nil
}

// mockCommentService provides a configurable mock for usecase.CommentService.
type mockCommentService struct {
	addFn    func(ctx context.Context, input usecase.AddCommentInput) (*model.Comment, error)
	listFn   func(ctx context.Context, videoID primitive.ObjectID, page repository.Page) ([]model.CommentView, error)
	updateFn func(ctx context.Context, input usecase.UpdateCommentInput) (*model.Comment, error)
	deleteFn func(ctx context.Context, commentID primitive.ObjectID, actor model.Actor) error
}

func (m *mockCommentService) AddComment(ctx context.Context, input usecase.AddCommentInput) (*model.Comment, error) {
	if m.addFn != nil {
		return m.addFn(ctx, input)
	}
	return nil, nil
}

func (m *mockCommentService) ListComments(ctx context.Context, videoID primitive.ObjectID, page repository.Page) ([]model.CommentView, error) {
	if m.listFn != nil {
		return m.listFn(ctx, videoID, page)
	}
	return []model.CommentView{}, nil
}

func (m *mockCommentService) UpdateComment(ctx context.Context, input usecase.UpdateCommentInput) (*model.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, input)
	}
	return nil, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID primitive.ObjectID, actor model.Actor) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID, actor)
	}
	return nil
}

// mockLikeService provides a configurable mock for usecase.LikeService.
type mockLikeService struct {
	toggleFn func(ctx context.Context, actor model.Actor, target model.LikeTarget) (usecase.ToggleState, error)
	listFn   func(ctx context.Context, actor model.Actor) ([]model.VideoSummary, error)
}

func (m *mockLikeService) ToggleLike(ctx context.Context, actor model.Actor, target model.LikeTarget) (usecase.ToggleState, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, actor, target)
	}
	return usecase.ToggleAdded, nil
}

func (m *mockLikeService) ListLikedVideos(ctx context.Context, actor model.Actor) ([]model.VideoSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor)
	}
	return []model.VideoSummary{}, nil
}

// mockSubscriptionService provides a configurable mock for usecase.SubscriptionService.
type mockSubscriptionService struct {
	toggleFn          func(ctx context.Context, actor model.Actor, channel primitive.ObjectID) (usecase.ToggleState, error)
	listSubscribersFn func(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error)
	listChannelsFn    func(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error)
}

func (m *mockSubscriptionService) ToggleSubscription(ctx context.Context, actor model.Actor, channel primitive.ObjectID) (usecase.ToggleState, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, actor, channel)
	}
	return usecase.ToggleAdded, nil
}

func (m *mockSubscriptionService) ListSubscribers(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error) {
	if m.listSubscribersFn != nil {
		return m.listSubscribersFn(ctx, channel)
	}
	return &model.ProfileList{Profiles: []model.Profile{}}, nil
}

func (m *mockSubscriptionService) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error) {
	if m.listChannelsFn != nil {
		return m.listChannelsFn(ctx, subscriber)
	}
	return &model.ProfileList{Profiles: []model.Profile{}}, nil
}

// mockDashboardService provides a configurable mock for usecase.DashboardService.
type mockDashboardService struct {
	statsFn  func(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)
	videosFn func(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error)
}

func (m *mockDashboardService) GetChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, owner)
	}
	return &model.ChannelStats{}, nil
}

func (m *mockDashboardService) ListChannelVideos(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error) {
	if m.videosFn != nil {
		return m.videosFn(ctx, owner)
	}
	return []model.ChannelVideo{}, nil
}
