package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn         func(ctx context.Context, video *model.Video) error
	getByIDFn        func(ctx context.Context, id primitive.ObjectID) (*model.Video, error)
	updateFn         func(ctx context.Context, video *model.Video) error
	setPublishedFn   func(ctx context.Context, id primitive.ObjectID, published bool) error
	incrementViewsFn func(ctx context.Context, id primitive.ObjectID) error
	deleteFn         func(ctx context.Context, id primitive.ObjectID) error
	searchFn         func(ctx context.Context, params repository.SearchParams) ([]model.VideoSummary, error)
	getDetailFn      func(ctx context.Context, id, viewer primitive.ObjectID) (*model.VideoDetail, error)
	listByOwnerFn    func(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error)
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrVideoNotFound
}

func (m *mockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	if m.setPublishedFn != nil {
		return m.setPublishedFn(ctx, id, published)
	}
	return nil
}

func (m *mockVideoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) Search(ctx context.Context, params repository.SearchParams) ([]model.VideoSummary, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, params)
	}
	return []model.VideoSummary{}, nil
}

func (m *mockVideoRepository) GetDetail(ctx context.Context, id, viewer primitive.ObjectID) (*model.VideoDetail, error) {
	if m.getDetailFn != nil {
		return m.getDetailFn(ctx, id, viewer)
	}
	return nil, repository.ErrVideoNotFound
}

func (m *mockVideoRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, owner)
	}
	return []model.ChannelVideo{}, nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn        func(ctx context.Context, comment *model.Comment) error
	getByIDFn       func(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	updateFn        func(ctx context.Context, comment *model.Comment) error
	deleteFn        func(ctx context.Context, id primitive.ObjectID) error
	deleteByVideoFn func(ctx context.Context, video primitive.ObjectID) error
	listByVideoFn   func(ctx context.Context, video primitive.ObjectID, page repository.Page) ([]model.CommentView, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrCommentNotFound
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) error {
	if m.deleteByVideoFn != nil {
		return m.deleteByVideoFn(ctx, video)
	}
	return nil
}

func (m *mockCommentRepository) ListByVideo(ctx context.Context, video primitive.ObjectID, page repository.Page) ([]model.CommentView, error) {
	if m.listByVideoFn != nil {
		return m.listByVideoFn(ctx, video, page)
	}
	return []model.CommentView{}, nil
}

// mockLikeRepository provides a configurable mock for LikeRepository.
type mockLikeRepository struct {
	createFn            func(ctx context.Context, like *model.Like) error
	findByActorTargetFn func(ctx context.Context, actor primitive.ObjectID, target model.LikeTarget) (*model.Like, error)
	deleteFn            func(ctx context.Context, id primitive.ObjectID) error
	deleteByVideoFn     func(ctx context.Context, video primitive.ObjectID) error
	listLikedVideosFn   func(ctx context.Context, actor primitive.ObjectID) ([]model.VideoSummary, error)
}

func (m *mockLikeRepository) Create(ctx context.Context, like *model.Like) error {
	if m.createFn != nil {
		return m.createFn(ctx, like)
	}
	return nil
}

func (m *mockLikeRepository) FindByActorTarget(ctx context.Context, actor primitive.ObjectID, target model.LikeTarget) (*model.Like, error) {
	if m.findByActorTargetFn != nil {
		return m.findByActorTargetFn(ctx, actor, target)
	}
	return nil, repository.ErrLikeNotFound
}

func (m *mockLikeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockLikeRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) error {
	if m.deleteByVideoFn != nil {
		return m.deleteByVideoFn(ctx, video)
	}
	return nil
}

func (m *mockLikeRepository) ListLikedVideos(ctx context.Context, actor primitive.ObjectID) ([]model.VideoSummary, error) {
	if m.listLikedVideosFn != nil {
		return m.listLikedVideosFn(ctx, actor)
	}
	return []model.VideoSummary{}, nil
}

// mockTweetRepository provides a configurable mock for TweetRepository.
type mockTweetRepository struct {
	createFn      func(ctx context.Context, tweet *model.Tweet) error
	getByIDFn     func(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error)
	listByOwnerFn func(ctx context.Context, owner primitive.ObjectID) ([]*model.Tweet, error)
	updateFn      func(ctx context.Context, tweet *model.Tweet) error
	deleteFn      func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockTweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	if m.createFn != nil {
		return m.createFn(ctx, tweet)
	}
	return nil
}

func (m *mockTweetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrTweetNotFound
}

func (m *mockTweetRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Tweet, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, owner)
	}
	return []*model.Tweet{}, nil
}

func (m *mockTweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tweet)
	}
	return nil
}

func (m *mockTweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockPlaylistRepository provides a configurable mock for PlaylistRepository.
type mockPlaylistRepository struct {
	createFn      func(ctx context.Context, playlist *model.Playlist) error
	getByIDFn     func(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error)
	listByOwnerFn func(ctx context.Context, owner primitive.ObjectID) ([]*model.Playlist, error)
	updateFn      func(ctx context.Context, playlist *model.Playlist) error
	deleteFn      func(ctx context.Context, id primitive.ObjectID) error
	addVideoFn    func(ctx context.Context, id, video primitive.ObjectID) error
	removeVideoFn func(ctx context.Context, id, video primitive.ObjectID) error
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	if m.createFn != nil {
		return m.createFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Playlist, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, owner)
	}
	return []*model.Playlist{}, nil
}

func (m *mockPlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPlaylistRepository) AddVideo(ctx context.Context, id, video primitive.ObjectID) error {
	if m.addVideoFn != nil {
		return m.addVideoFn(ctx, id, video)
	}
	return nil
}

func (m *mockPlaylistRepository) RemoveVideo(ctx context.Context, id, video primitive.ObjectID) error {
	if m.removeVideoFn != nil {
		return m.removeVideoFn(ctx, id, video)
	}
	return nil
}

// mockSubscriptionRepository provides a configurable mock for SubscriptionRepository.
type mockSubscriptionRepository struct {
	createFn                  func(ctx context.Context, sub *model.Subscription) error
	findBySubscriberChannelFn func(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error)
	deleteFn                  func(ctx context.Context, id primitive.ObjectID) error
	listSubscribersFn         func(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error)
	listSubscribedChannelsFn  func(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error)
	countByChannelFn          func(ctx context.Context, channel primitive.ObjectID) (int64, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	if m.createFn != nil {
		return m.createFn(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) FindBySubscriberChannel(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error) {
	if m.findBySubscriberChannelFn != nil {
		return m.findBySubscriberChannelFn(ctx, subscriber, channel)
	}
	return nil, repository.ErrSubscriptionNotFound
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSubscriptionRepository) ListSubscribers(ctx context.Context, channel primitive.ObjectID) (*model.ProfileList, error) {
	if m.listSubscribersFn != nil {
		return m.listSubscribersFn(ctx, channel)
	}
	return &model.ProfileList{Profiles: []model.Profile{}}, nil
}

func (m *mockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) (*model.ProfileList, error) {
	if m.listSubscribedChannelsFn != nil {
		return m.listSubscribedChannelsFn(ctx, subscriber)
	}
	return &model.ProfileList{Profiles: []model.Profile{}}, nil
}

func (m *mockSubscriptionRepository) CountByChannel(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	if m.countByChannelFn != nil {
		return m.countByChannelFn(ctx, channel)
	}
	return 0, nil
}

// mockUserRepository provides a configurable mock for UserRepository.
type mockUserRepository struct {
	getByIDFn                   func(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	addToWatchHistoryFn         func(ctx context.Context, user, video primitive.ObjectID) error
	pullFromAllWatchHistoriesFn func(ctx context.Context, video primitive.ObjectID) error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "user"}, nil
}

func (m *mockUserRepository) AddToWatchHistory(ctx context.Context, user, video primitive.ObjectID) error {
	if m.addToWatchHistoryFn != nil {
		return m.addToWatchHistoryFn(ctx, user, video)
	}
	return nil
}

func (m *mockUserRepository) PullFromAllWatchHistories(ctx context.Context, video primitive.ObjectID) error {
	if m.pullFromAllWatchHistoriesFn != nil {
		return m.pullFromAllWatchHistoriesFn(ctx, video)
	}
	return nil
}

// mockDashboardRepository provides a configurable mock for DashboardRepository.
type mockDashboardRepository struct {
	channelStatsFn func(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)
}

func (m *mockDashboardRepository) ChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	if m.channelStatsFn != nil {
		return m.channelStatsFn(ctx, owner)
	}
	return &model.ChannelStats{}, nil
}

// mockMediaStorage provides a configurable mock for MediaStorage.
type mockMediaStorage struct {
	storeFn  func(ctx context.Context, localPath, contentType string) (*repository.StoredMedia, error)
	removeFn func(ctx context.Context, key string) error
}

func (m *mockMediaStorage) Store(ctx context.Context, localPath, contentType string) (*repository.StoredMedia, error) {
	if m.storeFn != nil {
		return m.storeFn(ctx, localPath, contentType)
	}
	return &repository.StoredMedia{
		URL: "http://storage.local/media/" + localPath,
		Key: "media/" + localPath,
	}, nil
}

func (m *mockMediaStorage) Remove(ctx context.Context, key string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, key)
	}
	return nil
}

// mockMessageQueue provides a configurable mock for MessageQueue.
type mockMessageQueue struct {
	publishFn func(ctx context.Context, task repository.MediaCleanupTask) error
}

func (m *mockMessageQueue) PublishMediaCleanupTask(ctx context.Context, task repository.MediaCleanupTask) error {
	if m.publishFn != nil {
		return m.publishFn(ctx, task)
	}
	return nil
}

func (m *mockMessageQueue) ConsumeMediaCleanupTasks(ctx context.Context, handler func(task repository.MediaCleanupTask) error) error {
	return nil
}

func (m *mockMessageQueue) Close() error {
	return nil
}

// mockStatsCache provides a configurable mock for cache.StatsCache.
type mockStatsCache struct {
	getFn    func(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)
	setFn    func(ctx context.Context, owner primitive.ObjectID, stats *model.ChannelStats, ttl time.Duration) error
	deleteFn func(ctx context.Context, owner primitive.ObjectID) error
}

func (m *mockStatsCache) Get(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	if m.getFn != nil {
		return m.getFn(ctx, owner)
	}
	return nil, nil
}

func (m *mockStatsCache) Set(ctx context.Context, owner primitive.ObjectID, stats *model.ChannelStats, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, owner, stats, ttl)
	}
	return nil
}

func (m *mockStatsCache) Delete(ctx context.Context, owner primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, owner)
	}
	return nil
}
