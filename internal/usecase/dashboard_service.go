package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// DashboardService defines the interface for channel dashboard operations.
type DashboardService interface {
	// GetChannelStats aggregates the actor's channel totals: video count,
	// cumulative views, received likes and subscriber count.
	GetChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)

	// ListChannelVideos returns the actor's videos with their like counts,
	// including unpublished ones.
	ListChannelVideos(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error)
}

type dashboardService struct {
	dashboard repository.DashboardRepository
	videos    repository.VideoRepository
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(dashboard repository.DashboardRepository, videos repository.VideoRepository) DashboardService {
	return &dashboardService{
		dashboard: dashboard,
		videos:    videos,
	}
}

var _ DashboardService = (*dashboardService)(nil)

func (s *dashboardService) GetChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	stats, err := s.dashboard.ChannelStats(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get channel stats: %w", err)
	}
	return stats, nil
}

func (s *dashboardService) ListChannelVideos(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error) {
	videos, err := s.videos.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list channel videos: %w", err)
	}
	return videos, nil
}
