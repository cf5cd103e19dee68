package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// CreatePlaylistInput contains the input parameters for creating a playlist.
type CreatePlaylistInput struct {
	Actor       model.Actor
	Name        string
	Description string
}

// UpdatePlaylistInput contains the input parameters for renaming a playlist.
type UpdatePlaylistInput struct {
	Actor       model.Actor
	PlaylistID  primitive.ObjectID
	Name        string
	Description string
}

// PlaylistService defines the interface for playlist business logic operations.
type PlaylistService interface {
	// CreatePlaylist persists a new empty playlist.
	CreatePlaylist(ctx context.Context, input CreatePlaylistInput) (*model.Playlist, error)

	// GetPlaylist retrieves a playlist by ID.
	GetPlaylist(ctx context.Context, playlistID primitive.ObjectID) (*model.Playlist, error)

	// ListUserPlaylists returns all playlists owned by owner.
	ListUserPlaylists(ctx context.Context, owner primitive.ObjectID) ([]*model.Playlist, error)

	// UpdatePlaylist renames a playlist. Only the owner may update;
	// ErrNotOwner otherwise.
	UpdatePlaylist(ctx context.Context, input UpdatePlaylistInput) (*model.Playlist, error)

	// DeletePlaylist removes a playlist. Deleting a playlist never deletes
	// its videos. Only the owner may delete.
	DeletePlaylist(ctx context.Context, actor model.Actor, playlistID primitive.ObjectID) error

	// AddVideo adds a video to the playlist with set semantics. Only the
	// owner may modify membership.
	AddVideo(ctx context.Context, actor model.Actor, playlistID, videoID primitive.ObjectID) (*model.Playlist, error)

	// RemoveVideo removes a video from the playlist. Only the owner may
	// modify membership.
	RemoveVideo(ctx context.Context, actor model.Actor, playlistID, videoID primitive.ObjectID) (*model.Playlist, error)
}

type playlistService struct {
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
}

// NewPlaylistService creates a new PlaylistService instance.
func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository) PlaylistService {
	return &playlistService{
		playlists: playlists,
		videos:    videos,
	}
}

var _ PlaylistService = (*playlistService)(nil)

func (s *playlistService) CreatePlaylist(ctx context.Context, input CreatePlaylistInput) (*model.Playlist, error) {
	playlist, err := model.NewPlaylist(input.Actor.ID, input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	return playlist, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, playlistID primitive.ObjectID) (*model.Playlist, error) {
	return s.playlists.GetByID(ctx, playlistID)
}

func (s *playlistService) ListUserPlaylists(ctx context.Context, owner primitive.ObjectID) ([]*model.Playlist, error) {
	playlists, err := s.playlists.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return playlists, nil
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, input UpdatePlaylistInput) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, input.PlaylistID)
	if err != nil {
		return nil, err
	}
	if !playlist.OwnedBy(input.Actor.ID) {
		return nil, ErrNotOwner
	}

	if err := playlist.Rename(input.Name, input.Description); err != nil {
		return nil, err
	}

	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}

	return playlist, nil
}

func (s *playlistService) DeletePlaylist(ctx context.Context, actor model.Actor, playlistID primitive.ObjectID) error {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if !playlist.OwnedBy(actor.ID) {
		return ErrNotOwner
	}

	if err := s.playlists.Delete(ctx, playlistID); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}

	return nil
}

// AddVideo verifies the video exists before adding it. Adding a video that
// is already present is a no-op thanks to set semantics at the storage
// layer.
func (s *playlistService) AddVideo(ctx context.Context, actor model.Actor, playlistID, videoID primitive.ObjectID) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !playlist.OwnedBy(actor.ID) {
		return nil, ErrNotOwner
	}

	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	if err := s.playlists.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, fmt.Errorf("add video to playlist: %w", err)
	}

	if !playlist.Contains(videoID) {
		playlist.Videos = append(playlist.Videos, videoID)
	}
	return playlist, nil
}

func (s *playlistService) RemoveVideo(ctx context.Context, actor model.Actor, playlistID, videoID primitive.ObjectID) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !playlist.OwnedBy(actor.ID) {
		return nil, ErrNotOwner
	}
	if !playlist.Contains(videoID) {
		return nil, repository.ErrVideoNotFound
	}

	if err := s.playlists.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, fmt.Errorf("remove video from playlist: %w", err)
	}

	kept := playlist.Videos[:0]
	for _, v := range playlist.Videos {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	playlist.Videos = kept
	return playlist, nil
}
