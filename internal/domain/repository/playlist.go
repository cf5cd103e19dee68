package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

// PlaylistRepository defines persistence operations for playlists.
type PlaylistRepository interface {
	// Create persists a new playlist.
	Create(ctx context.Context, playlist *model.Playlist) error

	// GetByID retrieves a playlist by its identifier.
	// Returns ErrPlaylistNotFound if the playlist does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error)

	// ListByOwner returns all playlists owned by owner.
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Playlist, error)

	// Update persists name, description and updatedAt changes.
	// Returns ErrPlaylistNotFound if the playlist does not exist.
	Update(ctx context.Context, playlist *model.Playlist) error

	// Delete removes a playlist.
	// Returns ErrPlaylistNotFound if the playlist does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddVideo adds video to the playlist with set semantics; adding an
	// already-present video is a no-op.
	AddVideo(ctx context.Context, id, video primitive.ObjectID) error

	// RemoveVideo pulls video out of the playlist.
	RemoveVideo(ctx context.Context, id, video primitive.ObjectID) error
}
