package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// PlaylistRepository implements repository.PlaylistRepository using MongoDB.
type PlaylistRepository struct {
	col collection
}

// NewPlaylistRepository creates a new PlaylistRepository backed by client.
func NewPlaylistRepository(client *Client) *PlaylistRepository {
	return &PlaylistRepository{col: client.Collection(CollPlaylists)}
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)

// Create persists a new playlist.
func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	if _, err := r.col.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

// GetByID retrieves a playlist by its identifier.
func (r *PlaylistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to get playlist by ID: %w", err)
	}
	return &playlist, nil
}

// ListByOwner returns all playlists owned by owner.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Playlist, error) {
	cursor, err := r.col.Find(ctx, bson.D{{Key: "owner", Value: owner}})
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer cursor.Close(ctx)

	var playlists []*model.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, nil
}

// Update persists name and description changes.
func (r *PlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	playlist.UpdatedAt = time.Now()

	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: playlist.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: playlist.Name},
			{Key: "description", Value: playlist.Description},
			{Key: "updatedAt", Value: playlist.UpdatedAt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrPlaylistNotFound
	}
	return nil
}

// Delete removes a playlist.
func (r *PlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrPlaylistNotFound
	}
	return nil
}

// AddVideo adds video to the playlist. $addToSet keeps the video list a
// set; re-adding is a no-op.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, video primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: video}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrPlaylistNotFound
	}
	return nil
}

// RemoveVideo pulls video out of the playlist.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, video primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "videos", Value: video}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrPlaylistNotFound
	}
	return nil
}
