package model

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewPlaylist(t *testing.T) {
	owner := primitive.NewObjectID()

	tests := []struct {
		name    string
		owner   primitive.ObjectID
		plName  string
		wantErr error
	}{
		{"valid playlist", owner, "Favorites", nil},
		{"zero owner", primitive.NilObjectID, "Favorites", ErrInvalidOwner},
		{"empty name", owner, "", ErrEmptyName},
		{"whitespace name", owner, "  ", ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playlist, err := NewPlaylist(tt.owner, tt.plName, "desc")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPlaylist() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if len(playlist.Videos) != 0 {
				t.Error("new playlists start empty")
			}
		})
	}
}

func TestPlaylist_Rename(t *testing.T) {
	playlist, err := NewPlaylist(primitive.NewObjectID(), "Old", "old desc")
	if err != nil {
		t.Fatalf("NewPlaylist failed: %v", err)
	}

	if err := playlist.Rename("New", ""); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if playlist.Name != "New" {
		t.Errorf("name = %s, want New", playlist.Name)
	}
	if playlist.Description != "old desc" {
		t.Errorf("empty description must keep the current value, got %s", playlist.Description)
	}

	if err := playlist.Rename("", "whatever"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestPlaylist_Contains(t *testing.T) {
	playlist, err := NewPlaylist(primitive.NewObjectID(), "Favorites", "")
	if err != nil {
		t.Fatalf("NewPlaylist failed: %v", err)
	}

	video := primitive.NewObjectID()
	if playlist.Contains(video) {
		t.Error("empty playlist must not contain anything")
	}

	playlist.Videos = append(playlist.Videos, video)
	if !playlist.Contains(video) {
		t.Error("expected playlist to contain the video")
	}
}
