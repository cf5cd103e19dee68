package model

import (
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewVideo(t *testing.T) {
	owner := primitive.NewObjectID()

	tests := []struct {
		name        string
		owner       primitive.ObjectID
		title       string
		description string
		wantErr     error
	}{
		{"valid video", owner, "My Video", "A description", nil},
		{"zero owner", primitive.NilObjectID, "My Video", "A description", ErrInvalidOwner},
		{"empty title", owner, "", "A description", ErrEmptyTitle},
		{"whitespace title", owner, "   ", "A description", ErrEmptyTitle},
		{"title too long", owner, strings.Repeat("a", 256), "A description", ErrTitleTooLong},
		{"title at limit", owner, strings.Repeat("a", 255), "A description", nil},
		{"empty description", owner, "My Video", "", ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := NewVideo(tt.owner, tt.title, tt.description)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewVideo() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if video.ID.IsZero() {
				t.Error("expected a generated ID")
			}
			if !video.IsPublished {
				t.Error("new videos start published")
			}
			if video.Views != 0 {
				t.Errorf("views = %d, want 0", video.Views)
			}
			if video.CreatedAt.IsZero() || video.UpdatedAt.IsZero() {
				t.Error("expected timestamps to be set")
			}
		})
	}
}

func TestVideo_SetMedia(t *testing.T) {
	video, err := NewVideo(primitive.NewObjectID(), "Title", "Description")
	if err != nil {
		t.Fatalf("NewVideo failed: %v", err)
	}

	before := video.UpdatedAt
	video.SetMedia(
		MediaRef{URL: "http://s/video", Key: "media/v"},
		MediaRef{URL: "http://s/thumb", Key: "media/t"},
		42.5,
	)

	if video.VideoFile.Key != "media/v" || video.Thumbnail.Key != "media/t" {
		t.Error("expected media references to be attached")
	}
	if video.Duration != 42.5 {
		t.Errorf("duration = %f, want 42.5", video.Duration)
	}
	if video.UpdatedAt.Before(before) {
		t.Error("expected updatedAt to advance")
	}
}

func TestVideo_OwnedBy(t *testing.T) {
	owner := primitive.NewObjectID()
	video, err := NewVideo(owner, "Title", "Description")
	if err != nil {
		t.Fatalf("NewVideo failed: %v", err)
	}

	if !video.OwnedBy(owner) {
		t.Error("owner must own their video")
	}
	if video.OwnedBy(primitive.NewObjectID()) {
		t.Error("a stranger must not own the video")
	}
}
