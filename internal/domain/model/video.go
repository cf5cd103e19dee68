package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaRef points at an object held by external object storage.
// Key is the storage object identifier, URL the public location.
type MediaRef struct {
	URL string `bson:"url" json:"url"`
	Key string `bson:"key" json:"key"`
}

// Video represents an uploaded video. Owner is immutable after creation
// and Views only ever increments.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	VideoFile   MediaRef           `bson:"videoFile"`
	Thumbnail   MediaRef           `bson:"thumbnail"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"isPublished"`
	Owner       primitive.ObjectID `bson:"owner"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidOwner     = errors.New("owner ID cannot be zero")
	ErrTitleTooLong     = errors.New("title exceeds maximum length of 255 characters")
)

const maxTitleLength = 255

// NewVideo creates a published Video owned by owner. Media references are
// attached by the caller once the upload succeeds.
func NewVideo(owner primitive.ObjectID, title, description string) (*Video, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	return &Video{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		IsPublished: true,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetMedia attaches the stored video file and thumbnail references.
func (v *Video) SetMedia(videoFile, thumbnail MediaRef, duration float64) {
	v.VideoFile = videoFile
	v.Thumbnail = thumbnail
	v.Duration = duration
	v.UpdatedAt = time.Now()
}

// OwnedBy reports whether actor is the video's owner.
// Comparison is by identifier equality.
func (v *Video) OwnedBy(actor primitive.ObjectID) bool {
	return v.Owner == actor
}
