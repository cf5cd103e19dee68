package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet is a short text post by a user.
type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// NewTweet creates a Tweet by owner.
func NewTweet(owner primitive.ObjectID, content string) (*Tweet, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now()
	return &Tweet{
		ID:        primitive.NewObjectID(),
		Content:   content,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetContent replaces the tweet body.
func (t *Tweet) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	t.Content = content
	t.UpdatedAt = time.Now()
	return nil
}

// OwnedBy reports whether actor is the tweet's owner.
func (t *Tweet) OwnedBy(actor primitive.ObjectID) bool {
	return t.Owner == actor
}
