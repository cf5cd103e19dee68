package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to exactly one video and one owner.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Video     primitive.ObjectID `bson:"video"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

var ErrEmptyContent = errors.New("content cannot be empty")

// NewComment creates a Comment on video by owner.
func NewComment(owner, video primitive.ObjectID, content string) (*Comment, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	if video.IsZero() {
		return nil, ErrInvalidTarget
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now()
	return &Comment{
		ID:        primitive.NewObjectID(),
		Content:   content,
		Video:     video,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetContent replaces the comment body.
func (c *Comment) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	c.Content = content
	c.UpdatedAt = time.Now()
	return nil
}

// OwnedBy reports whether actor is the comment's owner.
func (c *Comment) OwnedBy(actor primitive.ObjectID) bool {
	return c.Owner == actor
}
