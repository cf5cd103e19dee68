package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist is an owner-curated set of video references. Videos holds no
// duplicates; membership updates use set semantics at the storage layer.
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Owner       primitive.ObjectID   `bson:"owner"`
	Videos      []primitive.ObjectID `bson:"videos,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

var ErrEmptyName = errors.New("name cannot be empty")

// NewPlaylist creates an empty Playlist owned by owner.
func NewPlaylist(owner primitive.ObjectID, name, description string) (*Playlist, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Playlist{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename updates name and, when non-empty, description.
func (p *Playlist) Rename(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.Name = name
	if description != "" {
		p.Description = description
	}
	p.UpdatedAt = time.Now()
	return nil
}

// Contains reports whether video is already in the playlist.
func (p *Playlist) Contains(video primitive.ObjectID) bool {
	for _, v := range p.Videos {
		if v == video {
			return true
		}
	}
	return false
}

// OwnedBy reports whether actor is the playlist's owner.
func (p *Playlist) OwnedBy(actor primitive.ObjectID) bool {
	return p.Owner == actor
}
