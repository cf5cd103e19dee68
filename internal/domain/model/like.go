package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetKind names the entity type a like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	default:
		return false
	}
}

func (k TargetKind) String() string {
	return string(k)
}

// LikeTarget identifies the single entity a like reacts to.
type LikeTarget struct {
	Kind TargetKind
	ID   primitive.ObjectID
}

// Like links an actor to exactly one of video, comment or tweet.
// The (likedBy, target) pair is unique; the storage layer enforces this
// with partial unique indexes so a racing double-toggle degrades to a
// rejected duplicate.
type Like struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	LikedBy   primitive.ObjectID  `bson:"likedBy"`
	Video     *primitive.ObjectID `bson:"video,omitempty"`
	Comment   *primitive.ObjectID `bson:"comment,omitempty"`
	Tweet     *primitive.ObjectID `bson:"tweet,omitempty"`
	CreatedAt time.Time           `bson:"createdAt"`
}

var (
	ErrInvalidTarget     = errors.New("target ID cannot be zero")
	ErrInvalidTargetKind = errors.New("unknown like target kind")
	ErrInvalidActor      = errors.New("actor ID cannot be zero")
)

// NewLike creates a Like by actor on target. Exactly one target reference
// is set, matching target.Kind.
func NewLike(actor primitive.ObjectID, target LikeTarget) (*Like, error) {
	if actor.IsZero() {
		return nil, ErrInvalidActor
	}
	if target.ID.IsZero() {
		return nil, ErrInvalidTarget
	}
	if !target.Kind.IsValid() {
		return nil, ErrInvalidTargetKind
	}

	like := &Like{
		ID:        primitive.NewObjectID(),
		LikedBy:   actor,
		CreatedAt: time.Now(),
	}
	id := target.ID
	switch target.Kind {
	case TargetVideo:
		like.Video = &id
	case TargetComment:
		like.Comment = &id
	case TargetTweet:
		like.Tweet = &id
	}
	return like, nil
}

// Target returns the single entity this like points at.
func (l *Like) Target() LikeTarget {
	switch {
	case l.Video != nil:
		return LikeTarget{Kind: TargetVideo, ID: *l.Video}
	case l.Comment != nil:
		return LikeTarget{Kind: TargetComment, ID: *l.Comment}
	case l.Tweet != nil:
		return LikeTarget{Kind: TargetTweet, ID: *l.Tweet}
	default:
		return LikeTarget{}
	}
}
