package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Credentials are managed by the
// upstream auth service and never leave this package via Profile.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Email        string               `bson:"email"`
	FullName     string               `bson:"fullName"`
	Avatar       string               `bson:"avatar,omitempty"`
	CoverImage   string               `bson:"coverImage,omitempty"`
	WatchHistory []primitive.ObjectID `bson:"watchHistory,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

// Profile is the reduced public projection of a User used in view-models.
type Profile struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
	Avatar   string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// Actor is the verified identity attached to a request by the upstream
// auth layer. It is established once at the API boundary; everything below
// the handler layer receives it explicitly.
type Actor struct {
	ID primitive.ObjectID
}
