package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// View-models are denormalized read-only projections assembled by
// aggregation pipelines. Field names mirror the pipeline output documents,
// so these types decode straight from the aggregation cursor.

// VideoSummary is a search/listing result row with a reduced owner profile.
type VideoSummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoFile   MediaRef           `bson:"videoFile" json:"videoFile"`
	Thumbnail   MediaRef           `bson:"thumbnail" json:"thumbnail"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	Owner       Profile            `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ChannelOwner is a video owner enriched with subscription data relative
// to the requesting actor.
type ChannelOwner struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	Username        string             `bson:"username" json:"username"`
	FullName        string             `bson:"fullName" json:"fullName"`
	Avatar          string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	SubscriberCount int64              `bson:"subscriberCount" json:"subscriberCount"`
	IsSubscribed    bool               `bson:"isSubscribed" json:"isSubscribed"`
}

// VideoDetail is the single-video page view-model. The like and
// subscription flags are computed in the same pipeline as the counts they
// accompany, so a response can never disagree with itself about the
// actor's own contribution.
type VideoDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoFile   MediaRef           `bson:"videoFile" json:"videoFile"`
	Thumbnail   MediaRef           `bson:"thumbnail" json:"thumbnail"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	Owner       ChannelOwner       `bson:"owner" json:"owner"`
	LikesCount  int64              `bson:"likesCount" json:"likesCount"`
	IsLiked     bool               `bson:"isLiked" json:"isLiked"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// CommentView is a comment listing row with a reduced owner profile and
// its like count.
type CommentView struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Content    string             `bson:"content" json:"content"`
	Owner      Profile            `bson:"owner" json:"owner"`
	LikesCount int64              `bson:"likesCount" json:"likesCount"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ChannelStats aggregates a channel's totals. Every metric is zero-valued
// when the channel has no underlying records.
type ChannelStats struct {
	TotalVideos     int64 `bson:"totalVideos" json:"totalVideos"`
	TotalViews      int64 `bson:"totalViews" json:"totalViews"`
	TotalLikes      int64 `bson:"totalLikes" json:"totalLikes"`
	SubscriberCount int64 `bson:"subscriberCount" json:"subscriberCount"`
}

// ChannelVideo is a dashboard listing row for the channel owner.
type ChannelVideo struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoFile   MediaRef           `bson:"videoFile" json:"videoFile"`
	Thumbnail   MediaRef           `bson:"thumbnail" json:"thumbnail"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	LikesCount  int64              `bson:"likesCount" json:"likesCount"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProfileList is a deduplicated list of public profiles plus its total,
// produced by the subscriber/subscription listings.
type ProfileList struct {
	Profiles []Profile `bson:"profiles" json:"profiles"`
	Total    int64     `bson:"total" json:"total"`
}
