package repository

import "errors"

var (
	// ErrVideoNotFound is returned when a video cannot be found.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentNotFound is returned when a comment cannot be found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrTweetNotFound is returned when a tweet cannot be found.
	ErrTweetNotFound = errors.New("tweet not found")

	// ErrPlaylistNotFound is returned when a playlist cannot be found.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrLikeNotFound is returned when no like exists for an
	// (actor, target) pair.
	ErrLikeNotFound = errors.New("like not found")

	// ErrSubscriptionNotFound is returned when no subscription exists for a
	// (subscriber, channel) pair.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrDuplicateReaction is returned when the storage-layer uniqueness
	// constraint rejects a second reaction record for the same
	// (actor, target) pair. This is how a racing double-toggle surfaces.
	ErrDuplicateReaction = errors.New("reaction already exists")

	// ErrObjectNotFound is returned when a storage object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)
