package usecase

import "errors"

var (
	// ErrNotOwner is returned when the acting user tries to mutate an
	// entity owned by someone else. The entity is left untouched.
	ErrNotOwner = errors.New("actor does not own this resource")

	// ErrEmptySearchQuery is returned when a video search is requested
	// without a query string.
	ErrEmptySearchQuery = errors.New("search query cannot be empty")

	// ErrMissingMedia is returned when a video publish request lacks the
	// video file or thumbnail upload.
	ErrMissingMedia = errors.New("video file and thumbnail are required")
)
