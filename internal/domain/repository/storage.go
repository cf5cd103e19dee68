package repository

import "context"

// StoredMedia describes an object accepted by external media storage.
type StoredMedia struct {
	// URL is the public location of the stored object.
	URL string
	// Key is the storage object identifier used for later removal.
	Key string
}

// MediaStorage defines the interface for external media object storage.
// Implementations should be provided by the infrastructure layer (e.g. MinIO).
type MediaStorage interface {
	// Store uploads the file at localPath and returns its public URL and
	// object key. The local file is removed after the upload attempt,
	// whether or not it succeeded.
	Store(ctx context.Context, localPath, contentType string) (*StoredMedia, error)

	// Remove deletes the object identified by key.
	Remove(ctx context.Context, key string) error
}
