package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// minioClient defines the interface for MinIO operations.
// This abstraction allows for easier unit testing with mocks.
type minioClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// ClientConfig holds configuration for the MinIO client.
type ClientConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is the external-facing base URL objects are served
	// from (e.g. a CDN or the MinIO endpoint itself).
	PublicBaseURL string
}

// Client wraps a MinIO client and implements repository.MediaStorage.
type Client struct {
	client        minioClient
	bucket        string
	publicBaseURL string
}

var _ repository.MediaStorage = (*Client)(nil)

// NewClient creates a new MinIO client. It verifies the bucket exists
// during initialization to fail fast on misconfiguration.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return newClientWithMinioClient(ctx, client, cfg)
}

// newClientWithMinioClient creates a Client with a given minioClient
// implementation. This is used for dependency injection in tests.
func newClientWithMinioClient(ctx context.Context, client minioClient, cfg ClientConfig) (*Client, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", repository.ErrBucketNotFound, cfg.Bucket)
	}

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	return &Client{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: baseURL,
	}, nil
}

// Store uploads the file at localPath under a unique key and returns the
// public URL and key. The local temp file is removed after the upload
// attempt regardless of outcome.
func (c *Client) Store(ctx context.Context, localPath, contentType string) (*repository.StoredMedia, error) {
	defer func() {
		_ = os.Remove(localPath)
	}()

	key := path.Join("media", uuid.NewString(), path.Base(localPath))

	_, err := c.client.FPutObject(ctx, c.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store object: %w", err)
	}

	return &repository.StoredMedia{
		URL: fmt.Sprintf("%s/%s/%s", c.publicBaseURL, c.bucket, key),
		Key: key,
	}, nil
}

// Remove deletes the object identified by key.
func (c *Client) Remove(ctx context.Context, key string) error {
	err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

// Ping verifies the MinIO connection is alive by checking bucket access.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to ping minio: %w", err)
	}
	return nil
}
