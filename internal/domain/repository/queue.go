package repository

import "context"

// MediaCleanupTask asks the worker to remove orphaned media objects after
// their owning video has been deleted. Media removal is best-effort and
// decoupled from the in-store cascade.
type MediaCleanupTask struct {
	VideoID    string   `json:"video_id"`
	ObjectKeys []string `json:"object_keys"`
	RetryCount int      `json:"retry_count"`
}

// MessageQueue defines the interface for message queue operations.
// Implementations should be provided by the infrastructure layer (e.g. RabbitMQ).
type MessageQueue interface {
	// PublishMediaCleanupTask sends a cleanup task to the queue.
	// Used by the API server after a video delete cascade.
	PublishMediaCleanupTask(ctx context.Context, task MediaCleanupTask) error

	// ConsumeMediaCleanupTasks starts consuming cleanup tasks from the
	// queue, calling handler for each received task.
	// Used by the worker service.
	ConsumeMediaCleanupTasks(ctx context.Context, handler func(task MediaCleanupTask) error) error

	// Close gracefully closes the connection to the message queue.
	Close() error
}
