package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hszk-dev/vidtube/internal/config"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
	"github.com/hszk-dev/vidtube/internal/infrastructure/metrics"
	"github.com/hszk-dev/vidtube/internal/infrastructure/queue"
	"github.com/hszk-dev/vidtube/internal/infrastructure/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:      cfg.MinIO.Endpoint,
		AccessKey:     cfg.MinIO.AccessKey,
		SecretKey:     cfg.MinIO.SecretKey,
		Bucket:        cfg.MinIO.Bucket,
		UseSSL:        cfg.MinIO.UseSSL,
		PublicBaseURL: cfg.MinIO.PublicBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// WaitGroup to track in-flight tasks
	var wg sync.WaitGroup

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting worker, consuming media cleanup tasks")
		err := queueClient.ConsumeMediaCleanupTasks(ctx, func(task repository.MediaCleanupTask) error {
			wg.Add(1)
			defer wg.Done()

			logger.Info("processing cleanup task",
				slog.String("video_id", task.VideoID),
				slog.Int("retry_count", task.RetryCount),
			)

			if task.RetryCount > cfg.Worker.MaxRetries {
				// Give up; leftover objects are handled by manual cleanup
				logger.Error("cleanup task exceeded max retries, dropping",
					slog.String("video_id", task.VideoID),
					slog.Int("retry_count", task.RetryCount),
				)
				return nil
			}

			if err := removeObjects(ctx, storageClient, task); err != nil {
				logger.Error("cleanup task failed",
					slog.String("video_id", task.VideoID),
					slog.Int("retry_count", task.RetryCount),
					slog.String("error", err.Error()),
				)
				return err
			}

			logger.Info("cleanup task completed",
				slog.String("video_id", task.VideoID),
			)
			return nil
		})
		if err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("consumer error: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down worker", slog.String("signal", sig.String()))
	}

	cancel()

	// Wait for in-flight tasks with a timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownTimeout)
	defer shutdownCancel()

	select {
	case <-done:
		logger.Info("worker stopped")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, some tasks may be incomplete")
	}

	return nil
}

// removeObjects deletes every object the task names. Missing objects are
// fine: the goal is absence, so a repeat delivery after a partial failure
// succeeds for the keys already gone.
func removeObjects(ctx context.Context, storageClient *storage.Client, task repository.MediaCleanupTask) error {
	var firstErr error
	for _, key := range task.ObjectKeys {
		if err := storageClient.Remove(ctx, key); err != nil {
			metrics.MediaCleanupTotal.WithLabelValues(metrics.CleanupStatusError).Inc()
			if firstErr == nil {
				firstErr = fmt.Errorf("remove %s: %w", key, err)
			}
			continue
		}
		metrics.MediaCleanupTotal.WithLabelValues(metrics.CleanupStatusSuccess).Inc()
	}
	return firstErr
}
