package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/vidtube/internal/api/handler"
	"github.com/hszk-dev/vidtube/internal/api/middleware"
	"github.com/hszk-dev/vidtube/internal/config"
	"github.com/hszk-dev/vidtube/internal/infrastructure/cache"
	"github.com/hszk-dev/vidtube/internal/infrastructure/mongodb"
	"github.com/hszk-dev/vidtube/internal/infrastructure/queue"
	"github.com/hszk-dev/vidtube/internal/infrastructure/storage"
	"github.com/hszk-dev/vidtube/internal/usecase"
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

	// Initialize infrastructure clients
	mongoClient, err := mongodb.NewClient(ctx, mongodb.DefaultClientConfig(cfg.Mongo.URI, cfg.Mongo.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() { _ = mongoClient.Close(context.Background()) }()
	logger.Info("connected to MongoDB")

	if err := mongoClient.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	// Repositories
	videoRepo := mongodb.NewVideoRepository(mongoClient)
	commentRepo := mongodb.NewCommentRepository(mongoClient)
	likeRepo := mongodb.NewLikeRepository(mongoClient)
	tweetRepo := mongodb.NewTweetRepository(mongoClient)
	playlistRepo := mongodb.NewPlaylistRepository(mongoClient)
	subscriptionRepo := mongodb.NewSubscriptionRepository(mongoClient)
	userRepo := mongodb.NewUserRepository(mongoClient)
	dashboardRepo := mongodb.NewDashboardRepository(mongoClient)

	// Services
	videoSvc := usecase.NewVideoService(videoRepo, commentRepo, likeRepo, userRepo, storageClient, queueClient)
	commentSvc := usecase.NewCommentService(commentRepo, videoRepo)
	likeSvc := usecase.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	tweetSvc := usecase.NewTweetService(tweetRepo, userRepo)
	playlistSvc := usecase.NewPlaylistService(playlistRepo, videoRepo)
	subscriptionSvc := usecase.NewSubscriptionService(subscriptionRepo, userRepo)
	dashboardSvc := usecase.NewCachedDashboardService(
		usecase.NewDashboardService(dashboardRepo, videoRepo),
		cache.NewRedisStatsCache(redisClient),
		usecase.CachedDashboardServiceConfig{StatsTTL: cfg.Cache.StatsTTL},
	)

	r := setupRouter(logger, routerDeps{
		videos:        handler.NewVideoHandler(videoSvc),
		comments:      handler.NewCommentHandler(commentSvc),
		likes:         handler.NewLikeHandler(likeSvc),
		tweets:        handler.NewTweetHandler(tweetSvc),
		playlists:     handler.NewPlaylistHandler(playlistSvc),
		subscriptions: handler.NewSubscriptionHandler(subscriptionSvc),
		dashboard:     handler.NewDashboardHandler(dashboardSvc),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

type routerDeps struct {
	videos        *handler.VideoHandler
	comments      *handler.CommentHandler
	likes         *handler.LikeHandler
	tweets        *handler.TweetHandler
	playlists     *handler.PlaylistHandler
	subscriptions *handler.SubscriptionHandler
	dashboard     *handler.DashboardHandler
}

func setupRouter(logger *slog.Logger, deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Auth)

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", deps.videos.Search)
			r.Post("/", deps.videos.Publish)
			r.Get("/{id}", deps.videos.Get)
			r.Patch("/{id}", deps.videos.Update)
			r.Patch("/{id}/toggle-publish", deps.videos.TogglePublish)
			r.Delete("/{id}", deps.videos.Delete)

			r.Get("/{id}/comments", deps.comments.List)
			r.Post("/{id}/comments", deps.comments.Add)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Patch("/{commentId}", deps.comments.Update)
			r.Delete("/{commentId}", deps.comments.Delete)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Post("/toggle/video/{id}", deps.likes.ToggleVideoLike)
			r.Post("/toggle/comment/{id}", deps.likes.ToggleCommentLike)
			r.Post("/toggle/tweet/{id}", deps.likes.ToggleTweetLike)
			r.Get("/videos", deps.likes.ListLikedVideos)
		})

		r.Route("/tweets", func(r chi.Router) {
			r.Post("/", deps.tweets.Create)
			r.Get("/user/{userId}", deps.tweets.ListByUser)
			r.Patch("/{id}", deps.tweets.Update)
			r.Delete("/{id}", deps.tweets.Delete)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Post("/", deps.playlists.Create)
			r.Get("/{id}", deps.playlists.Get)
			r.Get("/user/{userId}", deps.playlists.ListByUser)
			r.Patch("/{id}", deps.playlists.Update)
			r.Delete("/{id}", deps.playlists.Delete)
			r.Patch("/{id}/videos/{videoId}", deps.playlists.AddVideo)
			r.Delete("/{id}/videos/{videoId}", deps.playlists.RemoveVideo)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Post("/channel/{channelId}", deps.subscriptions.Toggle)
			r.Get("/channel/{channelId}/subscribers", deps.subscriptions.ListSubscribers)
			r.Get("/user/{userId}/channels", deps.subscriptions.ListSubscribedChannels)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", deps.dashboard.Stats)
			r.Get("/videos", deps.dashboard.Videos)
		})
	})

	return r
}
