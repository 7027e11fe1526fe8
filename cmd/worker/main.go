package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/db"
	"github.com/opsboard/backend/internal/events"
	"github.com/opsboard/backend/internal/repositories"
	"github.com/opsboard/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repos
	taskRepo := repositories.NewTaskRepo(pool)
	teamRepo := repositories.NewTeamRepo(pool)
	commentRepo := repositories.NewCommentRepo(pool)
	objectRepo := repositories.NewObjectRepo(pool)
	profileRepo := repositories.NewProfileRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Services
	publisher := events.NewRedisPublisher(rdb, log)
	notifier := services.NewNotifier(publisher, log)
	taskService := services.NewTaskService(taskRepo, teamRepo, commentRepo, objectRepo, profileRepo, auditRepo, notifier, log)

	log.Info("worker started",
		zap.Duration("archive_interval", cfg.ArchiveInterval),
		zap.Int("archive_threshold_hours", cfg.ArchiveThresholdHours),
	)

	archiveTicker := time.NewTicker(cfg.ArchiveInterval)
	defer archiveTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-archiveTicker.C:
			runArchive(ctx, taskService, cfg, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func runArchive(ctx context.Context, taskService *services.TaskService, cfg *config.Config, log *zap.Logger) {
	n, err := taskService.ArchiveDone(ctx, cfg.ArchiveThresholdHours)
	if err != nil {
		log.Error("archive sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("archive sweep complete", zap.Int("archived", n))
	}
}
