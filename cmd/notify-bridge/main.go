package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/db"
	"github.com/opsboard/backend/internal/events"
	"github.com/opsboard/backend/internal/push"
	"github.com/opsboard/backend/internal/repositories"
)

// notify-bridge subscribes to queued push requests and performs Web Push
// delivery, keeping VAPID signing and retry latency out of the API process.

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

	pushRepo := repositories.NewPushRepo(pool)
	sender := push.NewSender(pushRepo, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	if !sender.Configured() {
		log.Warn("VAPID keys not configured, push delivery disabled")
	}
	log.Info("notify-bridge started")

	_ = subscriber.Subscribe(ctx, events.StreamPush, func(event events.Event) {
		if event.Type != events.EventPushRequested {
			return
		}
		deliver(ctx, sender, event, log)
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down notify-bridge")
	cancel()
}

func deliver(ctx context.Context, sender *push.Sender, event events.Event, log *zap.Logger) {
	rawUserID, _ := event.Payload["user_id"].(string)
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		log.Warn("push request without valid user_id", zap.Error(err))
		return
	}

	payload := push.Payload{}
	payload.Title, _ = event.Payload["title"].(string)
	payload.Body, _ = event.Payload["body"].(string)
	payload.URL, _ = event.Payload["url"].(string)
	if rawTaskID, ok := event.Payload["task_id"].(string); ok {
		if taskID, err := uuid.Parse(rawTaskID); err == nil {
			payload.TaskID = &taskID
		}
	}

	res := sender.SendToUser(ctx, userID, payload)
	if res.Failed > 0 || res.Cleaned > 0 {
		log.Info("push delivery finished",
			zap.String("user_id", userID.String()),
			zap.Int("total", res.Total),
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed),
			zap.Int("cleaned", res.Cleaned),
		)
	}
}
