package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/events"
)

// Notifier fans domain events out to the live stream and queues push
// requests. Everything here is best-effort: failures are logged and never
// surface to the request that triggered them.
type Notifier struct {
	publisher events.Publisher
	log       *zap.Logger
}

func NewNotifier(publisher events.Publisher, log *zap.Logger) *Notifier {
	return &Notifier{publisher: publisher, log: log}
}

// TaskEvent publishes to the live task stream consumed by websocket clients.
func (n *Notifier) TaskEvent(eventType string, payload map[string]any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := n.publisher.Publish(ctx, events.StreamTasks, events.Event{Type: eventType, Payload: payload}); err != nil {
			n.log.Warn("failed to publish task event", zap.String("type", eventType), zap.Error(err))
		}
	}()
}

// Push queues one push request per recipient on the push stream. The bridge
// process picks them up and performs Web Push delivery.
func (n *Notifier) Push(userIDs []uuid.UUID, title, body string, taskID uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, userID := range userIDs {
			err := n.publisher.Publish(ctx, events.StreamPush, events.Event{
				Type: events.EventPushRequested,
				Payload: map[string]any{
					"user_id": userID.String(),
					"title":   title,
					"body":    body,
					"task_id": taskID.String(),
					"url":     "/tasks/" + taskID.String(),
				},
			})
			if err != nil {
				n.log.Warn("failed to queue push", zap.String("user_id", userID.String()), zap.Error(err))
			}
		}
	}()
}
