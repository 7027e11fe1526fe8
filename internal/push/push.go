package push

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/models"
)

// Payload is what the service worker receives.
type Payload struct {
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	URL    string     `json:"url,omitempty"`
	TaskID *uuid.UUID `json:"task_id,omitempty"`
}

// Result summarizes one fan-out across a user's registered endpoints.
type Result struct {
	Total   int `json:"total"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Cleaned int `json:"cleaned"`
}

// SubscriptionStore is the slice of the push repository the sender needs.
type SubscriptionStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

// Sender delivers Web Push messages over VAPID. Delivery is best-effort:
// callers treat any Result as success and never roll back on failures.
type Sender struct {
	store      SubscriptionStore
	publicKey  string
	privateKey string
	subject    string
	log        *zap.Logger
}

func NewSender(store SubscriptionStore, publicKey, privateKey, subject string, log *zap.Logger) *Sender {
	return &Sender{
		store:      store,
		publicKey:  publicKey,
		privateKey: privateKey,
		subject:    subject,
		log:        log,
	}
}

func (s *Sender) Configured() bool {
	return s.publicKey != "" && s.privateKey != "" && s.subject != ""
}

// SendToUser pushes payload to every endpoint the user has registered.
// Endpoints the push service reports gone (404/410) are removed.
func (s *Sender) SendToUser(ctx context.Context, userID uuid.UUID, payload Payload) Result {
	var res Result
	if !s.Configured() {
		return res
	}

	subs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load push subscriptions", zap.String("user_id", userID.String()), zap.Error(err))
		return res
	}
	res.Total = len(subs)

	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("failed to marshal push payload", zap.Error(err))
		res.Failed = res.Total
		return res
	}

	for _, sub := range subs {
		resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys:     webpush.Keys{P256dh: sub.P256DH, Auth: sub.Auth},
		}, &webpush.Options{
			Subscriber:      s.subject,
			VAPIDPublicKey:  s.publicKey,
			VAPIDPrivateKey: s.privateKey,
			TTL:             3600,
			HTTPClient:      &http.Client{Timeout: 10 * time.Second},
		})
		if err != nil {
			res.Failed++
			s.log.Warn("push delivery failed", zap.String("user_id", userID.String()), zap.Error(err))
			continue
		}
		status := resp.StatusCode
		resp.Body.Close()

		switch {
		case status == 404 || status == 410:
			// Endpoint unsubscribed; drop it so future sends skip it.
			if err := s.store.DeleteByEndpoint(ctx, sub.Endpoint); err != nil {
				s.log.Warn("failed to clean stale push endpoint", zap.Error(err))
			} else {
				res.Cleaned++
			}
			res.Failed++
		case status >= 400:
			res.Failed++
			s.log.Warn("push service rejected message", zap.Int("status", status))
		default:
			res.Sent++
		}
	}

	return res
}
