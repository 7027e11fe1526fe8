package models

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is one browser endpoint registered for Web Push delivery.
// A user may hold several (one per device/browser).
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Endpoint  string    `json:"endpoint"`
	P256DH    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}
