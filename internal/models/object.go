package models

import (
	"time"

	"github.com/google/uuid"
)

// OperationalObject is a physical site or equipment unit tasks are performed
// against. The named engineer, when set, gets read access to every task under
// the object.
type OperationalObject struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	ObjectEngineerID *uuid.UUID `json:"object_engineer_id,omitempty"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
