package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskComment struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	AuthorID    uuid.UUID `json:"author_id"`
	AuthorName  *string   `json:"author_name,omitempty"`
	Body        string    `json:"body"`
	ClientMsgID *string   `json:"client_msg_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
