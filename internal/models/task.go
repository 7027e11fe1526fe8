package models

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses
const (
	TaskStatusNew        = "new"
	TaskStatusInProgress = "in_progress"
	TaskStatusPaused     = "paused"
	TaskStatusDone       = "done"
)

// Task priorities (informational, never gate permissions)
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

func IsValidStatus(s string) bool {
	switch s {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusPaused, TaskStatusDone:
		return true
	}
	return false
}

func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// DirectStatusTargets lists statuses reachable through the generic status
// operation. Paused is deliberately absent: pausing must go through the
// dedicated pause operation with a reason and resume time, which runs as a
// single atomic procedure in the store.
var DirectStatusTargets = map[string]bool{
	TaskStatusNew:        true,
	TaskStatusInProgress: true,
	TaskStatusDone:       true,
}

func CanSetStatusDirectly(to string) bool {
	return DirectStatusTargets[to]
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	ObjectID    uuid.UUID  `json:"object_id"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	ResumeAt    *time.Time `json:"resume_at,omitempty"`
	PauseReason *string    `json:"pause_reason,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	AssignedTo  uuid.UUID  `json:"assigned_to"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskWithRefs embeds Task and adds display info resolved in one query to
// avoid N+1 lookups on listings.
type TaskWithRefs struct {
	Task
	ObjectName       *string     `json:"object_name,omitempty"`
	ObjectEngineerID *uuid.UUID  `json:"object_engineer_id,omitempty"`
	AssigneeName     *string     `json:"assignee_name,omitempty"`
	TeamMembers      []TeamEntry `json:"team_members,omitempty"`
}

type TeamEntry struct {
	UserID     uuid.UUID  `json:"user_id"`
	MemberName *string    `json:"member_name,omitempty"`
	AddedBy    *uuid.UUID `json:"added_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// StatusPatch is the field set a generic status transition writes to the
// task row in a single update.
type StatusPatch struct {
	Status      string
	AcceptedAt  *time.Time // set only on first entry into in_progress
	CompletedAt *time.Time // set only on first entry into done
}

// BuildStatusPatch computes the patch for a direct transition. Lifecycle
// stamps are idempotent: re-entering in_progress never resets accepted_at,
// re-entering done never resets completed_at. resume_at is always cleared by
// the update itself, keeping the "resume_at iff paused" invariant.
func BuildStatusPatch(t *Task, to string, now time.Time) StatusPatch {
	p := StatusPatch{Status: to}
	if to == TaskStatusInProgress && t.AcceptedAt == nil {
		p.AcceptedAt = &now
	}
	if to == TaskStatusDone && t.CompletedAt == nil {
		p.CompletedAt = &now
	}
	return p
}
