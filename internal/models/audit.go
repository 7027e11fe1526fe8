package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions. The set is closed: free-form action strings are not
// accepted into the log.
const (
	AuditCreateTask       = "create_task"
	AuditUpdateTask       = "update_task"
	AuditAssignTask       = "assign_task"
	AuditAssign           = "assign"
	AuditAccept           = "accept"
	AuditStatusChange     = "status_change"
	AuditPauseTask        = "pause_task"
	AuditComment          = "comment"
	AuditTeamAddMember    = "team_add_member"
	AuditTeamRemoveMember = "team_remove_member"
	AuditCreateObject     = "create_object"
	AuditUpdateObject     = "update_object"
	AuditDeleteObject     = "delete_object"
	AuditCreateUser       = "create_user"
	AuditUpdateUser       = "update_user"
	AuditDeleteUser       = "delete_user"
)

// Audit entity types
const (
	EntityTask    = "task"
	EntityObject  = "object"
	EntityUser    = "user"
	EntityComment = "comment"
)

var validAuditActions = map[string]bool{
	AuditCreateTask: true, AuditUpdateTask: true, AuditAssignTask: true,
	AuditAssign: true, AuditAccept: true, AuditStatusChange: true,
	AuditPauseTask: true, AuditComment: true,
	AuditTeamAddMember: true, AuditTeamRemoveMember: true,
	AuditCreateObject: true, AuditUpdateObject: true, AuditDeleteObject: true,
	AuditCreateUser: true, AuditUpdateUser: true, AuditDeleteUser: true,
}

func IsValidAuditAction(a string) bool {
	return validAuditActions[a]
}

// AuditLog is append-only: rows are never updated or deleted and outlive the
// entities they reference. A nil actor means the action was system-originated.
type AuditLog struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    *uuid.UUID     `json:"actor_id,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Meta       map[string]any `json:"meta,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// TaskHistoryEvent is an audit row prepared for display: the actor id is
// resolved to a display name and user ids inside meta are annotated with
// names. Resolution happens at read time so the log stays correct across
// profile renames.
type TaskHistoryEvent struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    *uuid.UUID     `json:"actor_id,omitempty"`
	ActorName  string         `json:"actor_name"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Meta       map[string]any `json:"meta"`
	CreatedAt  time.Time      `json:"created_at"`
}
