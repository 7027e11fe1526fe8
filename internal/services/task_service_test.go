package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/rbac"
	"github.com/opsboard/backend/internal/repositories"
)

func adminActor() *models.Profile {
	return &models.Profile{ID: uuid.New(), Role: rbac.RoleAdmin, FullName: "Admin"}
}

// Pause checks its inputs before touching any store, so a service without
// repositories is enough to exercise the rejections.
func TestPauseRejectsBadInput(t *testing.T) {
	s := &TaskService{}
	actor := adminActor()
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name     string
		reason   string
		resumeAt time.Time
	}{
		{"short reason", "wip", future},
		{"padding does not count toward length", "  abcd  ", future},
		{"resume in the past", "awaiting parts", time.Now().Add(-time.Minute)},
		{"resume not strictly future", "awaiting parts", time.Now()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Pause(context.Background(), actor, uuid.New(), tc.reason, tc.resumeAt)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("err = %v, want validation", err)
			}
		})
	}
}

// Paused is only reachable through Pause; the generic transition must reject
// it before consulting the store or the access rules.
func TestStatusChangeRejectsUnreachableTargets(t *testing.T) {
	s := &TaskService{}
	actor := adminActor()

	_, err := s.UpdateStatus(context.Background(), actor, uuid.New(), models.TaskStatusPaused)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("paused target: err = %v, want validation", err)
	}

	_, err = s.UpdateStatus(context.Background(), actor, uuid.New(), "frozen")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("unknown status: err = %v, want validation", err)
	}
}

// A rejected trail write has to fail the mutation. The repository refuses
// unknown actions before reaching the pool, which lets the propagation path
// run without a database.
func TestAuditFailureSurfaces(t *testing.T) {
	s := &TaskService{auditRepo: repositories.NewAuditRepo(nil), log: zap.NewNop()}

	err := s.audit(context.Background(), uuid.New(), "not_an_action", models.EntityTask, uuid.New(), nil)
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("err = %v, want upstream", err)
	}
}

// Comments are recorded against the comment entity so that task history,
// which reads task-entity rows, never includes them.
func TestCommentAuditEntry(t *testing.T) {
	actorID := uuid.New()
	c := &models.TaskComment{ID: uuid.New(), TaskID: uuid.New()}

	entry := commentAudit(actorID, c)
	if entry.Action != models.AuditComment {
		t.Errorf("action = %q", entry.Action)
	}
	if entry.EntityType != models.EntityComment {
		t.Errorf("entity type = %q, want %q", entry.EntityType, models.EntityComment)
	}
	if entry.EntityID != c.ID {
		t.Errorf("entity id = %v, want comment id %v", entry.EntityID, c.ID)
	}
	if entry.Meta["task_id"] != c.TaskID.String() {
		t.Errorf("meta task_id = %v, want %v", entry.Meta["task_id"], c.TaskID)
	}
	if entry.ActorID == nil || *entry.ActorID != actorID {
		t.Errorf("actor id = %v, want %v", entry.ActorID, actorID)
	}
}

func TestFeedRestriction(t *testing.T) {
	cases := []struct {
		kind string
		role string
		want bool
	}{
		{repositories.ListNew, rbac.RoleEngineer, true},
		{repositories.ListNew, rbac.RoleChief, true},
		{repositories.ListNew, rbac.RoleAdmin, false},
		{repositories.ListArchive, rbac.RoleEngineer, false},
		{repositories.ListArchive, rbac.RoleChief, false},
		{repositories.ListArchive, rbac.RoleTech, false},
		{repositories.ListMy, rbac.RoleEngineer, false},
	}
	for _, tc := range cases {
		if got := feedRestricted(tc.kind, tc.role); got != tc.want {
			t.Errorf("feedRestricted(%q, %q) = %v, want %v", tc.kind, tc.role, got, tc.want)
		}
	}
}
