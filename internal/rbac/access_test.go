package rbac

import (
	"testing"

	"github.com/google/uuid"
)

var (
	creatorID  = uuid.New()
	assigneeID = uuid.New()
	memberID   = uuid.New()
	engineerID = uuid.New()
	strangerID = uuid.New()
)

func accessFixture() (TaskAccess, []uuid.UUID, *uuid.UUID) {
	task := TaskAccess{
		ID:         uuid.New(),
		Status:     "new",
		ObjectID:   uuid.New(),
		CreatedBy:  creatorID,
		AssignedTo: assigneeID,
	}
	return task, []uuid.UUID{memberID}, &engineerID
}

func TestCanReadTask(t *testing.T) {
	task, team, objEng := accessFixture()

	tests := []struct {
		name     string
		role     string
		userID   uuid.UUID
		expected bool
	}{
		{"admin anyone", RoleAdmin, strangerID, true},
		{"chief anyone", RoleChief, strangerID, true},

		{"lead creator", RoleLead, creatorID, true},
		{"lead assignee", RoleLead, assigneeID, true},
		{"lead team member", RoleLead, memberID, true},
		{"lead stranger", RoleLead, strangerID, false},

		{"engineer creator", RoleEngineer, creatorID, true},
		{"engineer stranger", RoleEngineer, strangerID, false},

		// Object engineer reads through object ownership only, independent of
		// any direct involvement with the task.
		{"object_engineer owns object", RoleObjectEngineer, engineerID, true},
		{"object_engineer assignee but wrong object", RoleObjectEngineer, assigneeID, false},
		{"object_engineer stranger", RoleObjectEngineer, strangerID, false},

		{"tech assignee", RoleTech, assigneeID, true},
		{"tech team member", RoleTech, memberID, true},
		{"tech creator only", RoleTech, creatorID, false},
		{"tech stranger", RoleTech, strangerID, false},

		{"unknown role", "manager", assigneeID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReadTask(tt.role, tt.userID, task, team, objEng); got != tt.expected {
				t.Errorf("CanReadTask(%q, %s) = %v, want %v", tt.role, tt.userID, got, tt.expected)
			}
		})
	}
}

func TestCanReadTaskNilObjectEngineer(t *testing.T) {
	task, team, _ := accessFixture()
	if CanReadTask(RoleObjectEngineer, engineerID, task, team, nil) {
		t.Error("object_engineer granted read on object with no engineer")
	}
}

func TestCanChangeStatus(t *testing.T) {
	task, team, _ := accessFixture()

	tests := []struct {
		name     string
		actor    Actor
		expected bool
	}{
		{"admin always", Actor{strangerID, RoleAdmin}, true},
		{"assignee tech", Actor{assigneeID, RoleTech}, true},
		{"team member engineer", Actor{memberID, RoleEngineer}, true},

		// The creator holds no status-change rights unless also a participant,
		// even at lead level. Read and write are deliberately asymmetric here.
		{"creator lead not participant", Actor{creatorID, RoleLead}, false},
		{"chief not participant", Actor{strangerID, RoleChief}, false},
		{"stranger", Actor{strangerID, RoleTech}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanChangeStatus(task, tt.actor, team); got != tt.expected {
				t.Errorf("CanChangeStatus(%s/%s) = %v, want %v", tt.actor.ID, tt.actor.Role, got, tt.expected)
			}
		})
	}
}

func TestCanManageTeamScoped(t *testing.T) {
	tests := []struct {
		role     string
		scoped   bool
		expected bool
	}{
		{RoleAdmin, false, true},
		{RoleChief, false, true},
		{RoleLead, false, true},
		{RoleEngineer, false, true},
		{RoleObjectEngineer, true, true},
		{RoleObjectEngineer, false, false},
		{RoleTech, true, false},
		{RoleTech, false, false},
	}

	for _, tt := range tests {
		if got := CanManageTeamScoped(tt.role, tt.scoped); got != tt.expected {
			t.Errorf("CanManageTeamScoped(%q, %v) = %v, want %v", tt.role, tt.scoped, got, tt.expected)
		}
	}
}

func TestCanCreateOrAssignTask(t *testing.T) {
	tests := []struct {
		name     string
		actor    string
		target   string
		scoped   bool
		expected bool
	}{
		{"admin any target", RoleAdmin, RoleAdmin, false, true},
		{"tech never", RoleTech, RoleTech, true, false},
		{"object_engineer unscoped", RoleObjectEngineer, RoleTech, false, false},
		{"object_engineer scoped", RoleObjectEngineer, RoleTech, true, true},
		{"object_engineer scoped to lead", RoleObjectEngineer, RoleLead, true, true},
		{"lead to engineer", RoleLead, RoleEngineer, false, true},
		{"lead to chief blocked by hierarchy", RoleLead, RoleChief, false, false},
		{"chief to lead", RoleChief, RoleLead, true, true},
		{"engineer to lead blocked", RoleEngineer, RoleLead, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCreateOrAssignTask(tt.actor, tt.target, tt.scoped); got != tt.expected {
				t.Errorf("CanCreateOrAssignTask(%q, %q, %v) = %v, want %v", tt.actor, tt.target, tt.scoped, got, tt.expected)
			}
		})
	}
}

func TestParticipants(t *testing.T) {
	task, _, _ := accessFixture()

	// Assignee duplicated in the team rows must collapse to one entry.
	got := Participants(task, []uuid.UUID{memberID, assigneeID, memberID})
	if len(got) != 2 {
		t.Fatalf("expected 2 participants, got %d: %v", len(got), got)
	}
	if got[0] != assigneeID {
		t.Errorf("assignee should lead the participant set, got %v", got[0])
	}

	got = Participants(task, nil)
	if len(got) != 1 || got[0] != assigneeID {
		t.Errorf("empty team should yield just the assignee, got %v", got)
	}
}
