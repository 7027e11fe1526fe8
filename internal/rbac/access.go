package rbac

import "github.com/google/uuid"

// TaskAccess is the access-relevant projection of a task. Handlers load it
// once and pass it explicitly into the predicates below; no predicate reads
// ambient session state.
type TaskAccess struct {
	ID         uuid.UUID
	Status     string
	ObjectID   uuid.UUID
	CreatedBy  uuid.UUID
	AssignedTo uuid.UUID
}

// Actor is the requesting identity.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// Participants returns {assignee} ∪ teamMemberIDs, deduplicated. The assignee
// is an ex officio member whether or not a team row duplicates it; every
// participation check goes through this one definition of "team".
func Participants(task TaskAccess, teamMemberIDs []uuid.UUID) []uuid.UUID {
	out := []uuid.UUID{task.AssignedTo}
	seen := map[uuid.UUID]bool{task.AssignedTo: true}
	for _, id := range teamMemberIDs {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func IsParticipant(task TaskAccess, userID uuid.UUID, teamMemberIDs []uuid.UUID) bool {
	if task.AssignedTo == userID {
		return true
	}
	for _, id := range teamMemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CanReadTask decides read eligibility. Object engineers see every task under
// their object regardless of direct involvement; lead/engineer additionally
// get visibility into tasks they created.
func CanReadTask(role string, userID uuid.UUID, task TaskAccess, teamMemberIDs []uuid.UUID, objectEngineerID *uuid.UUID) bool {
	switch role {
	case RoleAdmin, RoleChief:
		return true
	case RoleLead, RoleEngineer:
		return task.CreatedBy == userID || IsParticipant(task, userID, teamMemberIDs)
	case RoleObjectEngineer:
		return objectEngineerID != nil && *objectEngineerID == userID
	case RoleTech:
		return IsParticipant(task, userID, teamMemberIDs)
	}
	return false
}

// CanChangeStatus decides write eligibility for status transitions. Stricter
// than read: only the assignee or an added team member may transition, so a
// creator who is not a participant can read the task but not flip its status.
func CanChangeStatus(task TaskAccess, actor Actor, teamMemberIDs []uuid.UUID) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return IsParticipant(task, actor.ID, teamMemberIDs)
}

// CanManageTeamScoped is the task-resolved team-management check:
// object_engineer only qualifies when they are the engineer of the task's
// object.
func CanManageTeamScoped(role string, objectEngineerScoped bool) bool {
	switch role {
	case RoleAdmin, RoleChief, RoleLead, RoleEngineer:
		return true
	case RoleObjectEngineer:
		return objectEngineerScoped
	}
	return false
}

// CanCreateOrAssignTask decides whether actorRole may create a task assigned
// to (or reassign a task to) a user holding targetRole.
func CanCreateOrAssignTask(actorRole, targetRole string, objectEngineerScoped bool) bool {
	if actorRole == RoleAdmin {
		return true
	}
	if actorRole == RoleTech {
		return false
	}
	if actorRole == RoleObjectEngineer && !objectEngineerScoped {
		return false
	}
	return CanAssignRole(actorRole, targetRole)
}
