package rbac

// Role constants, broadest to narrowest.
const (
	RoleAdmin          = "admin"
	RoleChief          = "chief"
	RoleLead           = "lead"
	RoleEngineer       = "engineer"
	RoleObjectEngineer = "object_engineer"
	RoleTech           = "tech"
)

var AllRoles = []string{RoleAdmin, RoleChief, RoleLead, RoleEngineer, RoleObjectEngineer, RoleTech}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Capability checks below are total functions of role alone, so they can gate
// UI affordances cheaply. Task- and object-scoped decisions layer on top in
// access.go.

func CanManageUsers(role string) bool {
	return role == RoleAdmin || role == RoleChief
}

func CanManageObjects(role string) bool {
	return role == RoleAdmin || role == RoleChief
}

func CanViewAudit(role string) bool {
	return role == RoleAdmin || role == RoleChief
}

// CanEditTasks reports whether the role may author new tasks.
func CanEditTasks(role string) bool {
	switch role {
	case RoleAdmin, RoleChief, RoleLead, RoleEngineer, RoleObjectEngineer:
		return true
	}
	return false
}

// CanManageTaskTeam is the structural capability; the object-scoped variant
// for object_engineer lives in access.go.
func CanManageTaskTeam(role string) bool {
	switch role {
	case RoleAdmin, RoleChief, RoleLead, RoleEngineer, RoleObjectEngineer:
		return true
	}
	return false
}

func IsSuperuser(role string) bool {
	return role == RoleAdmin
}

// assignableRoles defines the strict assignment hierarchy: which target roles
// each role may hand a task to.
var assignableRoles = map[string][]string{
	RoleChief:          {RoleLead, RoleEngineer, RoleObjectEngineer, RoleTech},
	RoleLead:           {RoleEngineer, RoleObjectEngineer, RoleTech},
	RoleEngineer:       {RoleEngineer, RoleObjectEngineer, RoleTech},
	RoleObjectEngineer: {RoleLead, RoleEngineer, RoleObjectEngineer, RoleTech},
}

// CanAssignRole reports whether assignerRole may assign work to targetRole.
// Admin assigns anyone; tech assigns no one.
func CanAssignRole(assignerRole, targetRole string) bool {
	if assignerRole == RoleAdmin {
		return true
	}
	for _, r := range assignableRoles[assignerRole] {
		if r == targetRole {
			return true
		}
	}
	return false
}
