package rbac

import "testing"

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role          string
		manageUsers   bool
		manageObjects bool
		viewAudit     bool
		editTasks     bool
		manageTeam    bool
	}{
		{RoleAdmin, true, true, true, true, true},
		{RoleChief, true, true, true, true, true},
		{RoleLead, false, false, false, true, true},
		{RoleEngineer, false, false, false, true, true},
		{RoleObjectEngineer, false, false, false, true, true},
		{RoleTech, false, false, false, false, false},
		{"unknown", false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := CanManageUsers(tt.role); got != tt.manageUsers {
				t.Errorf("CanManageUsers(%q) = %v, want %v", tt.role, got, tt.manageUsers)
			}
			if got := CanManageObjects(tt.role); got != tt.manageObjects {
				t.Errorf("CanManageObjects(%q) = %v, want %v", tt.role, got, tt.manageObjects)
			}
			if got := CanViewAudit(tt.role); got != tt.viewAudit {
				t.Errorf("CanViewAudit(%q) = %v, want %v", tt.role, got, tt.viewAudit)
			}
			if got := CanEditTasks(tt.role); got != tt.editTasks {
				t.Errorf("CanEditTasks(%q) = %v, want %v", tt.role, got, tt.editTasks)
			}
			if got := CanManageTaskTeam(tt.role); got != tt.manageTeam {
				t.Errorf("CanManageTaskTeam(%q) = %v, want %v", tt.role, got, tt.manageTeam)
			}
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	tests := []struct {
		assigner string
		target   string
		expected bool
	}{
		// Admin assigns anyone, including other admins.
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleChief, true},
		{RoleAdmin, RoleTech, true},

		{RoleChief, RoleLead, true},
		{RoleChief, RoleEngineer, true},
		{RoleChief, RoleObjectEngineer, true},
		{RoleChief, RoleTech, true},
		{RoleChief, RoleAdmin, false},
		{RoleChief, RoleChief, false},

		{RoleLead, RoleEngineer, true},
		{RoleLead, RoleObjectEngineer, true},
		{RoleLead, RoleTech, true},
		{RoleLead, RoleLead, false},
		{RoleLead, RoleChief, false},

		{RoleEngineer, RoleEngineer, true},
		{RoleEngineer, RoleObjectEngineer, true},
		{RoleEngineer, RoleTech, true},
		{RoleEngineer, RoleLead, false},

		// Object engineer may assign upward to a lead.
		{RoleObjectEngineer, RoleLead, true},
		{RoleObjectEngineer, RoleEngineer, true},
		{RoleObjectEngineer, RoleObjectEngineer, true},
		{RoleObjectEngineer, RoleTech, true},
		{RoleObjectEngineer, RoleChief, false},

		{RoleTech, RoleTech, false},
		{RoleTech, RoleEngineer, false},

		{"unknown", RoleTech, false},
	}

	for _, tt := range tests {
		t.Run(tt.assigner+"->"+tt.target, func(t *testing.T) {
			if got := CanAssignRole(tt.assigner, tt.target); got != tt.expected {
				t.Errorf("CanAssignRole(%q, %q) = %v, want %v", tt.assigner, tt.target, got, tt.expected)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = false", r)
		}
	}
	if IsValidRole("owner") {
		t.Error("IsValidRole accepted unknown role")
	}
}
