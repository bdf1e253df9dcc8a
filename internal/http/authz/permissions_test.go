package authz

import "testing"

func TestPermissionsHas(t *testing.T) {
	perms := DefaultPermissions()

	testCases := []struct {
		name     string
		roles    []string
		action   string
		expected bool
	}{
		{"admin can delete", []string{RoleAdmin}, ActionDelete, true},
		{"admin can view summary", []string{RoleAdmin}, ActionSummaryView, true},
		{"editor can edit", []string{RoleEditor}, ActionEdit, true},
		{"editor cannot delete", []string{RoleEditor}, ActionDelete, false},
		{"editor cannot view summary", []string{RoleEditor}, ActionSummaryView, false},
		{"user can create", []string{RoleUser}, ActionCreate, true},
		{"user cannot edit", []string{RoleUser}, ActionEdit, false},
		{"user cannot delete", []string{RoleUser}, ActionDelete, false},
		{"any role grants", []string{RoleUser, RoleAdmin}, ActionDelete, true},
		{"unknown role contributes nothing", []string{"made-up-role"}, ActionView, false},
		{"unknown role alongside known", []string{"made-up-role", RoleUser}, ActionView, true},
		{"empty role set", nil, ActionView, false},
		{"unknown action", []string{RoleAdmin}, "rotate-logs", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := perms.Has(tc.roles, tc.action); got != tc.expected {
				t.Errorf("Has(%v, %q) = %v, expected %v", tc.roles, tc.action, got, tc.expected)
			}
		})
	}
}

func TestPermissionsHasUnknownRolesNoPanic(t *testing.T) {
	perms := Permissions{}

	if perms.Has([]string{RoleAdmin}, ActionView) {
		t.Error("empty table should permit nothing")
	}
}
