package authz

import "slices"

const (
	RoleAdmin  = "elevated-admin-role"
	RoleEditor = "elevated-editor-role"
	RoleUser   = "standard-user-role"
)

const (
	ActionCreate      = "create"
	ActionEdit        = "edit"
	ActionDelete      = "delete"
	ActionView        = "view"
	ActionSummaryView = "summary-view"
)

// Permissions maps a role name to its permitted actions. It is built once
// at startup and treated as immutable afterwards; roles the table does not
// know contribute nothing.
type Permissions map[string][]string

func DefaultPermissions() Permissions {
	return Permissions{
		RoleAdmin:  {ActionCreate, ActionEdit, ActionDelete, ActionView, ActionSummaryView},
		RoleEditor: {ActionCreate, ActionEdit, ActionView},
		RoleUser:   {ActionView, ActionCreate},
	}
}

// Has reports whether at least one of the given roles permits the action.
func (p Permissions) Has(roles []string, action string) bool {
	for _, role := range roles {
		if slices.Contains(p[role], action) {
			return true
		}
	}

	return false
}
