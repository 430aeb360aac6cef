package authority

// Authority answers "may this role do X" against a static permission table.
// Checks are fail-closed: an unknown role or permission is simply denied,
// never an error, so a permission gate can not be bypassed by provoking a
// failure. The table is read-only after construction, so an Authority is
// safe for unrestricted concurrent use.
type Authority struct {
	table Table
}

func New(table Table) *Authority {
	return &Authority{table: table}
}

// NewDefault builds an Authority over the current storefront policy table.
func NewDefault() *Authority {
	return New(DefaultTable())
}

func (a *Authority) HasPermission(role Role, perm Permission) bool {
	set, ok := a.table[role]
	if !ok {
		return false
	}
	return set.Contains(perm)
}

func (a *Authority) HasAnyPermission(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if a.HasPermission(role, p) {
			return true
		}
	}
	return false
}

func (a *Authority) HasAllPermissions(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if !a.HasPermission(role, p) {
			return false
		}
	}
	return true
}

// RolePermissions returns the role's full permission set, empty for an
// unknown role.
func (a *Authority) RolePermissions(role Role) []Permission {
	set, ok := a.table[role]
	if !ok {
		return []Permission{}
	}
	return set.List()
}

// CanManageUser reports whether actor may manage an account holding target.
// Only admin manages anyone, and only roles strictly below admin's level.
// This is intentionally an explicit actor branch rather than a generic
// level comparison: manager must not manage employee under current policy.
func (a *Authority) CanManageUser(actor, target Role) bool {
	if actor != RoleAdmin {
		return false
	}
	if !target.IsValid() {
		return false
	}
	return target.Level() < RoleAdmin.Level()
}
