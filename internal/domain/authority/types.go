package authority

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Authority levels are used only by the management-hierarchy check,
// never for permission lookup.
const (
	levelAdmin    = 3
	levelManager  = 2
	levelEmployee = 1
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// Level returns the role's authority level, or 0 for an unknown role.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return levelAdmin
	case RoleManager:
		return levelManager
	case RoleEmployee:
		return levelEmployee
	default:
		return 0
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
