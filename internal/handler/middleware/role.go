package middleware

import (
	"net/http"

	"storefront-console/internal/domain/authority"
	"storefront-console/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RoleHeader is set by the gateway after it authenticates the operator.
	// This service trusts it and only decides what the role may do.
	RoleHeader = "X-Admin-Role"

	// CustomerHeader identifies the storefront customer on checkout calls.
	CustomerHeader = "X-Customer-ID"

	roleContextKey = "admin_role"
)

type RoleMiddleware struct {
	auth *authority.Authority
}

func NewRoleMiddleware(auth *authority.Authority) *RoleMiddleware {
	return &RoleMiddleware{auth: auth}
}

// RequireRole resolves the gateway role header and fails closed: a missing
// header is unauthenticated, an unknown role is denied.
func (m *RoleMiddleware) RequireRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(RoleHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
			return
		}

		role, err := authority.NewRole(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown role", nil)
			return
		}

		c.Set(roleContextKey, role)
		c.Next()
	}
}

// RequirePermission gates a route group on a single permission.
func (m *RoleMiddleware) RequirePermission(perm authority.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
			return
		}
		if !m.auth.HasPermission(role, perm) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Permission denied", nil)
			return
		}
		c.Next()
	}
}

func GetRole(c *gin.Context) (authority.Role, bool) {
	v, exists := c.Get(roleContextKey)
	if !exists {
		return "", false
	}
	role, ok := v.(authority.Role)
	return role, ok
}

// ResolveCustomerID reads the optional customer header. Absent or malformed
// values resolve to uuid.Nil, which downstream treats as anonymous.
func ResolveCustomerID(c *gin.Context) uuid.UUID {
	raw := c.GetHeader(CustomerHeader)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
