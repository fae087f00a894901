package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// Keys used to store the authenticated user's identity in the request
// context. The acting user always flows through context; there is no
// global current-user state.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context, checking the underlying request context as well.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetUserRoleFromContext retrieves the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	if v := c.Request.Context().Value(userRoleKey); v != nil {
		if role, ok := v.(domain.UserRole); ok {
			return role, true
		}
	}
	return "", false
}

// WithUser returns a context carrying the acting user's ID and role.
// Used by the auth middleware and by tests that exercise services directly.
func WithUser(ctx context.Context, userID string, role domain.UserRole) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}
