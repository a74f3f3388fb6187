package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crest/internal/infrastructure/permission"
	"crest/internal/shared/auth"
	"crest/internal/shared/constants"
	"crest/internal/shared/logger"
	"crest/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, log logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   log,
	}
}

// RequirePermission checks the authenticated caller against the
// capability policy for the given resource/action pair.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := identity(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Can(userID, role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireStaff restricts a route to the back-office audience.
func (m *PermissionMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := identity(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		if !auth.IsStaff(role) {
			utils.ErrorResponse(c, http.StatusForbidden, "staff role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin restricts a route to administrators.
func (m *PermissionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := identity(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		if !auth.IsAdmin(role) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

func identity(c *gin.Context) (uint, string, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, "", false
	}
	userID, ok := rawID.(uint)
	if !ok {
		return 0, "", false
	}
	role := c.GetString(constants.ContextKeyUserRole)
	return userID, role, true
}
