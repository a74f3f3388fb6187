package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"crest/internal/shared/auth"
	"crest/internal/shared/constants"
	"crest/internal/shared/errors"
)

// actorContext is the authenticated caller's identity as stored by the
// auth middleware.
type actorContext struct {
	UserID  uint
	Role    string
	IsAdmin bool
	IsStaff bool
}

func getActor(c *gin.Context) (actorContext, error) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return actorContext{}, errors.NewUnauthorizedError("user not authenticated")
	}
	userID, ok := rawID.(uint)
	if !ok {
		return actorContext{}, errors.NewInternalError("invalid user identity in context")
	}

	role := c.GetString(constants.ContextKeyUserRole)
	return actorContext{
		UserID:  userID,
		Role:    role,
		IsAdmin: auth.IsAdmin(role),
		IsStaff: auth.IsStaff(role),
	}, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
