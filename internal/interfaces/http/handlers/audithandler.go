package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crest/internal/application/audit/usecases"
	"crest/internal/shared/logger"
	"crest/internal/shared/utils"
)

type AuditHandler struct {
	listAuditLogUC usecases.ListAuditLogExecutor
	logger         logger.Interface
}

func NewAuditHandler(listAuditLogUC usecases.ListAuditLogExecutor) *AuditHandler {
	return &AuditHandler{
		listAuditLogUC: listAuditLogUC,
		logger:         logger.NewLogger(),
	}
}

// ListAuditLog handles GET /audit
func (h *AuditHandler) ListAuditLog(c *gin.Context) {
	page, pageSize := parsePagination(c)
	cmd := usecases.ListAuditLogCommand{
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("actor_id"); raw != "" {
		actorID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid actor_id parameter")
			return
		}
		id := uint(actorID)
		cmd.ActorID = &id
	}

	result, err := h.listAuditLogUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, result.Page, result.PageSize)
}
