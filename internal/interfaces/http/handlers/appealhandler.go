package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crest/internal/application/appeal/usecases"
	"crest/internal/shared/logger"
	"crest/internal/shared/utils"
)

type AppealHandler struct {
	submitAppealUC usecases.SubmitAppealExecutor
	listAppealsUC  usecases.ListAppealsExecutor
	decideAppealUC usecases.DecideAppealExecutor
	logger         logger.Interface
}

func NewAppealHandler(
	submitAppealUC usecases.SubmitAppealExecutor,
	listAppealsUC usecases.ListAppealsExecutor,
	decideAppealUC usecases.DecideAppealExecutor,
) *AppealHandler {
	return &AppealHandler{
		submitAppealUC: submitAppealUC,
		listAppealsUC:  listAppealsUC,
		decideAppealUC: decideAppealUC,
		logger:         logger.NewLogger(),
	}
}

type SubmitAppealRequest struct {
	Message string `json:"message" validate:"required,max=5000"`
}

type DecideAppealRequest struct {
	Accept bool   `json:"accept"`
	Note   string `json:"note" validate:"omitempty,max=2000"`
}

// SubmitAppeal handles POST /appeals
func (h *AppealHandler) SubmitAppeal(c *gin.Context) {
	var req SubmitAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit appeal", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitAppealUC.Execute(c.Request.Context(), usecases.SubmitAppealCommand{
		UserID:  actor.UserID,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Appeal, "Appeal submitted successfully")
}

// ListAppeals handles GET /appeals
func (h *AppealHandler) ListAppeals(c *gin.Context) {
	page, pageSize := parsePagination(c)

	result, err := h.listAppealsUC.Execute(c.Request.Context(), usecases.ListAppealsCommand{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Appeals, result.Total, result.Page, result.PageSize)
}

// DecideAppeal handles POST /appeals/:id/decide
func (h *AppealHandler) DecideAppeal(c *gin.Context) {
	appealID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DecideAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for decide appeal", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.decideAppealUC.Execute(c.Request.Context(), usecases.DecideAppealCommand{
		AppealID:   appealID,
		ReviewerID: actor.UserID,
		Accept:     req.Accept,
		Note:       req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Appeal decided successfully", result.Appeal)
}
