package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crest/internal/application/moderation/usecases"
	"crest/internal/domain/report"
	"crest/internal/shared/logger"
	"crest/internal/shared/utils"
)

type ReportHandler struct {
	createReportUC  usecases.CreateReportExecutor
	listReportsUC   usecases.ListReportsExecutor
	claimReportUC   usecases.ClaimReportExecutor
	resolveReportUC usecases.ResolveReportExecutor
	dismissReportUC usecases.DismissReportExecutor
	logger          logger.Interface
}

func NewReportHandler(
	createReportUC usecases.CreateReportExecutor,
	listReportsUC usecases.ListReportsExecutor,
	claimReportUC usecases.ClaimReportExecutor,
	resolveReportUC usecases.ResolveReportExecutor,
	dismissReportUC usecases.DismissReportExecutor,
) *ReportHandler {
	return &ReportHandler{
		createReportUC:  createReportUC,
		listReportsUC:   listReportsUC,
		claimReportUC:   claimReportUC,
		resolveReportUC: resolveReportUC,
		dismissReportUC: dismissReportUC,
		logger:          logger.NewLogger(),
	}
}

type CreateReportRequest struct {
	ReportedUserID uint   `json:"reported_user_id"`
	ContentID      uint   `json:"content_id"`
	ContentType    string `json:"content_type" validate:"omitempty,oneof=profile profile_pair emote wallpaper emoji_combo"`
	Reason         string `json:"reason" validate:"required,max=2000"`
	Urgent         bool   `json:"urgent"`
}

type ResolveReportRequest struct {
	ActionType    string `json:"action_type" validate:"required,oneof=warning account content"`
	Action        string `json:"action" validate:"omitempty,oneof=suspend readonly delete"`
	DurationHours int    `json:"duration_hours" validate:"omitempty,gt=0"`
	Message       string `json:"message" validate:"omitempty,max=2000"`
	Reason        string `json:"reason" validate:"required,max=2000"`
}

type DismissReportRequest struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

// CreateReport handles POST /reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create report", "error", err)
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

	result, err := h.createReportUC.Execute(c.Request.Context(), usecases.CreateReportCommand{
		ReporterUserID: actor.UserID,
		ReportedUserID: req.ReportedUserID,
		ContentID:      req.ContentID,
		ContentType:    req.ContentType,
		Reason:         req.Reason,
		Urgent:         req.Urgent,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Report, "Report filed successfully")
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	page, pageSize := parsePagination(c)
	cmd := usecases.ListReportsCommand{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("urgent"); raw != "" {
		urgent, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid urgent parameter")
			return
		}
		cmd.Urgent = &urgent
	}

	result, err := h.listReportsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reports, result.Total, result.Page, result.PageSize)
}

// ClaimReport handles POST /reports/:id/claim
func (h *ReportHandler) ClaimReport(c *gin.Context) {
	reportID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.claimReportUC.Execute(c.Request.Context(), usecases.ClaimReportCommand{
		ReportID:  reportID,
		HandlerID: actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report claimed successfully", result.Report)
}

// ResolveReport handles POST /reports/:id/resolve
func (h *ReportHandler) ResolveReport(c *gin.Context) {
	reportID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve report", "error", err)
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

	result, err := h.resolveReportUC.Execute(c.Request.Context(), usecases.ResolveReportCommand{
		ReportID:  reportID,
		HandlerID: actor.UserID,
		IsAdmin:   actor.IsAdmin,
		Action: report.ResolutionAction{
			Type:          report.ActionType(req.ActionType),
			Action:        req.Action,
			DurationHours: req.DurationHours,
			Message:       req.Message,
			Reason:        req.Reason,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report resolved successfully", result.Report)
}

// DismissReport handles POST /reports/:id/dismiss
func (h *ReportHandler) DismissReport(c *gin.Context) {
	reportID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DismissReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for dismiss report", "error", err)
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

	result, err := h.dismissReportUC.Execute(c.Request.Context(), usecases.DismissReportCommand{
		ReportID:  reportID,
		HandlerID: actor.UserID,
		IsAdmin:   actor.IsAdmin,
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report dismissed successfully", result.Report)
}
