package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crest/internal/application/ticket/usecases"
	"crest/internal/shared/logger"
	"crest/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	getTicketUC        usecases.GetTicketExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
	transferTicketUC   usecases.TransferTicketExecutor
	appendMessageUC    usecases.AppendMessageExecutor
	loadConversationUC usecases.LoadConversationExecutor
	lockTicketUC       usecases.LockTicketExecutor
	unlockTicketUC     usecases.UnlockTicketExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	transferTicketUC usecases.TransferTicketExecutor,
	appendMessageUC usecases.AppendMessageExecutor,
	loadConversationUC usecases.LoadConversationExecutor,
	lockTicketUC usecases.LockTicketExecutor,
	unlockTicketUC usecases.UnlockTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		listTicketsUC:      listTicketsUC,
		getTicketUC:        getTicketUC,
		updateTicketUC:     updateTicketUC,
		deleteTicketUC:     deleteTicketUC,
		transferTicketUC:   transferTicketUC,
		appendMessageUC:    appendMessageUC,
		loadConversationUC: loadConversationUC,
		lockTicketUC:       lockTicketUC,
		unlockTicketUC:     unlockTicketUC,
		logger:             logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required,max=200"`
	Message  string `json:"message" validate:"required,max=5000"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type UpdateTicketRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=pending reviewed resolved dismissed"`
	Priority *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type TransferTicketRequest struct {
	TargetStaffID uint `json:"target_staff_id" validate:"required"`
}

type AppendMessageRequest struct {
	Body string `json:"body" validate:"required,max=10000"`
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
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

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		UserID:   actor.UserID,
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "Ticket created successfully")
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, pageSize := parsePagination(c)
	cmd := usecases.ListTicketsCommand{
		ActorID:    actor.UserID,
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Assignment: c.Query("assignment"),
		Search:     c.Query("search"),
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Ticket)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
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

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID: ticketID,
		ActorID:  actor.UserID,
		IsAdmin:  actor.IsAdmin,
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result.Ticket)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		ActorID:  actor.UserID,
		IsAdmin:  actor.IsAdmin,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// TransferTicket handles POST /tickets/:id/transfer
func (h *TicketHandler) TransferTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransferTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for transfer ticket", "error", err)
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

	result, err := h.transferTicketUC.Execute(c.Request.Context(), usecases.TransferTicketCommand{
		TicketID:      ticketID,
		TargetStaffID: req.TargetStaffID,
		ActorID:       actor.UserID,
		IsAdmin:       actor.IsAdmin,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket transferred successfully", result.Ticket)
}

// AppendMessage handles POST /tickets/:id/messages
func (h *TicketHandler) AppendMessage(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for append message", "error", err)
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

	result, err := h.appendMessageUC.Execute(c.Request.Context(), usecases.AppendMessageCommand{
		TicketID: ticketID,
		AuthorID: actor.UserID,
		IsAdmin:  actor.IsAdmin,
		IsStaff:  actor.IsStaff,
		Body:     req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Message appended successfully", result.Entries)
}

// GetConversation handles GET /tickets/:id/messages
func (h *TicketHandler) GetConversation(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loadConversationUC.Execute(c.Request.Context(), usecases.LoadConversationCommand{
		TicketID: ticketID,
		ActorID:  actor.UserID,
		IsStaff:  actor.IsStaff,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Entries)
}

// LockTicket handles POST /tickets/:id/lock
func (h *TicketHandler) LockTicket(c *gin.Context) {
	h.changeLock(c, h.lockTicketUC, "Ticket locked successfully")
}

// UnlockTicket handles POST /tickets/:id/unlock
func (h *TicketHandler) UnlockTicket(c *gin.Context) {
	h.changeLock(c, h.unlockTicketUC, "Ticket unlocked successfully")
}

func (h *TicketHandler) changeLock(c *gin.Context, uc usecases.LockTicketExecutor, message string) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := uc.Execute(c.Request.Context(), usecases.LockTicketCommand{
		TicketID: ticketID,
		ActorID:  actor.UserID,
		IsAdmin:  actor.IsAdmin,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result.Ticket)
}
