package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type FocusSessionHandler struct {
	Focus *usecase.FocusService
}

func NewFocusSessionHandler(focus *usecase.FocusService) *FocusSessionHandler {
	return &FocusSessionHandler{Focus: focus}
}

func (h *FocusSessionHandler) Create(c *gin.Context) {
	var req dto.CreateFocusSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	userID := c.GetString("user_id")
	session, err := h.Focus.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrActiveSessionExists):
			utils.Conflict(c, "an active session already exists")
		case errors.Is(err, usecase.ErrBadScheduledTime):
			utils.BadRequest(c, "scheduled_time must be RFC3339")
		default:
			respondGatewayError(c, err)
		}
		return
	}

	utils.Created(c, "session created", session)
}

func (h *FocusSessionHandler) List(c *gin.Context) {
	var query dto.FocusSessionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}
	query.Normalize()

	userID := c.GetString("user_id")
	sessions, total, err := h.Focus.List(c.Request.Context(), userID, query)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.Paginated(c, gin.H{"sessions": sessions},
		utils.NewPagination(query.Page, query.Limit, total))
}

func (h *FocusSessionHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	session, err := h.Focus.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			utils.NotFound(c, "session not found")
			return
		}
		respondGatewayError(c, err)
		return
	}

	utils.Success(c, session)
}

func (h *FocusSessionHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateSessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	userID := c.GetString("user_id")
	session, err := h.Focus.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			utils.NotFound(c, "session not found")
		case errors.Is(err, usecase.ErrInvalidTransition):
			utils.Conflict(c, "session is already finished")
		default:
			respondGatewayError(c, err)
		}
		return
	}

	utils.SuccessWithMessage(c, "session updated", session)
}
