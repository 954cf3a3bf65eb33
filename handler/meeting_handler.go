package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	Meetings *usecase.MeetingService
}

func NewMeetingHandler(meetings *usecase.MeetingService) *MeetingHandler {
	return &MeetingHandler{Meetings: meetings}
}

func (h *MeetingHandler) Create(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	userID := c.GetString("user_id")
	meeting, err := h.Meetings.Create(c.Request.Context(), userID, req)
	if err != nil {
		var conflict *usecase.SlotConflictError
		if errors.As(err, &conflict) {
			utils.Conflict(c, "a meeting already exists at this time",
				gin.H{"conflicting_meeting": conflict.Conflicting})
			return
		}
		respondGatewayError(c, err)
		return
	}

	utils.Created(c, "meeting created", meeting)
}

func (h *MeetingHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	meetings, err := h.Meetings.List(c.Request.Context(), userID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.Success(c, gin.H{"meetings": meetings})
}

func (h *MeetingHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	meeting, err := h.Meetings.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrMeetingNotFound) {
			utils.NotFound(c, "meeting not found")
			return
		}
		respondGatewayError(c, err)
		return
	}

	utils.Success(c, meeting)
}

func (h *MeetingHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	userID := c.GetString("user_id")
	meeting, err := h.Meetings.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		var conflict *usecase.SlotConflictError
		switch {
		case errors.Is(err, usecase.ErrMeetingNotFound):
			utils.NotFound(c, "meeting not found")
		case errors.As(err, &conflict):
			utils.Conflict(c, "a meeting already exists at this time",
				gin.H{"conflicting_meeting": conflict.Conflicting})
		default:
			respondGatewayError(c, err)
		}
		return
	}

	utils.SuccessWithMessage(c, "meeting updated", meeting)
}

func (h *MeetingHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.Meetings.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrMeetingNotFound) {
			utils.NotFound(c, "meeting not found")
			return
		}
		respondGatewayError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "meeting deleted", nil)
}

func (h *MeetingHandler) Upcoming(c *gin.Context) {
	var query dto.UpcomingMeetingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}
	query.Normalize()

	userID := c.GetString("user_id")
	meetings, err := h.Meetings.Upcoming(c.Request.Context(), userID, query.Hours, query.Limit)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.Success(c, gin.H{"meetings": meetings})
}
