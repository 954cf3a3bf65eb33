package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Users *usecase.UserService
}

func NewProfileHandler(users *usecase.UserService) *ProfileHandler {
	return &ProfileHandler{Users: users}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	user, err := h.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		respondGatewayError(c, err)
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	userID := c.GetString("user_id")
	user, err := h.Users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		respondGatewayError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "profile updated", dto.ToUserResponse(user))
}
