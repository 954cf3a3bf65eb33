package handler

import (
	"errors"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type TwoFactorHandler struct {
	Users  *usecase.UserService
	Issuer string
}

func NewTwoFactorHandler(users *usecase.UserService, issuer string) *TwoFactorHandler {
	return &TwoFactorHandler{Users: users, Issuer: issuer}
}

// Setup generates a TOTP secret and provisioning URL. The secret is not
// stored until the user confirms it through Enable.
func (h *TwoFactorHandler) Setup(c *gin.Context) {
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

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      h.Issuer,
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	utils.Success(c, gin.H{
		"secret": key.Secret(),
		"url":    key.URL(),
	})
}

// Enable verifies a code against the secret from Setup and turns 2FA on.
func (h *TwoFactorHandler) Enable(c *gin.Context) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

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

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	if err := h.Users.Users.SetTwoFactor(c.Request.Context(), userID, req.Secret, true); err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "2FA enabled successfully", nil)
}

// Disable requires a currently valid code before turning 2FA off.
func (h *TwoFactorHandler) Disable(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

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

	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	if err := h.Users.Users.SetTwoFactor(c.Request.Context(), userID, "", false); err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "2FA disabled", nil)
}
