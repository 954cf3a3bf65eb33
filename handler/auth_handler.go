package handler

import (
	"errors"
	"log"
	"strings"

	"main/dto"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type AuthHandler struct {
	Users     *usecase.UserService
	Tokens    *services.TokenManager
	Blacklist *services.TokenBlacklist
}

func NewAuthHandler(users *usecase.UserService, tokens *services.TokenManager, blacklist *services.TokenBlacklist) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Blacklist: blacklist}
}

// Login accepts either an email or a bare username in the username field; a
// bare username is resolved by lookup before the password check.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.TrackAuthAttempt("failure", "login")
			utils.Unauthorized(c, "Invalid username or password")
			return
		}
		respondGatewayError(c, err)
		return
	}

	if user.TwoFactorEnabled {
		if req.TwoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa_required")
			utils.Success(c, gin.H{
				"requires_2fa": true,
				"user_id":      user.UserID,
			})
			return
		}
		if !totp.Validate(req.TwoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "2fa")
			utils.Unauthorized(c, "Invalid 2FA code")
			return
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	token, err := h.Tokens.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	utils.TokenUsage.WithLabelValues("access", "generated").Inc()

	refreshToken, err := h.Tokens.GenerateRefreshToken(user.UserID, req.RememberMe)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}
	utils.TokenUsage.WithLabelValues("refresh", "generated").Inc()

	h.Users.RecordLogin(c.Request.Context(), user.UserID, utils.DescribeDevice(c.Request.UserAgent()))

	utils.TrackAuthAttempt("success", "login")
	utils.SuccessWithMessage(c, "Login successful", dto.AuthResponse{
		Token:   token,
		Refresh: refreshToken,
		User:    dto.ToUserResponse(user),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			utils.Conflict(c, "username already exists")
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.Conflict(c, "email already registered")
		default:
			respondGatewayError(c, err)
		}
		return
	}

	token, err := h.Tokens.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := h.Tokens.GenerateRefreshToken(user.UserID, false)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.Created(c, "user registered successfully", dto.AuthResponse{
		Token:   token,
		Refresh: refreshToken,
		User:    dto.ToUserResponse(user),
	})
}

// Refresh exchanges a valid refresh token for a new access/refresh pair and
// revokes the old refresh token. A revoked or expired refresh token is
// terminal; the client must log in again.
func (h *AuthHandler) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid refresh token")
		return
	}
	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	if h.Blacklist.IsRevoked(c.Request.Context(), refreshToken) {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Refresh token has been revoked")
		return
	}

	claims, err := h.Tokens.ParseOfType(refreshToken, services.TokenTypeRefresh)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	user, err := h.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Unknown user")
		return
	}

	newAccessToken, err := h.Tokens.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	newRefreshToken, err := h.Tokens.GenerateRefreshToken(user.UserID, false)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := h.Blacklist.Revoke(c.Request.Context(), refreshToken, services.TokenTypeRefresh); err != nil {
		log.Printf("failed to revoke rotated refresh token: %v", err)
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   newAccessToken,
		"refresh": newRefreshToken,
	})
}

// Logout always reports success so the client clears its local credential
// state unconditionally, whatever happens to the revocation writes.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")
		if err := h.Blacklist.Revoke(ctx, accessToken, services.TokenTypeAccess); err != nil {
			log.Printf("logout: failed to revoke access token: %v", err)
		} else {
			utils.TokenUsage.WithLabelValues("access", "revoked").Inc()
		}
	}

	if refreshToken := c.GetHeader("Refresh-Token"); refreshToken != "" {
		if err := h.Blacklist.Revoke(ctx, refreshToken, services.TokenTypeRefresh); err != nil {
			log.Printf("logout: failed to revoke refresh token: %v", err)
		} else {
			utils.TokenUsage.WithLabelValues("refresh", "revoked").Inc()
		}
	}

	utils.SuccessWithMessage(c, "Successfully logged out", nil)
}
