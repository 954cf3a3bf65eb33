package dto

import "main/model"

type LoginRequest struct {
	// Username accepts either a registered username or an email address.
	Username      string `json:"username" binding:"required,min=3,max=254"`
	Password      string `json:"password" binding:"required"`
	RememberMe    bool   `json:"remember_me"`
	TwoFactorCode string `json:"two_factor_code"`
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,alphanum,min=4,max=20"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,password"`
	DisplayName string `json:"display_name" binding:"omitempty,max=50"`
}

type AuthResponse struct {
	Token   string       `json:"token"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
	Notice  string       `json:"notice,omitempty"`
}

type UserResponse struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	Bio              string `json:"bio,omitempty"`
	Role             string `json:"role"`
	EmailConfirmed   bool   `json:"email_confirmed"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		UserID:           u.UserID,
		Username:         u.Username,
		Email:            u.Email,
		DisplayName:      u.DisplayName,
		AvatarURL:        u.AvatarURL,
		Bio:              u.Bio,
		Role:             u.Role,
		EmailConfirmed:   u.EmailConfirmed,
		TwoFactorEnabled: u.TwoFactorEnabled,
	}
}
