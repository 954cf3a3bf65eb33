package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID           string    `bson:"user_id" json:"user_id"`
	Username         string    `bson:"username" json:"username"`
	Email            string    `bson:"email" json:"email"`
	Password         string    `bson:"password" json:"-"` // argon2id salt$hash
	DisplayName      string    `bson:"display_name" json:"display_name"`
	AvatarURL        string    `bson:"avatar_url" json:"avatar_url,omitempty"`
	Bio              string    `bson:"bio" json:"bio,omitempty"`
	Role             string    `bson:"role" json:"role"`
	EmailConfirmed   bool      `bson:"email_confirmed" json:"email_confirmed"`
	TwoFactorSecret  string    `bson:"two_factor_secret" json:"-"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
	LastLoginAt      time.Time `bson:"last_login_at" json:"last_login_at,omitempty"`
	LastLoginDevice  string    `bson:"last_login_device" json:"-"`
}
