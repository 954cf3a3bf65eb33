package services

import (
	"errors"
	"fmt"
	"time"

	"main/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies the HMAC-signed access and refresh tokens.
// Constructed once at startup and injected wherever tokens are handled.
type TokenManager struct {
	secret           []byte
	issuer           string
	accessDuration   time.Duration
	refreshDuration  time.Duration
	rememberDuration time.Duration
}

func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		secret:           []byte(cfg.JWTSecret),
		issuer:           cfg.Issuer,
		accessDuration:   cfg.AccessDuration,
		refreshDuration:  cfg.RefreshDuration,
		rememberDuration: cfg.RememberDuration,
	}
}

func (m *TokenManager) GenerateAccessToken(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"type":    TokenTypeAccess,
		"iss":     m.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(m.accessDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// GenerateRefreshToken issues the long-lived secondary credential. rememberMe
// extends its lifetime.
func (m *TokenManager) GenerateRefreshToken(userID string, rememberMe bool) (string, error) {
	duration := m.refreshDuration
	if rememberMe {
		duration = m.rememberDuration
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    TokenTypeRefresh,
		"iss":     m.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies signature, issuer and expiry and returns the claims.
func (m *TokenManager) Parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ParseOfType parses and additionally checks the type claim.
func (m *TokenManager) ParseOfType(tokenString, tokenType string) (jwt.MapClaims, error) {
	claims, err := m.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims["type"] != tokenType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
