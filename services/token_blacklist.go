package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist marks revoked tokens in Redis until their natural expiry.
// A nil blacklist disables revocation checks.
type TokenBlacklist struct {
	client *redis.Client
	tokens *TokenManager
}

func NewTokenBlacklist(redisURL string, tokens *TokenManager) (*TokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &TokenBlacklist{client: client, tokens: tokens}, nil
}

// Revoke blacklists a token until it would have expired anyway. Tokens that
// no longer parse are ignored; revoking an expired token is a no-op.
func (tb *TokenBlacklist) Revoke(ctx context.Context, tokenString, tokenType string) error {
	if tb == nil || tokenString == "" {
		return nil
	}

	expiry := time.Now().Add(24 * time.Hour)
	if claims, err := tb.tokens.Parse(tokenString); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiry = time.Unix(int64(exp), 0)
		}
	}

	ttl := time.Until(expiry)
	if ttl <= 0 {
		return nil
	}

	key := blacklistKey(tokenType, tokenString)
	return tb.client.Set(ctx, key, "revoked", ttl).Err()
}

// IsRevoked reports whether a token has been blacklisted. Checks both key
// spaces in one round trip.
func (tb *TokenBlacklist) IsRevoked(ctx context.Context, tokenString string) bool {
	if tb == nil {
		return false
	}

	pipe := tb.client.Pipeline()
	accessCmd := pipe.Exists(ctx, blacklistKey(TokenTypeAccess, tokenString))
	refreshCmd := pipe.Exists(ctx, blacklistKey(TokenTypeRefresh, tokenString))
	if _, err := pipe.Exec(ctx); err != nil {
		return false
	}

	return accessCmd.Val() > 0 || refreshCmd.Val() > 0
}

func (tb *TokenBlacklist) Close() error {
	if tb == nil {
		return nil
	}
	return tb.client.Close()
}

func blacklistKey(tokenType, token string) string {
	return fmt.Sprintf("blacklist:%s:%s", tokenType, token)
}
