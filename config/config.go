package config

import (
	"time"

	"main/utils"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port           string
	MaxRequestSize int64
	RateLimitRPS   float64
	RateLimitBurst int
}

type AuthConfig struct {
	JWTSecret        string
	Issuer           string
	AccessDuration   time.Duration
	RefreshDuration  time.Duration
	RememberDuration time.Duration
	AdminAccessKey   string
}

type RedisConfig struct {
	URL string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           utils.GetEnvAsString("PORT", "8080"),
			MaxRequestSize: int64(utils.GetEnvAsInt("MAX_REQUEST_SIZE", 1<<20)),
			RateLimitRPS:   float64(utils.GetEnvAsInt("AUTH_RATE_LIMIT_RPS", 5)),
			RateLimitBurst: utils.GetEnvAsInt("AUTH_RATE_LIMIT_BURST", 10),
		},
		Auth: AuthConfig{
			JWTSecret:        utils.GetEnvAsString("JWT_SECRET_KEY", ""),
			Issuer:           utils.GetEnvAsString("JWT_ISSUER", "tomodoro"),
			AccessDuration:   utils.GetEnvAsDuration("JWT_EXPIRATION", 15*time.Minute),
			RefreshDuration:  utils.GetEnvAsDuration("REFRESH_TOKEN_EXPIRATION", 7*24*time.Hour),
			RememberDuration: utils.GetEnvAsDuration("REMEMBER_ME_EXPIRATION", 30*24*time.Hour),
			AdminAccessKey:   utils.GetEnvAsString("ADMIN_ACCESS_KEY", ""),
		},
		Database: LoadDatabaseConfig(),
		Redis: RedisConfig{
			URL: utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		},
	}
}
