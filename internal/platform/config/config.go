// Package config loads service configuration from environment variables.
package config

import (
	"errors"
	"os"
	"time"

	"todo_backend/internal/platform/db"
)

// DefaultTokenTTL はアクセストークンの有効期限です。
const DefaultTokenTTL = 20 * time.Minute

// Config holds the service settings resolved at startup.
type Config struct {
	// JWTSecret is the shared HMAC signing key. Required.
	JWTSecret string
	// JWTAlgorithm is the HMAC signing method name (HS256/HS384/HS512).
	JWTAlgorithm string
	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration

	// DB holds the database connection settings.
	DB db.Config
	// RedisAddr is the host:port of the Redis server.
	RedisAddr string
	// RedisPassword is the Redis auth password, empty when auth is disabled.
	RedisPassword string
}

// Load reads settings from the environment.
// JWT_SECRETは必須。JWT_ALGORITHMは省略時HS256。
func Load() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}

	algorithm := os.Getenv("JWT_ALGORITHM")
	if algorithm == "" {
		algorithm = "HS256"
	}

	return Config{
		JWTSecret:     secret,
		JWTAlgorithm:  algorithm,
		TokenTTL:      DefaultTokenTTL,
		DB:            db.LoadConfig(),
		RedisAddr:     os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}, nil
}
