package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment, loading a .env file
// first when one exists in the working directory. Env names follow the
// reference deployment: JWT_SECRET signs access tokens, JWT_REFRESH_SECRET
// signs refresh tokens.
func parseEnv(config *Config) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.AccessTokenSecret = v
	}
	if v := os.Getenv("JWT_REFRESH_SECRET"); v != "" {
		config.RefreshTokenSecret = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("REFRESH_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
}
