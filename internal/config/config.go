// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"PRONIM_DB_PATH" envDefault:"./data/pronim.db"`
	JWTSecret  string `env:"PRONIM_JWT_SECRET,required"`
	ServerHost string `env:"PRONIM_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"PRONIM_SERVER_PORT" envDefault:"3000"`
	Env        string `env:"PRONIM_ENV" envDefault:"development"`
	LogLevel   string `env:"PRONIM_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"PRONIM_UPLOADS_DIR" envDefault:"./uploads"`

	// Token lifetime in minutes for admin bearer tokens.
	TokenTTL int `env:"PRONIM_TOKEN_TTL" envDefault:"60"`

	// Bootstrap admin account, created on first start if no user exists.
	AdminUsername string `env:"PRONIM_ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"PRONIM_ADMIN_EMAIL" envDefault:"admin@pronim.al"`
	AdminPassword string `env:"PRONIM_ADMIN_PASSWORD"`

	// Cache configuration
	RedisURL     string `env:"PRONIM_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"PRONIM_CACHE_PREFIX" envDefault:"pronim:"` // Redis key prefix
	CacheTTL     int    `env:"PRONIM_CACHE_TTL" envDefault:"300"`        // Default cache TTL in seconds
	CacheMaxSize int    `env:"PRONIM_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// GeoIP configuration
	GeoIPDBPath string `env:"PRONIM_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file

	// Seeding configuration
	DoSeed bool `env:"PRONIM_DO_SEED" envDefault:"false"` // Enable demo collection seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// GeoIPEnabled returns true if GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// MinJWTSecretLength is the minimum required length for the token signing key.
const MinJWTSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("PRONIM_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("PRONIM_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.JWTSecret) {
		slog.Warn("PRONIM_JWT_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
