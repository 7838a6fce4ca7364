package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no safe default: startup fails when it is absent.
	JWTSecret       string `env:"JWT_SECRET, required"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=60"`
	BcryptCost      int    `env:"BCRYPT_COST, default=10"`

	Mongo     MongoConfig
	Redis     RedisConfig
	SeedAdmin SeedAdminConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=drive_time"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// SeedAdminConfig controls the one-time admin bootstrap. An empty password
// disables seeding.
type SeedAdminConfig struct {
	Username string `env:"SEED_ADMIN_USERNAME, default=admin"`
	Password string `env:"SEED_ADMIN_PASSWORD"`
}

// RateLimitConfig bounds login attempts per client IP.
type RateLimitConfig struct {
	LoginPerMinute int `env:"LOGIN_RATE_LIMIT_PER_MINUTE, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
