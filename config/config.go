package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Host            string
	Port            int
	RateLimitMax    int
	RateLimitWindow time.Duration
	ShutdownTimeout time.Duration
	SeedDemo        bool
}

// Load reads .env when present, then falls back to system environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: .env file not found, using system environment variables")
	}

	return Config{
		Host:            GetEnv("HOST", "0.0.0.0"),
		Port:            GetEnvAsInt("PORT", 8000),
		RateLimitMax:    GetEnvAsInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: time.Duration(GetEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		ShutdownTimeout: time.Duration(GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
		SeedDemo:        GetEnvAsBool("SEED_DEMO", false),
	}
}

// Address is the host:port pair passed to fiber.App.Listen.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(strings.TrimSpace(valueStr)); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(strings.TrimSpace(valueStr)); err == nil {
		return value
	}
	return fallback
}
