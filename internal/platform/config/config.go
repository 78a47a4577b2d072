package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr string

	LogFile string

	// MaxActiveBookings caps paid bookings per user.
	MaxActiveBookings int
	// LockTTL bounds how long a reservation lock may outlive its holder.
	LockTTL time.Duration
}

// Load reads configuration from a .env file when present, then from the
// environment, with working defaults for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "event_booking"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		LogFile:           getEnv("LOG_FILE", ""),
		MaxActiveBookings: getEnvInt("MAX_ACTIVE_BOOKINGS", 5),
		LockTTL:           time.Duration(getEnvInt("RESERVATION_LOCK_TTL_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
