// Package config loads the process configuration from the environment,
// with a .env file honored in development.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port        string
	RedisAddr   string
	RedisDB     int
	JWTSecret   string
	CORSOrigins []string
	// TranscribeDelay simulates transcription engine latency. Purely
	// cosmetic; zero disables it.
	TranscribeDelay time.Duration
	// SeedDemoData loads the reference FIRs and accounts at startup.
	SeedDemoData bool
}

// Load reads the configuration. A missing .env file is fine in
// production, where real environment variables are used.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		JWTSecret:       getEnv("JWT_SECRET", "dev-only-secret"),
		CORSOrigins:     []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
		TranscribeDelay: time.Duration(getEnvAsInt("TRANSCRIBE_DELAY_MS", 0)) * time.Millisecond,
		SeedDemoData:    getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: invalid integer for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
