package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the portal needs from the environment.
type Config struct {
	Port        string
	Environment string

	// APIBaseURL is the origin of the WasteWise backend. Every piece of
	// persistent state lives behind it; the portal only caches.
	APIBaseURL string

	SessionSecret string
	SessionTTL    time.Duration

	LogFile  string
	LogLevel string
}

// Load reads .env (if present) and the environment into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	ttlHours, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "72"))

	return &Config{
		Port:          getEnv("APP_PORT", "3000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		APIBaseURL:    getEnv("WASTEWISE_API_URL", "http://localhost:8090"),
		SessionSecret: getEnv("SESSION_SECRET", "supersecret"),
		SessionTTL:    time.Duration(ttlHours) * time.Hour,
		LogFile:       getEnv("LOG_FILE", "./logs/portal.log"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
