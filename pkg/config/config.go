package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// Storage boundary for the order history. Backend is one of
	// "file", "redis" or "memory".
	StorageBackend string
	StorageFile    string
	RedisAddr      string

	// Gemini credentials. An empty key disables the AI features:
	// descriptions fall back to a fixed message, recommendations error out.
	GeminiAPIKey string
	GeminiModel  string

	// Simulated payment-processing delay during checkout.
	CheckoutDelay time.Duration
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StorageFile:    getEnv("STORAGE_FILE", "vibevapes.json"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		CheckoutDelay: time.Duration(getEnvInt("CHECKOUT_DELAY_MS", 2500)) * time.Millisecond,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
