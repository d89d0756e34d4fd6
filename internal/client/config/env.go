package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it, which godotenv guarantees by never overwriting.
//
// Variables:
//
//	BOLETERA_BASE_URL
//	BOLETERA_DATABASE_PATH
//	BOLETERA_REQUEST_TIMEOUT (seconds)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.BaseURL = getEnv("BOLETERA_BASE_URL", cfg.BaseURL)
	cfg.DatabasePath = getEnv("BOLETERA_DATABASE_PATH", cfg.DatabasePath)

	if v := os.Getenv("BOLETERA_REQUEST_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
