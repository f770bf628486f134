package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	Env            string
	IsProduction   bool
	ProdOrigins    string
	HTTPAddr       string
	RateAPIURL     string
	RateAPITimeout time.Duration
	BaseCurrency   string
	CatalogFile    string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	cfg.Env = getEnv("APP_ENV", "dev")
	cfg.IsProduction = cfg.Env == prodString

	// Allowed origins in production (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// External exchange-rate source
	cfg.RateAPIURL = getEnv("RATE_API_URL", "https://api.frankfurter.dev/v1")

	// Timeout for rate source calls, parse as time.Duration (e.g. "5s")
	timeoutStr := getEnv("RATE_API_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_API_TIMEOUT: %w", err)
	}
	cfg.RateAPITimeout = timeout

	// Currency the catalog prices are denominated in
	cfg.BaseCurrency = getEnv("BASE_CURRENCY", "USD")

	// Optional catalog JSON file; empty means the embedded seed
	cfg.CatalogFile = getEnv("CATALOG_FILE", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
