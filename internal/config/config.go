package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	AppEnv     string
	ServerPort string

	// CacheBackend selects the resolver's local cache tier: "memory" keeps
	// per-process go-cache, "redis" shares entries across instances.
	CacheBackend    string
	CacheTTLSeconds int

	// SheetsBaseURL overrides the Google Sheets API endpoint (tests, proxies).
	SheetsBaseURL string

	// SeedBootstrapFaculties creates the FIE/FRN faculties on startup when
	// they are absent from the store.
	SeedBootstrapFaculties bool
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		ServerPort:             getEnv("SERVER_PORT", "4000"),
		CacheBackend:           getEnv("CACHE_BACKEND", "memory"),
		CacheTTLSeconds:        getEnvInt("CACHE_TTL_SECONDS", 300),
		SheetsBaseURL:          getEnv("SHEETS_BASE_URL", ""),
		SeedBootstrapFaculties: getEnvBool("SEED_BOOTSTRAP_FACULTIES", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
