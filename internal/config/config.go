// Package config loads application configuration from environment variables.
// The database location is a single injected value (DB_PATH) resolved once at
// startup; there is deliberately no filesystem path guessing here.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. The store is a read-only SQLite file produced by the
// csv2sqlite loader, so only its path is needed.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBPath string // filesystem path of the SQLite database file
}

// Load reads configuration values from environment variables and returns a
// Config. APP_ENV and APP_PORT fall back to sensible defaults so the server
// can run from a bare shell; DB_PATH is required because there is no safe
// default location for reference data.
func Load() Config {
	return Config{
		Env:    getenv("APP_ENV", "dev"),
		Port:   getenv("APP_PORT", "5005"),
		DBPath: must("DB_PATH"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
