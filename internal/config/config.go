// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	DBPath         string
	AllowedOrigins []string
	SeedDefaults   bool
	LogLevel       slog.Level
	LogFormat      string
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: PASSVAULT_LISTEN_ADDR (127.0.0.1:8000),
// PASSVAULT_DB_PATH (passwords.db), PASSVAULT_ALLOWED_ORIGINS
// (http://localhost:5173,http://localhost:3000), PASSVAULT_SEED_DEFAULTS (true),
// PASSVAULT_LOG_LEVEL (info), PASSVAULT_LOG_FORMAT (text).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8000"
	if v, ok := os.LookupEnv("PASSVAULT_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	dbPath := "passwords.db"
	if v, ok := os.LookupEnv("PASSVAULT_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	originsRaw := "http://localhost:5173,http://localhost:3000"
	if v, ok := os.LookupEnv("PASSVAULT_ALLOWED_ORIGINS"); ok {
		originsRaw = v
	}

	seedDefaults := true
	if v, ok := os.LookupEnv("PASSVAULT_SEED_DEFAULTS"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("PASSVAULT_SEED_DEFAULTS has invalid boolean %q: %w", v, err)
		}
		seedDefaults = parsed
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("PASSVAULT_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("PASSVAULT_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	logFormat := "text"
	if v, ok := os.LookupEnv("PASSVAULT_LOG_FORMAT"); ok && v != "" {
		logFormat = strings.ToLower(v)
		if logFormat != "text" && logFormat != "json" {
			return nil, fmt.Errorf("PASSVAULT_LOG_FORMAT must be text or json, got %q", v)
		}
	}

	return &Config{
		ListenAddr:     listenAddr,
		DBPath:         dbPath,
		AllowedOrigins: parseOrigins(originsRaw),
		SeedDefaults:   seedDefaults,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	}, nil
}

// NewLogger builds the process logger described by the config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseOrigins splits a comma-separated origin list, dropping blanks and
// trailing slashes. Returns an empty, non-nil slice when nothing remains.
func parseOrigins(raw string) []string {
	origins := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
