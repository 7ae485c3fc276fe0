// Package config loads CLI defaults from environment variables. The core
// library never reads the environment; only cmd/quill consumes this.
package config

import (
	"os"
	"strconv"
)

// Config holds the CLI defaults.
type Config struct {
	TemplatePath  string // QUILL_TEMPLATE
	LogFile       string // QUILL_LOG_FILE
	Verbosity     string // QUILL_VERBOSITY: "all", "standard", "quiet", "errors_only"
	Color         bool   // QUILL_COLOR
	MaxBufferSize int    // QUILL_MAX_BUFFER_SIZE
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		TemplatePath:  os.Getenv("QUILL_TEMPLATE"),
		LogFile:       os.Getenv("QUILL_LOG_FILE"),
		Verbosity:     getenv("QUILL_VERBOSITY", "standard"),
		Color:         getenvBool("QUILL_COLOR", true),
		MaxBufferSize: getenvInt("QUILL_MAX_BUFFER_SIZE", 128),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
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

func getenvInt(key string, fallback int) int {
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
