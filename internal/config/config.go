package config

import (
	"os"
	"strings"
)

// Global holds the process-wide output settings for arbor
var Global struct {
	Plain bool // Disable colors and symbols
	Debug bool // Enable debug output
}

// IsPlain returns true if plain output mode is enabled
func IsPlain() bool {
	return Global.Plain
}

// IsDebug returns true if debug output is enabled
func IsDebug() bool {
	return Global.Debug
}

// LoadFromEnv loads output settings from environment variables
func LoadFromEnv() {
	if isTruthy(os.Getenv("ARBOR_PLAIN")) {
		Global.Plain = true
	}
	if isTruthy(os.Getenv("ARBOR_DEBUG")) {
		Global.Debug = true
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
