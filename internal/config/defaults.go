package config

import (
	"github.com/spf13/viper"
)

func SetDefaults() {
	// Output defaults.
	viper.SetDefault("plain", false)
	viper.SetDefault("debug", false)

	// Logging defaults (matching the logger package).
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")
}

func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func ValidLogFormats() []string {
	return []string{"text", "json", "logfmt"}
}
