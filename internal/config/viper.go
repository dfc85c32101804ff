package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Initialize sets up viper with defaults, the optional user config file and
// ARBOR_* environment variables.
func Initialize() error {
	SetDefaults()

	viper.SetEnvPrefix("ARBOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	for _, path := range GetConfigPaths() {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return validateGlobal()
}

// Apply copies the resolved output settings into Global.
func Apply() {
	Global.Plain = viper.GetBool("plain")
	Global.Debug = viper.GetBool("debug")
	LoadFromEnv()
}

func GetString(key string) string {
	return viper.GetString(key)
}

func validateGlobal() error {
	var errs ValidationErrors

	level := strings.ToLower(viper.GetString("logging.level"))
	if !slices.Contains(ValidLogLevels(), level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   level,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	format := strings.ToLower(viper.GetString("logging.format"))
	if !slices.Contains(ValidLogFormats(), format) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   format,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
