package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// ValidateSettings rejects symlink patterns that would reach outside the
// directories they are resolved against.
func ValidateSettings(s Settings) error {
	var errs ValidationErrors

	check := func(field string, patterns []string) {
		for _, p := range patterns {
			switch {
			case strings.TrimSpace(p) == "":
				errs = append(errs, ValidationError{Field: field, Value: p, Message: "pattern must not be empty"})
			case filepath.IsAbs(p):
				errs = append(errs, ValidationError{Field: field, Value: p, Message: "pattern must be relative"})
			case escapesRoot(p):
				errs = append(errs, ValidationError{Field: field, Value: p, Message: "pattern must stay inside the repository"})
			}
		}
	}
	check("symlinks", s.Symlinks)
	check("extra_symlinks", s.ExtraSymlinks)

	if s.DefaultSource != nil && strings.TrimSpace(*s.DefaultSource) == "" {
		errs = append(errs, ValidationError{Field: "default_source", Value: "", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func escapesRoot(pattern string) bool {
	clean := filepath.Clean(pattern)
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
