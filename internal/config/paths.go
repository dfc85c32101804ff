package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetConfigPaths returns the directories searched for the user config file.
// Earlier paths take precedence.
func GetConfigPaths() []string {
	var paths []string

	if envPath := os.Getenv("ARBOR_CONFIG"); envPath != "" {
		paths = append(paths, filepath.Dir(envPath))
	}

	if userConfigDir := getUserConfigDir(); userConfigDir != "" {
		paths = append(paths, userConfigDir)
	}

	return paths
}

func getUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "arbor")
		}
		return ""
	case "darwin":
		if homeDir := getHomeDir(); homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", "arbor")
		}
		return ""
	default:
		// XDG Base Directory specification
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, "arbor")
		}
		if homeDir := getHomeDir(); homeDir != "" {
			return filepath.Join(homeDir, ".config", "arbor")
		}
		return ""
	}
}

func getHomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return os.Getenv("USERPROFILE")
}
