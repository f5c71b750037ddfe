package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the path to the aiproxy data directory.
// - Windows: %APPDATA%\aiproxy
// - Other OS: ~/.aiproxy
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "aiproxy")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".aiproxy"
	}
	return filepath.Join(home, ".aiproxy")
}

// ConfigPath returns the path to the config file (~/.aiproxy/config.toml).
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0700)
}
