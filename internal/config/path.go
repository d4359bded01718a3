// Package config provides configuration loading for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultConfigDir returns the directory holding the config file,
// $HOME/.config/budgie.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "budgie")
}

// DefaultLedgerPath returns the default location of the import ledger
// database, $HOME/.local/share/budgie/import.db.
func DefaultLedgerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "import.db"
	}
	return filepath.Join(home, ".local", "share", "budgie", "import.db")
}
