package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/confusion/internal/core/config"
	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/data/stores"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Repo serves dishes and comments from the configured source.
	Repo menu.Repository

	// Store is the local SQLite store. It is set for every source since
	// seeding and `serve` always work against local data.
	Store *stores.MenuStore
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "confusion", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "confusion")
}
