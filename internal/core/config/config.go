// Package config handles configuration loading and validation for confusion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/confusion/internal/core/styles"
)

// Built-in action names for keybindings.
const (
	ActionComment = "comment"
	ActionReload  = "reload"
	ActionBack    = "back"
	ActionQuit    = "quit"
)

// Repository sources.
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"c":   {Action: ActionComment, Help: "comment"},
	"r":   {Action: ActionReload, Help: "reload"},
	"esc": {Action: ActionBack, Help: "menu"},
	"q":   {Action: ActionQuit, Help: "quit"},
}

// DefaultKeybindings returns a copy of the built-in keybindings.
func DefaultKeybindings() map[string]Keybinding {
	return mergeKeybindings(defaultKeybindings, nil)
}

// Config holds the application configuration.
type Config struct {
	BaseURL     string                `yaml:"base_url"`
	Source      string                `yaml:"source"`
	RemoteURL   string                `yaml:"remote_url"`
	Database    DatabaseConfig        `yaml:"database"`
	Server      ServerConfig          `yaml:"server"`
	TUI         TUIConfig             `yaml:"tui"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	DataDir     string                `yaml:"-"` // set by caller, not from config file
}

// DatabaseConfig tunes the SQLite connection pool.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// ServerConfig configures `confusion serve`.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TUIConfig configures the terminal UI.
type TUIConfig struct {
	Theme        string        `yaml:"theme"`
	StaggerTicks int           `yaml:"stagger_ticks"` // ticks between consecutive comment reveals
	FadeTicks    int           `yaml:"fade_ticks"`    // ticks for the dish card transition; 0 disables animation
	TickInterval time.Duration `yaml:"tick_interval"`
	Markdown     bool          `yaml:"markdown"` // render dish descriptions as markdown
}

// Keybinding defines a TUI keybinding action.
type Keybinding struct {
	Action string `yaml:"action"` // built-in action name
	Help   string `yaml:"help"`   // help text shown in TUI
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:3001/",
		Source:  SourceLocal,
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			BusyTimeout:  5000,
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:3001",
			ShutdownTimeout: 5 * time.Second,
		},
		TUI: TUIConfig{
			Theme:        styles.DefaultTheme,
			StaggerTicks: 2,
			FadeTicks:    4,
			TickInterval: 60 * time.Millisecond,
			Markdown:     true,
		},
		Keybindings: map[string]Keybinding{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Source == "" {
		c.Source = defaults.Source
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.TickInterval == 0 {
		c.TUI.TickInterval = defaults.TUI.TickInterval
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range user {
		result[k] = v
	}

	return result
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	switch c.Source {
	case SourceLocal:
	case SourceRemote:
		if c.RemoteURL == "" {
			return fmt.Errorf("remote_url is required when source is %q", SourceRemote)
		}
	default:
		return fmt.Errorf("source must be %q or %q, got %q", SourceLocal, SourceRemote, c.Source)
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme", c.TUI.Theme)
	}

	if c.TUI.StaggerTicks < 0 {
		return fmt.Errorf("tui.stagger_ticks cannot be negative")
	}

	if c.TUI.FadeTicks < 0 {
		return fmt.Errorf("tui.fade_ticks cannot be negative")
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}

	for key, kb := range c.Keybindings {
		if !isValidAction(kb.Action) {
			return fmt.Errorf("keybinding %q has invalid action %q", key, kb.Action)
		}
	}

	return nil
}

// DatabaseFile returns the path to the SQLite database.
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DataDir, "confusion.db")
}

// ImagesDir returns the directory served under /images by `confusion serve`.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.DataDir, "images")
}

func isValidAction(action string) bool {
	switch action {
	case ActionComment, ActionReload, ActionBack, ActionQuit:
		return true
	default:
		return false
	}
}
