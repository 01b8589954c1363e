package config

import (
	"fmt"
	"maps"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including URL syntax and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips the
// config file check). It calls Validate() first for basic structural
// validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateURLs(),
		c.validateKeybindings(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.BaseURL != "" && !strings.HasSuffix(c.BaseURL, "/") {
		warnings = append(warnings, ValidationWarning{
			Category: "URLs",
			Item:     "base_url",
			Message:  "base_url does not end with '/'; image references are appended verbatim",
		})
	}

	if c.Source == SourceRemote && c.Server.Addr != "" && strings.Contains(c.RemoteURL, c.Server.Addr) {
		warnings = append(warnings, ValidationWarning{
			Category: "Source",
			Item:     "remote_url",
			Message:  "remote_url points at this instance's own server address",
		})
	}

	return warnings
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist accepts paths that are directories or do not exist yet.
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func (c *Config) validateURLs() error {
	var errs criterio.FieldErrorsBuilder

	if c.BaseURL != "" {
		if err := isHTTPURL(c.BaseURL); err != nil {
			errs = errs.Append("base_url", err)
		}
	}
	if c.RemoteURL != "" {
		if err := isHTTPURL(c.RemoteURL); err != nil {
			errs = errs.Append("remote_url", err)
		}
	}

	return errs.ToError()
}

func isHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}

// validateKeybindings rejects blank keys, which can never be pressed.
func (c *Config) validateKeybindings() error {
	var errs criterio.FieldErrorsBuilder
	for _, key := range slices.Sorted(maps.Keys(c.Keybindings)) {
		if strings.TrimSpace(key) == "" {
			errs = errs.Append("keybindings", fmt.Errorf("empty key bound to %q", c.Keybindings[key].Action))
		}
	}
	return errs.ToError()
}
