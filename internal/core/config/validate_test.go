package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeep(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		assert.NoError(t, cfg.ValidateDeep(""))
	})

	t.Run("bad base url", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		cfg.BaseURL = "ftp://menu/"
		err := cfg.ValidateDeep("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url")
	})

	t.Run("data dir is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		cfg := DefaultConfig()
		cfg.DataDir = file
		err := cfg.ValidateDeep("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data_dir")
	})

	t.Run("config path is a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		err := cfg.ValidateDeep(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config_file")
	})

	t.Run("structural errors short circuit", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ValidateDeep("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data directory")
	})
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	assert.Empty(t, cfg.Warnings())

	cfg.BaseURL = "http://localhost:3001"
	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "base_url", warnings[0].Item)
}
