package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "confusion.log")

	logger, closer, err := New("debug", file)
	require.NoError(t, err)

	logger.Info().Str("dish", "Uthappizza").Msg("hello")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dish":"Uthappizza"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNew_Level(t *testing.T) {
	logger, closer, err := New("warn", filepath.Join(t.TempDir(), "l.log"))
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}
