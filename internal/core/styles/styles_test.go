package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsNonDecreasing(t, names)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	before := ThemeVersion()
	SetTheme(p)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Greater(t, ThemeVersion(), before)
	assert.Equal(t, p, CurrentPalette)
}

func TestGetPalette_Unknown(t *testing.T) {
	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#c0caf5", *cfg.Document.Color)
	require.NotNil(t, cfg.Document.Margin)
	assert.Equal(t, uint(0), *cfg.Document.Margin)
}
