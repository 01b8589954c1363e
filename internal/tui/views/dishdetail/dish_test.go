package dishdetail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/confusion/internal/core/styles"
	"github.com/colonyops/confusion/pkg/tuitest"
)

func TestRenderDish(t *testing.T) {
	dish := fixtureDish()

	t.Run("plain description", func(t *testing.T) {
		out := tuitest.StripANSI(RenderDish(dish, Options{BaseURL: "http://localhost:3001/", Width: 80}))
		assert.Contains(t, out, "http://localhost:3001/images/uthappizza.png")
		assert.Contains(t, out, "Uthappizza")
		assert.Contains(t, out, "Indian Uthappam")
	})

	t.Run("markdown description", func(t *testing.T) {
		d := dish
		d.Description = "A **bold** pizza"
		out := tuitest.StripANSI(RenderDish(d, Options{Width: 80, Markdown: true}))
		assert.Contains(t, out, "bold")
		assert.NotContains(t, out, "**")
	})

	t.Run("hidden before the transition starts", func(t *testing.T) {
		anim := NewAnimation(4, 1)
		anim.Start(0)
		assert.Empty(t, RenderDish(dish, Options{Animation: anim}))

		anim.Tick()
		partial := tuitest.StripANSI(RenderDish(dish, Options{Animation: anim}))
		full := tuitest.StripANSI(RenderDish(dish, Options{}))
		assert.NotEmpty(t, partial)
		assert.Less(t, len(partial), len(full))
	})
}

func TestRenderDescription_ThemeChangeRerenders(t *testing.T) {
	t.Cleanup(func() {
		p, _ := styles.GetPalette(styles.DefaultTheme)
		styles.SetTheme(p)
	})

	const text = "Fresh *basil* and mozzarella"
	first := renderDescription(text, 40, true)
	_, ok := markdownCache.Get(markdownKey{text: text, width: 40, theme: styles.ThemeVersion()})
	require.True(t, ok)

	p, ok := styles.GetPalette("gruvbox")
	require.True(t, ok)
	styles.SetTheme(p)

	_, ok = markdownCache.Get(markdownKey{text: text, width: 40, theme: styles.ThemeVersion()})
	assert.False(t, ok, "cached output of the old palette must not be reused")

	second := renderDescription(text, 40, true)
	assert.Equal(t, tuitest.StripANSI(first), tuitest.StripANSI(second))
	_, ok = markdownCache.Get(markdownKey{text: text, width: 40, theme: styles.ThemeVersion()})
	assert.True(t, ok)
}
