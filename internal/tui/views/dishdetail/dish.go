package dishdetail

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/core/styles"
	"github.com/colonyops/confusion/pkg/kv"
)

// RenderDish renders the dish card: the resolved image reference, the
// name, and the description, wrapped in the entry transition.
func RenderDish(dish menu.Dish, opts Options) string {
	width := opts.columnWidth()
	inner := max(width-styles.CardStyle.GetHorizontalFrameSize(), 10)

	parts := []string{
		styles.CardImageStyle.Render("▣ " + menu.ImageURL(opts.BaseURL, dish.Image)),
		"",
		styles.CardTitleStyle.Render(dish.Name),
	}
	if desc := renderDescription(dish.Description, inner, opts.Markdown); desc != "" {
		parts = append(parts, desc)
	}

	card := styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return opts.Animation.Transition(card)
}

type markdownKey struct {
	text  string
	width int
	theme int // styles.ThemeVersion at render time
}

// markdownCache keeps rendered descriptions; the view redraws every
// animation tick and glamour is comparatively slow.
var markdownCache = kv.NewBounded[markdownKey, string](markdownCacheSize)

const markdownCacheSize = 128

func renderDescription(text string, width int, markdown bool) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	plain := styles.CardTextStyle.Width(width).Render(text)
	if !markdown {
		return plain
	}

	out, err := markdownCache.GetOrCompute(markdownKey{text: text, width: width, theme: styles.ThemeVersion()}, func() (string, error) {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		out, err := r.Render(text)
		if err != nil {
			return "", err
		}
		return strings.Trim(out, "\n"), nil
	})
	if err != nil {
		log.Debug().Err(err).Msg("markdown render failed")
		return plain
	}
	return out
}
