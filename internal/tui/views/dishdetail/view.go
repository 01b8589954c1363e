// Package dishdetail renders the detail page of a single dish: the dish
// card, its comments, and the form used to post a new comment.
package dishdetail

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/confusion/internal/core/styles"
)

const (
	defaultWidth = 80

	// Below this width the card and the comments stack vertically.
	twoColumnMinWidth = 96

	LoadingText = "Loading . . ."
	MenuCrumb   = "Menu"
)

// Options carries the presentation inputs of Render. None of them decide
// which branch is shown; that is the State's job.
type Options struct {
	BaseURL   string
	Width     int
	Markdown  bool
	Animation Animation
	Spinner   string       // current spinner frame for the loading branch
	Form      *CommentForm // source of the "Submit Comment" button
}

// columnWidth returns the width available to one of the two content columns.
func (o Options) columnWidth() int {
	w := o.Width
	if w <= 0 {
		w = defaultWidth
	}
	if w >= twoColumnMinWidth {
		return w*5/12 - 1
	}
	return w
}

// Render draws exactly one branch of the detail view for s. It has no side
// effects.
func Render(s State, opts Options) string {
	switch s.Kind {
	case KindLoading:
		return renderLoading(opts.Spinner)
	case KindError:
		return styles.ErrorMessageStyle.Render(s.ErrMess)
	case KindLoaded:
		return renderLoaded(s, opts)
	default:
		return ""
	}
}

func renderLoading(spinner string) string {
	if spinner == "" {
		return styles.TextPrimaryStyle.Render(LoadingText)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, spinner, " ", styles.TextPrimaryStyle.Render(LoadingText))
}

func renderLoaded(s State, opts Options) string {
	crumb := styles.BreadcrumbStyle.Render(MenuCrumb) +
		styles.BreadcrumbActiveStyle.Render(" / "+s.Dish.Name)
	heading := styles.DishHeadingStyle.Render(s.Dish.Name)

	dish := RenderDish(s.Dish, opts)
	comments := RenderComments(s.Comments, s.Dish.ID, opts)

	var body string
	switch {
	case comments == "":
		body = dish
	case opts.Width >= twoColumnMinWidth:
		body = lipgloss.JoinHorizontal(lipgloss.Top, dish, "  ", comments)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, dish, "", comments)
	}

	return lipgloss.JoinVertical(lipgloss.Left, crumb, "", heading, body)
}
