package dishdetail

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/core/styles"
)

// CommentsHeader is the heading shown above a provided comment list.
const CommentsHeader = "Comments"

// RenderComments renders the comment section of a dish. A nil slice means
// the comments were not provided and renders nothing at all, not even the
// header or the form button. Entries keep the given order.
func RenderComments(comments []menu.Comment, dishID int, opts Options) string {
	if comments == nil {
		return ""
	}

	width := opts.columnWidth()
	parts := []string{styles.SectionHeaderStyle.Render(CommentsHeader)}

	for i, c := range comments {
		entry := opts.Animation.Stagger(i, RenderComment(c, width))
		if entry == "" {
			continue
		}
		parts = append(parts, entry, "")
	}

	if opts.Form != nil && opts.Form.DishID() == dishID {
		parts = append(parts, opts.Form.ButtonView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderComment renders a single entry: the text, then "--Author, date".
func RenderComment(c menu.Comment, width int) string {
	text := styles.CommentTextStyle.Width(width).Render(c.Comment)
	meta := styles.CommentMetaStyle.Render(commentMeta(c))
	if c.Rating > 0 {
		meta += " " + styles.RatingStyle.Render(stars(c.Rating))
	}
	return lipgloss.JoinVertical(lipgloss.Left, text, meta)
}

func commentMeta(c menu.Comment) string {
	return "--" + c.Author + ", " + menu.FormatCommentDate(c.Date)
}

func stars(rating int) string {
	rating = min(max(rating, 0), menu.RatingMax)
	return strings.Repeat("★", rating) + strings.Repeat("☆", menu.RatingMax-rating)
}
