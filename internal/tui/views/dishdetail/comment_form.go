package dishdetail

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/core/styles"
	"github.com/colonyops/confusion/internal/tui/components/form"
)

const (
	FormTitle   = "Submit Comment"
	ButtonLabel = "✎ Submit Comment"
)

// SubmitFunc receives a validated comment. It is called at most once per
// successful submission and its command is returned to the runtime.
type SubmitFunc func(dishID, rating int, author, comment string) tea.Cmd

// CommentForm is the modal used to post a comment on one dish. It is
// either closed (only the button shows) or open (the modal shows).
type CommentForm struct {
	dishID int
	submit SubmitFunc
	dialog *form.Dialog
}

// NewCommentForm creates a closed form for dishID.
func NewCommentForm(dishID int, submit SubmitFunc) *CommentForm {
	return &CommentForm{dishID: dishID, submit: submit}
}

// DishID returns the dish comments are posted to.
func (f *CommentForm) DishID() int { return f.dishID }

// IsOpen reports whether the modal is showing.
func (f *CommentForm) IsOpen() bool { return f.dialog != nil }

// Open shows the modal with empty fields.
func (f *CommentForm) Open() tea.Cmd {
	ratings := make([]string, 0, menu.RatingMax)
	for r := menu.RatingMin; r <= menu.RatingMax; r++ {
		ratings = append(ratings, strconv.Itoa(r))
	}

	fields := []form.Field{
		form.NewSelectFormField("Rating", ratings, "",
			form.WithPlaceholder("choose a rating"),
			form.WithValidation(form.FieldValidation{Check: menu.ValidateRating}),
		),
		form.NewTextField("Your Name", "Your Name", "",
			form.FieldValidation{Check: menu.ValidateAuthor},
		),
		form.NewTextAreaField("Comment", "", ""),
	}
	vars := []string{menu.FieldRating, menu.FieldAuthor, menu.FieldComment}

	f.dialog = form.NewDialog(FormTitle, fields, vars)
	return nil
}

// Cancel closes the modal without submitting.
func (f *CommentForm) Cancel() {
	f.dialog = nil
}

// Update forwards input to the open modal. Closing and submitting happen
// here when the dialog reports them.
func (f *CommentForm) Update(msg tea.Msg) tea.Cmd {
	if f.dialog == nil {
		return nil
	}

	var cmd tea.Cmd
	f.dialog, cmd = f.dialog.Update(msg)

	switch {
	case f.dialog.Cancelled():
		f.Cancel()
		return nil
	case f.dialog.Submitted():
		return tea.Batch(cmd, f.finish())
	}
	return cmd
}

// Submit validates the current values. On failure the errors are shown
// inline and the modal stays open; on success the modal closes and the
// SubmitFunc is invoked.
func (f *CommentForm) Submit() tea.Cmd {
	if f.dialog == nil {
		return nil
	}

	var cmd tea.Cmd
	f.dialog, cmd = f.dialog.Submit()
	if !f.dialog.Submitted() {
		return cmd
	}
	return f.finish()
}

func (f *CommentForm) finish() tea.Cmd {
	values := f.Values()
	f.dialog = nil

	nc, err := values.ToNewComment(f.dishID)
	if err != nil || f.submit == nil {
		return nil
	}
	return f.submit(nc.DishID, nc.Rating, nc.Author, nc.Comment)
}

// Values returns the current field values. A closed form has none.
func (f *CommentForm) Values() menu.FormValues {
	if f.dialog == nil {
		return menu.FormValues{}
	}
	vals := f.dialog.FormValues()
	return menu.FormValues{
		Rating:  vals[menu.FieldRating],
		Author:  vals[menu.FieldAuthor],
		Comment: vals[menu.FieldComment],
	}
}

// SetValues prefills the open modal.
func (f *CommentForm) SetValues(v menu.FormValues) {
	if f.dialog == nil {
		return
	}
	f.dialog.SetValue(menu.FieldRating, v.Rating)
	f.dialog.SetValue(menu.FieldAuthor, v.Author)
	f.dialog.SetValue(menu.FieldComment, v.Comment)
}

// Errors returns the validation messages currently shown, keyed by field.
func (f *CommentForm) Errors() menu.FieldErrors {
	if f.dialog == nil {
		return nil
	}
	errs := f.dialog.Errors()
	if len(errs) == 0 {
		return nil
	}
	return menu.FieldErrors(errs)
}

// ButtonView renders the button that opens the modal.
func (f *CommentForm) ButtonView() string {
	return styles.ButtonOutlineStyle.Render(ButtonLabel)
}

// ModalView renders the open modal, or "" when closed.
func (f *CommentForm) ModalView() string {
	if f.dialog == nil {
		return ""
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(f.dialog.Title),
		"",
		f.dialog.View(),
	)
	return styles.FormModalStyle.Render(content)
}

// Overlay centers the open modal over background.
func (f *CommentForm) Overlay(background string, width, height int) string {
	modal := f.ModalView()
	if modal == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	formLayer := lipgloss.NewLayer(modal)
	formW := lipgloss.Width(modal)
	formH := lipgloss.Height(modal)
	formLayer.X(max((width-formW)/2, 0)).Y(max((height-formH)/2, 0)).Z(1)

	return lipgloss.NewCompositor(bgLayer, formLayer).Render()
}
