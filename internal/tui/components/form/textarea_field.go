package form

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	input   textarea.Model
	label   string
	focused bool
	rules   []FieldValidation
	err     string
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, defaultVal string, rules ...FieldValidation) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetWidth(40)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	return &TextAreaField{
		input: ta,
		label: label,
		rules: rules,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.err != "" {
		f.Validate()
	}
	return f, cmd
}

func (f *TextAreaField) View() string {
	return renderField(f.label, f.input.View(), f.err, f.focused)
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Validate() string {
	f.err = validateAll(f.rules, f.input.Value())
	return f.err
}

func (f *TextAreaField) SetValue(v string) { f.input.SetValue(v) }

func (f *TextAreaField) Focused() bool { return f.focused }
func (f *TextAreaField) Value() string { return f.input.Value() }
func (f *TextAreaField) Label() string { return f.label }
func (f *TextAreaField) Error() string { return f.err }
