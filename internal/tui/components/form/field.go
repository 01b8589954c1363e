package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string

	// Validate runs the field's rules, records the result for View, and
	// returns the message ("" when valid).
	Validate() string
	Error() string
}

// Setter is implemented by fields whose value can be replaced directly.
type Setter interface {
	SetValue(string)
}
