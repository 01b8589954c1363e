package dishdetail

import "charm.land/bubbles/v2/key"

// KeyMap holds the detail view's bindings.
type KeyMap struct {
	Comment key.Binding
	Back    key.Binding
	Reload  key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Comment: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Comment, k.Reload, k.Back}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
