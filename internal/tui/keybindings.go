package tui

import (
	"maps"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/confusion/internal/core/config"
	"github.com/colonyops/confusion/internal/tui/views/dishdetail"
)

// ActionType identifies the kind of action a keybinding triggers.
type ActionType int

const (
	ActionTypeNone ActionType = iota
	ActionTypeComment
	ActionTypeReload
	ActionTypeBack
	ActionTypeQuit
)

// Action is a resolved keybinding.
type Action struct {
	Type ActionType
	Key  string
	Help string
}

// KeybindingHandler resolves configured keybindings to actions.
type KeybindingHandler struct {
	keybindings map[string]config.Keybinding
}

// NewKeybindingHandler creates a new handler with the given keybindings.
func NewKeybindingHandler(keybindings map[string]config.Keybinding) *KeybindingHandler {
	return &KeybindingHandler{keybindings: keybindings}
}

// Resolve attempts to resolve a key press to an action.
func (h *KeybindingHandler) Resolve(k string) (Action, bool) {
	kb, ok := h.keybindings[k]
	if !ok {
		return Action{}, false
	}

	action := Action{Key: k, Help: kb.Help, Type: actionType(kb.Action)}
	if action.Type == ActionTypeNone {
		return Action{}, false
	}
	if action.Help == "" {
		action.Help = kb.Action
	}
	return action, true
}

func actionType(name string) ActionType {
	switch name {
	case config.ActionComment:
		return ActionTypeComment
	case config.ActionReload:
		return ActionTypeReload
	case config.ActionBack:
		return ActionTypeBack
	case config.ActionQuit:
		return ActionTypeQuit
	default:
		return ActionTypeNone
	}
}

// Binding returns a key.Binding covering every key mapped to action. The
// binding is disabled when no key maps to it.
func (h *KeybindingHandler) Binding(action string) key.Binding {
	var keys []string
	help := action
	for _, k := range slices.Sorted(maps.Keys(h.keybindings)) {
		kb := h.keybindings[k]
		if kb.Action != action {
			continue
		}
		keys = append(keys, k)
		if kb.Help != "" {
			help = kb.Help
		}
	}

	if len(keys) == 0 {
		b := key.NewBinding(key.WithKeys(), key.WithHelp("", help))
		b.SetEnabled(false)
		return b
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), help))
}

// DetailKeyMap builds the detail view's bindings from the configuration.
func (h *KeybindingHandler) DetailKeyMap() dishdetail.KeyMap {
	return dishdetail.KeyMap{
		Comment: h.Binding(config.ActionComment),
		Back:    h.Binding(config.ActionBack),
		Reload:  h.Binding(config.ActionReload),
	}
}

// KeyBindings returns key.Binding objects for the bubbles help system,
// sorted by key.
func (h *KeybindingHandler) KeyBindings() []key.Binding {
	keys := slices.Sorted(maps.Keys(h.keybindings))
	bindings := make([]key.Binding, 0, len(keys))

	for _, k := range keys {
		kb := h.keybindings[k]
		help := kb.Help
		if help == "" {
			help = kb.Action
		}
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, help)))
	}

	return bindings
}
