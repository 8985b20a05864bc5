package keymap

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key presses to actions.
type Resolver struct {
	bindings map[string]Action
}

// NewResolver creates a resolver from bindings. When a key appears in
// several bindings the first one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bindings: make(map[string]Action)}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if _, taken := r.bindings[k]; !taken {
				r.bindings[k] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action bound to msg, or an empty Action.
// A single letter also matches its lowercase binding, so caps lock does not
// disable the shortcuts.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	if a, ok := r.bindings[msg.String()]; ok {
		return a
	}
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return ""
	}
	return r.bindings[string(unicode.ToLower(msg.Runes[0]))]
}
