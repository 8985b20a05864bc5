package keymap

import "github.com/charmbracelet/bubbles/key"

// VolumeStep is the volume change of one key press.
const VolumeStep = 0.05

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Help        string // key label shown in the footer
	Description string
	Action      Action
}

// All contains all key bindings.
var All = []Binding{
	{[]string{" ", "space"}, "space", "play/pause", ActionPlayPause},
	{[]string{"+", "=", "up"}, "+/↑", "volume up", ActionVolumeUp},
	{[]string{"-", "down"}, "-/↓", "volume down", ActionVolumeDown},
	{[]string{"l"}, "l", "like", ActionLike},
	{[]string{"q", "ctrl+c"}, "q", "quit", ActionQuit},
}

// Help adapts bindings to the bubbles help component.
type Help struct {
	keys []key.Binding
}

// NewHelp builds the footer help from bindings.
func NewHelp(bindings []Binding) Help {
	h := Help{keys: make([]key.Binding, 0, len(bindings))}
	for _, b := range bindings {
		h.keys = append(h.keys, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Help, b.Description),
		))
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding {
	return h.keys
}

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.keys}
}
