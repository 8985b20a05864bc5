package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionPlayPause},
		{"plus", runes("+"), ActionVolumeUp},
		{"equals", runes("="), ActionVolumeUp},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, ActionVolumeUp},
		{"minus", runes("-"), ActionVolumeDown},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, ActionVolumeDown},
		{"like", runes("l"), ActionLike},
		{"like with caps lock", runes("L"), ActionLike},
		{"quit", runes("q"), ActionQuit},
		{"quit with caps lock", runes("Q"), ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"alt+l is not like", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}, Alt: true}, ""},
		{"pasted text", runes("lq"), ""},
		{"unbound", runes("x"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.msg); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestResolver_FirstBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{Keys: []string{"l"}, Action: ActionLike},
		{Keys: []string{"l", "q"}, Action: ActionQuit},
	})
	if got := r.Resolve(runes("l")); got != ActionLike {
		t.Errorf("Resolve(l) = %q, want like", got)
	}
	if got := r.Resolve(runes("q")); got != ActionQuit {
		t.Errorf("Resolve(q) = %q, want quit", got)
	}
}

func TestHelp(t *testing.T) {
	h := NewHelp(All)
	if len(h.ShortHelp()) != len(All) {
		t.Fatalf("ShortHelp has %d bindings, want %d", len(h.ShortHelp()), len(All))
	}
	if len(h.FullHelp()) != 1 {
		t.Fatalf("FullHelp has %d columns, want 1", len(h.FullHelp()))
	}
	like := h.ShortHelp()[3]
	if like.Help().Desc != "like" {
		t.Errorf("help desc = %q, want like", like.Help().Desc)
	}
	if !key.Matches(runes("l"), like) {
		t.Error("like binding does not match l")
	}
}
