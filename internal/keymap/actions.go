// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit       Action = "quit"
	ActionPlayPause  Action = "play_pause"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionLike       Action = "like"
)
