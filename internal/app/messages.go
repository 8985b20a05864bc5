// Package app contains the bubbletea model of the radio player.
package app

import "time"

// RadioChangedMsg is sent when the radio published a new snapshot.
type RadioChangedMsg struct{}

// RadioErrorMsg carries an error reported by the radio.
type RadioErrorMsg struct {
	Err error
}

// RadioClosedMsg is sent when the radio subscription ends.
type RadioClosedMsg struct{}

// FrameTickMsg drives the effect animation.
type FrameTickMsg time.Time

// ToastTimeoutMsg hides the toast it was scheduled for.
// The Version field is used to ignore stale timeouts when a newer toast replaced it.
type ToastTimeoutMsg struct {
	Version int
}

// Timing of the UI.
const (
	FrameInterval = 100 * time.Millisecond
	ToastDuration = 4 * time.Second
)
