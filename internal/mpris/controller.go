package mpris

import (
	"github.com/llehouerou/radiowaves/internal/radio"
)

// Radio is the part of the orchestrator exposed over MPRIS. Play and Pause
// must be no-ops when the radio is already in the requested state.
type Radio interface {
	Toggle()
	Play()
	Pause()
	SetVolume(v float64)
	Snapshot() radio.Snapshot
}

// Station describes the stream shown as the current "track".
type Station struct {
	Name string
	URL  string
}

const trackID = "/org/mpris/MediaPlayer2/Track/live"
