// Package radio runs the playback state machine of the player and drives the
// effect choreography from its transitions.
package radio

import (
	"context"

	"github.com/llehouerou/radiowaves/internal/analysis"
	"github.com/llehouerou/radiowaves/internal/effects"
	"github.com/llehouerou/radiowaves/internal/mood"
	"github.com/llehouerou/radiowaves/internal/player"
)

// Source is the controllable audio stream.
type Source interface {
	Play(ctx context.Context) error
	Pause()
	SetVolume(level float64)
	Volume() float64
	SetHints(h player.Hints)
	analysis.Tap
}

// Sampler produces band samples from an attached tap.
type Sampler interface {
	Attach(t analysis.Tap)
	Start(onSample func(mood.BandSample)) error
	Stop()
}

var (
	_ Source  = (player.Interface)(nil)
	_ Sampler = (*analysis.Sampler)(nil)
	_ Sampler = (*analysis.Synth)(nil)
)

// State represents the playback state.
type State int

const (
	Stopped State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of the radio. Slices are copies.
type Snapshot struct {
	State       State
	Starting    bool
	Volume      float64
	Mood        mood.Mood
	Band        mood.BandSample
	ShowOverlay bool
	Fireworks   []effects.Object
	Hearts      []effects.Object
	Crying      []effects.Object
}

// Playing reports whether audio is playing.
func (s Snapshot) Playing() bool {
	return s.State == Playing
}

// Effects returns the number of live effect objects.
func (s Snapshot) Effects() int {
	return len(s.Fireworks) + len(s.Hearts) + len(s.Crying)
}
