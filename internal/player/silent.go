package player

import (
	"context"
	"sync"
)

// Silent is a source that plays nothing. It backs the demo mode.
type Silent struct {
	mu     sync.Mutex
	state  State
	volume float64
}

// NewSilent creates a silent source.
func NewSilent() *Silent {
	return &Silent{volume: 1}
}

func (s *Silent) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Playing
	return nil
}

func (s *Silent) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Stopped
}

func (s *Silent) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Silent) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = ClampVolume(level)
}

func (s *Silent) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

func (s *Silent) SetHints(Hints) {}

func (s *Silent) Samples(int) []float64 { return nil }

func (s *Silent) SampleRate() int { return 0 }
