package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level (0.0 to 1.0). The level is kept across
// connections.
func (s *Stream) SetVolume(level float64) {
	level = ClampVolume(level)

	s.mu.Lock()
	s.volumeLevel = level
	vol := s.volume
	s.mu.Unlock()

	if vol != nil {
		speaker.Lock()
		vol.Volume = levelToVolume(level)
		vol.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (s *Stream) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volumeLevel
}

// ClampVolume limits a level to [0, 1].
func ClampVolume(level float64) float64 {
	if math.IsNaN(level) {
		return 0
	}
	return max(0, min(1, level))
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 is unchanged, -1 is half.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
