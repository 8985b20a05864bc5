// Package mood classifies band samples of the playing signal into moods.
package mood

import "fmt"

// BandSample is one reading of frequency-band energy, each level in [0,1].
type BandSample struct {
	Bass    float64
	Mid     float64
	Treble  float64
	Overall float64
}

// Mood is the musical character derived from the latest band sample.
type Mood int

const (
	Normal Mood = iota
	Club
	Bass
	Slow
)

// Classification thresholds. Comparisons are strict.
const (
	clubBass    = 0.7
	clubMid     = 0.6
	bassBass    = 0.6
	slowOverall = 0.3
)

// Classify maps a sample to exactly one mood, first match wins:
// club, bass, slow, then normal.
func Classify(s BandSample) Mood {
	switch {
	case s.Bass > clubBass && s.Mid > clubMid:
		return Club
	case s.Bass > bassBass:
		return Bass
	case s.Overall < slowOverall:
		return Slow
	default:
		return Normal
	}
}

// String returns the lowercase mood label.
func (m Mood) String() string {
	switch m {
	case Normal:
		return "normal"
	case Club:
		return "club"
	case Bass:
		return "bass"
	case Slow:
		return "slow"
	default:
		return "unknown"
	}
}

// Parse returns the mood for a label produced by String.
func Parse(s string) (Mood, error) {
	for _, m := range All() {
		if m.String() == s {
			return m, nil
		}
	}
	return Normal, fmt.Errorf("unknown mood %q", s)
}

// All returns every mood in declaration order.
func All() []Mood {
	return []Mood{Normal, Club, Bass, Slow}
}
