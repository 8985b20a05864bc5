package player

import "fmt"

// Preload selects how much of the stream is buffered before playback.
type Preload string

const (
	PreloadAuto     Preload = "auto"
	PreloadMetadata Preload = "metadata"
	PreloadNone     Preload = "none"
)

// CrossOrigin selects whether credentials are sent with the stream request.
type CrossOrigin string

const (
	CrossOriginAnonymous      CrossOrigin = "anonymous"
	CrossOriginUseCredentials CrossOrigin = "use-credentials"
)

// Hints are playback-quality hints applied on the next Play.
type Hints struct {
	Preload     Preload
	CrossOrigin CrossOrigin
}

// DefaultHints returns auto preload with anonymous requests.
func DefaultHints() Hints {
	return Hints{Preload: PreloadAuto, CrossOrigin: CrossOriginAnonymous}
}

// ParsePreload validates a preload strategy name.
func ParsePreload(s string) (Preload, error) {
	switch p := Preload(s); p {
	case PreloadAuto, PreloadMetadata, PreloadNone:
		return p, nil
	}
	return PreloadAuto, fmt.Errorf("unknown preload strategy %q", s)
}

// ParseCrossOrigin validates a cross-origin mode name.
func ParseCrossOrigin(s string) (CrossOrigin, error) {
	switch c := CrossOrigin(s); c {
	case CrossOriginAnonymous, CrossOriginUseCredentials:
		return c, nil
	}
	return CrossOriginAnonymous, fmt.Errorf("unknown cross-origin mode %q", s)
}

// buffering returns the read-ahead buffer size and the amount of data that
// must be available before decoding starts.
func (h Hints) buffering() (size, prefill int) {
	switch h.Preload {
	case PreloadNone:
		return 4 << 10, 0
	case PreloadMetadata:
		return 16 << 10, 4 << 10
	default:
		return 64 << 10, 16 << 10
	}
}
