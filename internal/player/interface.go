package player

import "context"

// Interface defines the audio source contract used by the radio and tests.
type Interface interface {
	// Play connects to the stream and starts audio output. It returns once
	// audio is flowing or the attempt failed.
	Play(ctx context.Context) error
	// Pause stops audio output and drops the connection.
	Pause()
	State() State
	SetVolume(level float64)
	Volume() float64
	// SetHints sets the buffering and credential hints for the next Play.
	SetHints(h Hints)
	// Samples and SampleRate expose the decoded signal to the band sampler.
	Samples(n int) []float64
	SampleRate() int
}

var (
	_ Interface = (*Stream)(nil)
	_ Interface = (*Mock)(nil)
	_ Interface = (*Silent)(nil)
)
