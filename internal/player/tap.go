package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// Tap is a streamer wrapper that copies a mono mix of the samples passing
// through it into a ring buffer read by the band sampler.
type Tap struct {
	s    beep.Streamer
	rate int

	mu   sync.Mutex
	buf  []float64
	pos  int
	size int
	fill int
}

// NewTap wraps a streamer with a ring buffer of the given size. rate is the
// sample rate of the wrapped signal.
func NewTap(s beep.Streamer, bufSize, rate int) *Tap {
	return &Tap{
		s:    s,
		rate: rate,
		buf:  make([]float64, bufSize),
		size: bufSize,
	}
}

// Stream passes audio through while capturing it.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.s.Stream(samples)
	t.mu.Lock()
	for i := range n {
		t.buf[t.pos] = (samples[i][0] + samples[i][1]) / 2
		t.pos = (t.pos + 1) % t.size
	}
	t.fill = min(t.fill+n, t.size)
	t.mu.Unlock()
	return n, ok
}

// Err returns the underlying streamer's error.
func (t *Tap) Err() error {
	return t.s.Err()
}

// Samples returns up to n of the latest samples in chronological order.
func (t *Tap) Samples(n int) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	n = min(n, t.fill)
	out := make([]float64, n)
	start := (t.pos - n + t.size) % t.size
	for i := range n {
		out[i] = t.buf[(start+i)%t.size]
	}
	return out
}

// SampleRate returns the rate of the captured signal.
func (t *Tap) SampleRate() int {
	return t.rate
}
