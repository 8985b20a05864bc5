package analysis

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/radiowaves/internal/mood"
)

// ErrUnavailable is returned by Start when no signal can be sampled.
var ErrUnavailable = errors.New("band sampler unavailable")

// Defaults of the FFT sampler.
const (
	DefaultCadence = 100 * time.Millisecond
	DefaultFFTSize = 2048
)

// Tap exposes the most recent decoded samples of a stream.
type Tap interface {
	// Samples returns up to n of the latest mono samples, oldest first.
	Samples(n int) []float64
	// SampleRate returns the rate of the captured signal, 0 when idle.
	SampleRate() int
}

// Sampler periodically reads a Tap and emits band samples.
type Sampler struct {
	cadence time.Duration
	size    int
	logger  *log.Logger

	mu   sync.Mutex
	tap  Tap
	stop chan struct{}
	done chan struct{}
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithCadence sets the interval between samples.
func WithCadence(d time.Duration) Option {
	return func(s *Sampler) {
		if d > 0 {
			s.cadence = d
		}
	}
}

// WithFFTSize sets the frame length. It is rounded up to a power of two.
func WithFFTSize(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.size = nextPow2(n)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Sampler) { s.logger = l }
}

// NewSampler creates an FFT band sampler.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{
		cadence: DefaultCadence,
		size:    DefaultFFTSize,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach sets the tap read by subsequent samples.
func (s *Sampler) Attach(t Tap) {
	s.mu.Lock()
	s.tap = t
	s.mu.Unlock()
}

// Start begins emitting samples to onSample from a background goroutine.
// A running sampler is restarted.
func (s *Sampler) Start(onSample func(mood.BandSample)) error {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tap == nil || s.tap.SampleRate() <= 0 {
		return ErrUnavailable
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.tap, s.stop, s.done, onSample)
	return nil
}

// Stop halts sampling and waits for the goroutine to exit. It is idempotent.
func (s *Sampler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether the sampler goroutine is active.
func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *Sampler) run(tap Tap, stop, done chan struct{}, onSample func(mood.BandSample)) {
	defer close(done)

	ticker := time.NewTicker(s.cadence)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rate := tap.SampleRate()
			frame := tap.Samples(s.size)
			if rate <= 0 || len(frame) == 0 {
				s.logger.Debug("no signal to sample")
				continue
			}
			onSample(Bands(pad(frame, s.size), rate))
		}
	}
}

// pad zero-fills a short frame at the front so it keeps the frame length.
func pad(frame []float64, n int) []float64 {
	if len(frame) >= n {
		return frame[len(frame)-n:]
	}
	out := make([]float64, n)
	copy(out[n-len(frame):], frame)
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
