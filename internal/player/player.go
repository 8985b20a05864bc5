package player

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// tapSize is the number of mono samples kept for analysis.
const tapSize = 8192

const userAgent = "radiowaves/1.0"

// Stream plays a live HTTP audio stream through the speaker.
type Stream struct {
	url    string
	client *http.Client
	logger *log.Logger

	mu          sync.Mutex
	hints       Hints
	state       State
	gen         uint64
	volumeLevel float64
	cancel      context.CancelFunc
	ctrl        *beep.Ctrl
	decoder     beep.StreamCloser
	tap         *Tap
	volume      *effects.Volume
}

// Option configures a Stream.
type Option func(*Stream)

// WithHTTPClient sets the client used to connect.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Stream) { s.client = c }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Stream) { s.logger = l }
}

// New creates a stream source for url. It does not connect until Play.
func New(url string, opts ...Option) *Stream {
	s := &Stream{
		url:         url,
		client:      &http.Client{Transport: &http.Transport{ResponseHeaderTimeout: 15 * time.Second}},
		logger:      log.Default(),
		hints:       DefaultHints(),
		volumeLevel: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the stream address.
func (s *Stream) URL() string {
	return s.url
}

// State returns the output state.
func (s *Stream) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetHints sets the hints applied on the next Play.
func (s *Stream) SetHints(h Hints) {
	s.mu.Lock()
	s.hints = h
	s.mu.Unlock()
}

// Samples returns the latest decoded samples, nil when not playing.
func (s *Stream) Samples(n int) []float64 {
	s.mu.Lock()
	tap := s.tap
	s.mu.Unlock()
	if tap == nil {
		return nil
	}
	return tap.Samples(n)
}

// SampleRate returns the output sample rate, 0 when not playing.
func (s *Stream) SampleRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tap == nil {
		return 0
	}
	return s.tap.SampleRate()
}
