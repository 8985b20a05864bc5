package player

import (
	"context"
	"sync"
)

// Mock is a test double for Interface.
type Mock struct {
	mu         sync.Mutex
	state      State
	volume     float64
	hints      Hints
	playErr    error
	block      chan struct{}
	playCalls  int
	pauseCalls int
	samples    []float64
	rate       int
}

// NewMock creates a new mock source for testing.
func NewMock() *Mock {
	return &Mock{volume: 1, hints: DefaultHints()}
}

// Play records the call. It blocks while a gate set by BlockPlay is closed
// or until ctx is done.
func (m *Mock) Play(ctx context.Context) error {
	m.mu.Lock()
	m.playCalls++
	block := m.block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	m.state = Stopped
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = ClampVolume(level)
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) SetHints(h Hints) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hints = h
}

func (m *Mock) Samples(n int) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > len(m.samples) {
		n = len(m.samples)
	}
	return append([]float64(nil), m.samples[len(m.samples)-n:]...)
}

func (m *Mock) SampleRate() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rate
}

// Test helpers

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// BlockPlay makes Play wait until the returned function is called.
func (m *Mock) BlockPlay() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.block = gate
	m.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (m *Mock) SetSignal(samples []float64, rate int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = samples
	m.rate = rate
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) Hints() Hints {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hints
}
