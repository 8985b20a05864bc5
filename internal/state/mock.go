package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu     sync.Mutex
	volume *float64
	saves  []float64
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetVolume() (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.volume == nil {
		return 0, false, nil
	}
	return *m.volume, true, nil
}

func (m *Mock) SaveVolume(volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = &volume
	m.saves = append(m.saves, volume)
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) Saves() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.saves...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
