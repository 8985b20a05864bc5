package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetVolume() (float64, bool, error)
	SaveVolume(volume float64)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
