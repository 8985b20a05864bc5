package app

import (
	"sync/atomic"

	"github.com/llehouerou/radiowaves/internal/choreo"
)

// Viewport holds the latest terminal size in cells. The UI writes it and the
// effect scheduler reads it from the loop goroutine.
type Viewport struct {
	size atomic.Uint64
}

var _ choreo.Viewport = (*Viewport)(nil)

// Set stores the terminal size.
func (v *Viewport) Set(cols, rows int) {
	v.size.Store(uint64(uint32(max(cols, 0)))<<32 | uint64(uint32(max(rows, 0))))
}

// Size returns the terminal size as columns and rows.
func (v *Viewport) Size() (width, height float64) {
	s := v.size.Load()
	return float64(s >> 32), float64(uint32(s))
}
