// Package choreo schedules the effect sequences tied to playback transitions.
package choreo

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/radiowaves/internal/loop"
)

// Clock schedules delayed steps on the owning loop.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) *loop.Timer
}

// Spawner is the part of the effect registry driven by sequences.
type Spawner interface {
	SpawnFirework(x, y float64) string
	SpawnHeartEmoji(x, y float64) string
	SpawnCryingEmoji(x, y float64) string
	SetOverlay(show bool)
}

// Viewport reports the current size of the rendering surface.
type Viewport interface {
	Size() (width, height float64)
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (float64, float64)

// Size implements Viewport.
func (f ViewportFunc) Size() (float64, float64) { return f() }

// Sequence names.
const (
	StartSequence = "start"
	StopSequence  = "stop"
)

// Timing of the start and stop choreography.
const (
	OverlayDuration = 3 * time.Second
	CryingCount     = 5
	CryingInterval  = 200 * time.Millisecond

	// DefaultCryBand is the height of the band crying emoji appear in.
	DefaultCryBand = 100.0
)

type burst struct {
	offset time.Duration
	fx, fy float64 // fraction of the viewport
}

var startBursts = []burst{
	{200 * time.Millisecond, 0.2, 0.3},
	{400 * time.Millisecond, 0.8, 0.4},
	{600 * time.Millisecond, 0.5, 0.2},
}

// Scheduler issues cancellable delayed spawn sequences against a Spawner.
// At most one sequence is current; starting one cancels the previous.
type Scheduler struct {
	clock   Clock
	fx      Spawner
	view    Viewport
	rng     *rand.Rand
	cryBand float64
	logger  *log.Logger

	current *Sequence
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRand sets the random source used for emoji placement.
func WithRand(r *rand.Rand) Option {
	return func(s *Scheduler) { s.rng = r }
}

// WithCryBand sets the height of the band crying emoji are placed in.
func WithCryBand(h float64) Option {
	return func(s *Scheduler) {
		if h > 0 {
			s.cryBand = h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// New creates a scheduler.
func New(clock Clock, fx Spawner, view Viewport, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:   clock,
		fx:      fx,
		view:    view,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // placement only
		cryBand: DefaultCryBand,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnStart cancels the current sequence and schedules the fireworks burst
// followed by hiding the overlay.
func (s *Scheduler) OnStart() *Sequence {
	steps := make([]Step, 0, len(startBursts)+1)
	for _, b := range startBursts {
		steps = append(steps, Step{
			Name:   "firework",
			Offset: b.offset,
			Run: func() {
				w, h := s.view.Size()
				s.fx.SpawnFirework(w*b.fx, h*b.fy)
			},
		})
	}
	steps = append(steps, Step{
		Name:   "hide overlay",
		Offset: OverlayDuration,
		Run:    func() { s.fx.SetOverlay(false) },
	})
	return s.replace(StartSequence, steps)
}

// OnStop cancels the current sequence and schedules the crying emoji rain.
func (s *Scheduler) OnStop() *Sequence {
	steps := make([]Step, 0, CryingCount)
	for i := range CryingCount {
		steps = append(steps, Step{
			Name:   "crying",
			Offset: time.Duration(i) * CryingInterval,
			Run: func() {
				w, _ := s.view.Size()
				s.fx.SpawnCryingEmoji(s.rng.Float64()*w, s.rng.Float64()*s.cryBand)
			},
		})
	}
	return s.replace(StopSequence, steps)
}

// Heart spawns a heart emoji at a random position right away.
// It belongs to no sequence and is never cancelled.
func (s *Scheduler) Heart() string {
	w, h := s.view.Size()
	return s.fx.SpawnHeartEmoji(s.rng.Float64()*w, s.rng.Float64()*h)
}

// Cancel cancels the current sequence, if any.
func (s *Scheduler) Cancel() {
	s.current.Cancel()
	s.current = nil
}

// Current returns the sequence scheduled last, or nil.
func (s *Scheduler) Current() *Sequence {
	return s.current
}

func (s *Scheduler) replace(name string, steps []Step) *Sequence {
	if prev := s.current; prev != nil && !prev.Done() {
		s.logger.Debug("superseding sequence", "previous", prev.Name(), "next", name, "pending", prev.Pending())
	}
	s.current.Cancel()
	s.current = schedule(s.clock, s.logger, name, steps)
	return s.current
}
