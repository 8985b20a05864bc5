package choreo

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/radiowaves/internal/loop"
)

// Step is one delayed action of a sequence.
type Step struct {
	Name   string
	Offset time.Duration
	Run    func()
}

// Sequence is the cancellation handle of a scheduled set of steps.
// It must only be used from the loop that runs its steps.
type Sequence struct {
	name      string
	timers    []*loop.Timer
	pending   int
	cancelled bool
	logger    *log.Logger
}

func schedule(clock Clock, logger *log.Logger, name string, steps []Step) *Sequence {
	seq := &Sequence{
		name:    name,
		timers:  make([]*loop.Timer, 0, len(steps)),
		pending: len(steps),
		logger:  logger,
	}
	for _, step := range steps {
		seq.timers = append(seq.timers, clock.AfterFunc(step.Offset, func() {
			seq.fire(step)
		}))
	}
	return seq
}

func (s *Sequence) fire(step Step) {
	if s.cancelled {
		// Stop removes due timers, so this only happens if a timer escaped.
		s.logger.Debug("step of cancelled sequence ignored", "sequence", s.name, "step", step.Name)
		return
	}
	s.pending--
	step.Run()
}

// Cancel stops every step that has not fired yet. Already fired steps are
// not undone. Cancel is idempotent and safe after completion.
func (s *Sequence) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	stopped := 0
	for _, t := range s.timers {
		if t.Stop() {
			stopped++
		}
	}
	s.pending = 0
	if stopped > 0 {
		s.logger.Debug("sequence cancelled", "sequence", s.name, "stopped", stopped)
	}
}

// Name returns the sequence name.
func (s *Sequence) Name() string {
	return s.name
}

// Pending returns the number of steps still waiting to fire.
func (s *Sequence) Pending() int {
	return s.pending
}

// Cancelled reports whether Cancel was called.
func (s *Sequence) Cancelled() bool {
	return s.cancelled
}

// Done reports whether every step fired or the sequence was cancelled.
func (s *Sequence) Done() bool {
	return s.cancelled || s.pending == 0
}
