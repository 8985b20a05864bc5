package analysis

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/llehouerou/radiowaves/internal/mood"
)

// Synth emits slowly drifting band samples without any audio. It backs the
// demo mode and ignores the attached tap.
type Synth struct {
	cadence time.Duration

	mu   sync.Mutex
	rng  *rand.Rand
	stop chan struct{}
	done chan struct{}

	phaseBass, phaseMid, phaseHigh float64
}

// NewSynth creates a synthetic sampler emitting one sample per cadence.
func NewSynth(cadence time.Duration, seed uint64) *Synth {
	if cadence <= 0 {
		cadence = DefaultCadence
	}
	return &Synth{
		cadence: cadence,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // not security sensitive
	}
}

// Attach is a no-op.
func (s *Synth) Attach(Tap) {}

// Start begins emitting samples.
func (s *Synth) Start(onSample func(mood.BandSample)) error {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done, onSample)
	return nil
}

// Stop halts the generator.
func (s *Synth) Stop() {
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

func (s *Synth) run(stop, done chan struct{}, onSample func(mood.BandSample)) {
	defer close(done)

	ticker := time.NewTicker(s.cadence)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			onSample(s.Next(s.cadence.Seconds()))
		}
	}
}

// Next advances the generator by delta seconds and returns a sample.
func (s *Synth) Next(delta float64) mood.BandSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phaseBass += delta * 0.7
	s.phaseMid += delta * 1.2
	s.phaseHigh += delta * 2.1

	bass := clamp01(0.5 + 0.5*math.Sin(s.phaseBass) + s.rng.Float64()*0.1)
	mid := clamp01(0.4 + 0.4*math.Sin(s.phaseMid+0.5) + s.rng.Float64()*0.1)
	treble := clamp01(0.3 + 0.3*math.Sin(s.phaseHigh+1.0) + s.rng.Float64()*0.1)

	return mood.BandSample{
		Bass:    bass,
		Mid:     mid,
		Treble:  treble,
		Overall: (bass + mid + treble) / 3,
	}
}
