package radio

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/radiowaves/internal/choreo"
	"github.com/llehouerou/radiowaves/internal/effects"
	"github.com/llehouerou/radiowaves/internal/loop"
	"github.com/llehouerou/radiowaves/internal/mood"
	"github.com/llehouerou/radiowaves/internal/player"
)

// DefaultStartTimeout bounds a start attempt.
const DefaultStartTimeout = 10 * time.Second

// Orchestrator owns the playback state. Its mutable fields are only touched
// on the loop; the public methods post work there.
type Orchestrator struct {
	loop    *loop.Loop
	source  Source
	sampler Sampler
	fx      *effects.Registry
	sched   *choreo.Scheduler
	logger  *log.Logger
	timeout time.Duration

	// loop-owned
	state       State
	starting    bool
	attempt     uint64
	cancelStart context.CancelFunc
	volume      float64
	band        mood.BandSample
	mood        mood.Mood
	closed      bool

	snap      atomic.Pointer[Snapshot]
	subsMu    sync.Mutex
	subs      []*Subscription
	shut      bool
	closeOnce sync.Once
}

type config struct {
	logger  *log.Logger
	timeout time.Duration
	ttl     effects.TTL
	cryBand float64
	rng     *rand.Rand
	ids     func() string
	hints   *player.Hints
}

// Option configures an Orchestrator.
type Option func(*config)

// WithLogger sets the logger shared by the radio components.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartTimeout bounds each start attempt.
func WithStartTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithTTL sets the effect lifetimes.
func WithTTL(ttl effects.TTL) Option {
	return func(c *config) { c.ttl = ttl }
}

// WithCryBand sets the height of the band crying emoji fall in.
func WithCryBand(h float64) Option {
	return func(c *config) { c.cryBand = h }
}

// WithRand sets the random source used for effect placement.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithIDs sets the effect id generator.
func WithIDs(fn func() string) Option {
	return func(c *config) { c.ids = fn }
}

// WithHints sets the playback hints applied to the source.
func WithHints(h player.Hints) Option {
	return func(c *config) { c.hints = &h }
}

// New creates an orchestrator running on l. The loop must be running for
// any of its methods to take effect.
func New(l *loop.Loop, src Source, sampler Sampler, view choreo.Viewport, opts ...Option) *Orchestrator {
	cfg := config{
		logger:  log.Default(),
		timeout: DefaultStartTimeout,
		ttl:     effects.DefaultTTL(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	fxOpts := []effects.Option{effects.WithLogger(cfg.logger)}
	if cfg.ids != nil {
		fxOpts = append(fxOpts, effects.WithIDs(cfg.ids))
	}
	fx := effects.NewRegistry(l, cfg.ttl, fxOpts...)

	schedOpts := []choreo.Option{choreo.WithLogger(cfg.logger)}
	if cfg.cryBand > 0 {
		schedOpts = append(schedOpts, choreo.WithCryBand(cfg.cryBand))
	}
	if cfg.rng != nil {
		schedOpts = append(schedOpts, choreo.WithRand(cfg.rng))
	}

	if cfg.hints != nil {
		src.SetHints(*cfg.hints)
	}

	o := &Orchestrator{
		loop:    l,
		source:  src,
		sampler: sampler,
		fx:      fx,
		sched:   choreo.New(l, fx, view, schedOpts...),
		logger:  cfg.logger,
		timeout: cfg.timeout,
		volume:  player.ClampVolume(src.Volume()),
	}
	o.snap.Store(&Snapshot{State: Stopped, Volume: o.volume, Mood: mood.Normal})
	fx.OnChange(o.publish)
	return o
}

// Toggle starts or stops playback. It is ignored while a start is in flight.
func (o *Orchestrator) Toggle() {
	o.loop.Post(o.toggle)
}

// Play starts playback if it is stopped and no start is in flight.
func (o *Orchestrator) Play() {
	o.loop.Post(func() {
		if o.closed || o.starting || o.state != Stopped {
			return
		}
		o.start()
	})
}

// Pause stops playback if it is playing. A start in flight is left alone.
func (o *Orchestrator) Pause() {
	o.loop.Post(func() {
		if o.closed || o.starting || o.state != Playing {
			return
		}
		o.stop()
	})
}

// SetVolume clamps v to [0, 1] and applies it. The playback state is not
// affected.
func (o *Orchestrator) SetVolume(v float64) {
	o.loop.Post(func() { o.setVolume(v) })
}

// AdjustVolume changes the volume by delta.
func (o *Orchestrator) AdjustVolume(delta float64) {
	o.loop.Post(func() { o.setVolume(o.volume + delta) })
}

// Like spawns a heart emoji.
func (o *Orchestrator) Like() {
	o.loop.Post(func() {
		if o.closed {
			return
		}
		o.sched.Heart()
	})
}

// Snapshot returns the latest published state.
func (o *Orchestrator) Snapshot() Snapshot {
	return *o.snap.Load()
}

// Subscribe creates a new event subscription.
func (o *Orchestrator) Subscribe() *Subscription {
	o.subsMu.Lock()
	defer o.subsMu.Unlock()
	sub := newSubscription()
	if o.shut {
		sub.close()
		return sub
	}
	o.subs = append(o.subs, sub)
	return sub
}

// Close tears the radio down: the pending start and effect sequence are
// cancelled, the effects cleared, and the source stopped. Subscriptions are
// closed. It must not be called from the loop.
func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		if !o.loop.Call(o.teardown) {
			o.sampler.Stop()
			o.source.Pause()
		}

		o.subsMu.Lock()
		o.shut = true
		for _, sub := range o.subs {
			sub.close()
		}
		o.subs = nil
		o.subsMu.Unlock()
	})
}

func (o *Orchestrator) toggle() {
	if o.closed {
		return
	}
	if o.starting {
		o.logger.Debug("toggle ignored while starting")
		return
	}
	switch o.state {
	case Stopped:
		o.start()
	case Playing:
		o.stop()
	}
}

func (o *Orchestrator) start() {
	o.starting = true
	o.attempt++
	attempt := o.attempt

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	o.cancelStart = cancel
	o.publish()

	o.logger.Debug("starting playback", "attempt", attempt)
	go func() {
		err := o.source.Play(ctx)
		cancel()
		o.loop.Post(func() { o.started(attempt, err) })
	}()
}

func (o *Orchestrator) started(attempt uint64, err error) {
	if o.closed || attempt != o.attempt {
		return
	}
	o.starting = false
	o.cancelStart = nil

	if err != nil {
		serr := &StartError{Err: err}
		o.logger.Error("playback start failed", "err", err)
		o.publish()
		o.broadcastError(serr)
		return
	}

	o.state = Playing
	o.logger.Info("playback started")

	o.sampler.Attach(o.source)
	if err := o.sampler.Start(o.onSample); err != nil {
		o.logger.Warn("band sampler unavailable", "err", err)
		o.resetMood()
	}
	o.fx.SetOverlay(true)
	o.sched.OnStart()
	o.publish()
}

func (o *Orchestrator) stop() {
	o.source.Pause()
	o.sampler.Stop()
	o.state = Stopped
	o.resetMood()
	o.logger.Info("playback stopped")

	o.fx.SetOverlay(false)
	o.sched.OnStop()
	o.publish()
}

func (o *Orchestrator) setVolume(v float64) {
	if o.closed {
		return
	}
	v = player.ClampVolume(v)
	o.volume = v
	o.source.SetVolume(v)
	o.publish()
}

// onSample runs on the sampler goroutine.
func (o *Orchestrator) onSample(b mood.BandSample) {
	o.loop.Post(func() { o.classify(b) })
}

func (o *Orchestrator) classify(b mood.BandSample) {
	if o.closed || o.state != Playing {
		o.logger.Debug("sample dropped", "state", o.state)
		return
	}
	o.band = b
	if m := mood.Classify(b); m != o.mood {
		o.logger.Debug("mood changed", "from", o.mood, "to", m)
		o.mood = m
	}
	o.publish()
}

func (o *Orchestrator) resetMood() {
	o.band = mood.BandSample{}
	o.mood = mood.Normal
}

func (o *Orchestrator) teardown() {
	if o.closed {
		return
	}
	if o.cancelStart != nil {
		o.cancelStart()
		o.cancelStart = nil
	}
	o.starting = false
	o.sched.Cancel()
	o.fx.ClearAll()
	o.fx.SetOverlay(false)
	o.sampler.Stop()
	o.source.Pause()
	o.state = Stopped
	o.resetMood()
	o.closed = true
	o.publish()
	o.logger.Debug("radio closed")
}

// publish stores a fresh snapshot and signals subscribers. It runs on the
// loop, including from registry change hooks.
func (o *Orchestrator) publish() {
	o.snap.Store(&Snapshot{
		State:       o.state,
		Starting:    o.starting,
		Volume:      o.volume,
		Mood:        o.mood,
		Band:        o.band,
		ShowOverlay: o.fx.Overlay(),
		Fireworks:   o.fx.Fireworks(),
		Hearts:      o.fx.Hearts(),
		Crying:      o.fx.Crying(),
	})

	o.subsMu.Lock()
	defer o.subsMu.Unlock()
	for _, sub := range o.subs {
		sub.sendChanged()
	}
}

func (o *Orchestrator) broadcastError(err error) {
	o.subsMu.Lock()
	defer o.subsMu.Unlock()
	for _, sub := range o.subs {
		sub.sendError(err)
	}
}
