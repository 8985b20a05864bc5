// Package effects owns the live visual effect objects and their lifetimes.
package effects

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/llehouerou/radiowaves/internal/loop"
)

// Clock schedules expiry callbacks on the loop that owns the registry.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) *loop.Timer
}

// Verify Loop satisfies Clock at compile time.
var _ Clock = (*loop.Loop)(nil)

// TTL holds the time-to-live of each effect kind.
type TTL struct {
	Firework time.Duration
	Heart    time.Duration
	Crying   time.Duration
}

// DefaultTTL returns the lifetimes used when none are configured.
func DefaultTTL() TTL {
	return TTL{
		Firework: time.Second,
		Heart:    3 * time.Second,
		Crying:   3 * time.Second,
	}
}

// Of returns the lifetime of kind k, 0 for an unknown kind.
func (t TTL) Of(k Kind) time.Duration {
	switch k {
	case Firework:
		return t.Firework
	case HeartEmoji:
		return t.Heart
	case CryingEmoji:
		return t.Crying
	}
	return 0
}

type entry struct {
	obj   Object
	timer *loop.Timer
}

// Registry holds the firework, heart and crying collections plus the
// balloons-overlay flag. It must only be used from its clock's loop.
type Registry struct {
	clock    Clock
	ttl      TTL
	logger   *log.Logger
	newID    func() string
	onChange func()

	live    [kindCount][]*entry
	overlay bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithIDs replaces the id generator.
func WithIDs(fn func() string) Option {
	return func(r *Registry) { r.newID = fn }
}

// NewRegistry creates an empty registry. Zero TTL fields fall back to
// DefaultTTL.
func NewRegistry(clock Clock, ttl TTL, opts ...Option) *Registry {
	def := DefaultTTL()
	if ttl.Firework <= 0 {
		ttl.Firework = def.Firework
	}
	if ttl.Heart <= 0 {
		ttl.Heart = def.Heart
	}
	if ttl.Crying <= 0 {
		ttl.Crying = def.Crying
	}

	r := &Registry{
		clock:  clock,
		ttl:    ttl,
		logger: log.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnChange registers fn to be called after every mutation.
func (r *Registry) OnChange(fn func()) {
	r.onChange = fn
}

// SpawnFirework adds a firework at (x, y) and returns its id.
func (r *Registry) SpawnFirework(x, y float64) string {
	return r.spawn(Firework, x, y)
}

// SpawnHeartEmoji adds a heart emoji at (x, y) and returns its id.
func (r *Registry) SpawnHeartEmoji(x, y float64) string {
	return r.spawn(HeartEmoji, x, y)
}

// SpawnCryingEmoji adds a crying emoji at (x, y) and returns its id.
func (r *Registry) SpawnCryingEmoji(x, y float64) string {
	return r.spawn(CryingEmoji, x, y)
}

func (r *Registry) spawn(kind Kind, x, y float64) string {
	e := &entry{obj: Object{
		ID:        r.newID(),
		Kind:      kind,
		X:         x,
		Y:         y,
		CreatedAt: r.clock.Now(),
	}}
	id := e.obj.ID
	e.timer = r.clock.AfterFunc(r.ttl.Of(kind), func() { r.expire(kind, id) })
	r.live[kind] = append(r.live[kind], e)

	r.logger.Debug("effect spawned", "kind", kind, "id", id, "x", x, "y", y)
	r.changed()
	return id
}

// expire removes a single object, leaving the others and their timers intact.
func (r *Registry) expire(kind Kind, id string) {
	before := len(r.live[kind])
	r.live[kind] = slices.DeleteFunc(r.live[kind], func(e *entry) bool {
		return e.obj.ID == id
	})
	if len(r.live[kind]) == before {
		return
	}
	r.logger.Debug("effect expired", "kind", kind, "id", id)
	r.changed()
}

// ClearAll empties every collection and cancels pending expiry timers.
func (r *Registry) ClearAll() {
	cleared := 0
	for k := range r.live {
		for _, e := range r.live[k] {
			e.timer.Stop()
		}
		cleared += len(r.live[k])
		r.live[k] = nil
	}
	if cleared > 0 {
		r.changed()
	}
}

// SetOverlay sets the balloons-overlay flag.
func (r *Registry) SetOverlay(show bool) {
	if r.overlay == show {
		return
	}
	r.overlay = show
	r.changed()
}

// Overlay reports whether the balloons overlay is shown.
func (r *Registry) Overlay() bool {
	return r.overlay
}

// Fireworks returns the live fireworks in spawn order.
func (r *Registry) Fireworks() []Object { return r.objects(Firework) }

// Hearts returns the live heart emoji in spawn order.
func (r *Registry) Hearts() []Object { return r.objects(HeartEmoji) }

// Crying returns the live crying emoji in spawn order.
func (r *Registry) Crying() []Object { return r.objects(CryingEmoji) }

// Len returns the number of live objects of a kind.
func (r *Registry) Len(kind Kind) int {
	if !kind.valid() {
		return 0
	}
	return len(r.live[kind])
}

func (r *Registry) objects(kind Kind) []Object {
	out := make([]Object, len(r.live[kind]))
	for i, e := range r.live[kind] {
		out[i] = e.obj
	}
	return out
}

func (r *Registry) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}
