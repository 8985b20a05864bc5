package effects

import (
	"fmt"
	"io"
	"testing"
	"testing/synctest"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/radiowaves/internal/loop"
)

func newTestRegistry(l *loop.Loop) *Registry {
	n := 0
	return NewRegistry(l, DefaultTTL(),
		WithLogger(log.New(io.Discard)),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("fx-%d", n)
		}),
	)
}

// on runs fn on the loop and waits for it.
func on(l *loop.Loop, fn func()) {
	l.Call(fn)
}

func ids(objs []Object) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.ID
	}
	return out
}

func TestRegistry_SpawnAppendsToOwnCollection(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		go l.Run()
		defer l.Close()
		r := newTestRegistry(l)

		var fw, heart, cry string
		on(l, func() {
			fw = r.SpawnFirework(10, 20)
			heart = r.SpawnHeartEmoji(1, 2)
			cry = r.SpawnCryingEmoji(3, 4)
		})

		var fireworks, hearts, crying []Object
		on(l, func() {
			fireworks, hearts, crying = r.Fireworks(), r.Hearts(), r.Crying()
		})

		require.Len(t, fireworks, 1)
		require.Len(t, hearts, 1)
		require.Len(t, crying, 1)

		got := fireworks[0]
		assert.Equal(t, fw, got.ID)
		assert.Equal(t, Firework, got.Kind)
		assert.InDelta(t, 10.0, got.X, 1e-9)
		assert.InDelta(t, 20.0, got.Y, 1e-9)
		assert.False(t, got.CreatedAt.After(l.Now()))

		assert.Equal(t, heart, hearts[0].ID)
		assert.Equal(t, cry, crying[0].ID)
	})
}

func TestRegistry_ObjectsExpireAfterTTL(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		go l.Run()
		defer l.Close()
		r := newTestRegistry(l)

		on(l, func() {
			r.SpawnFirework(0, 0)
			r.SpawnHeartEmoji(0, 0)
			r.SpawnCryingEmoji(0, 0)
		})

		time.Sleep(999 * time.Millisecond)
		on(l, func() { assert.Equal(t, 1, r.Len(Firework), "firework alive before TTL") })

		time.Sleep(2 * time.Millisecond)
		on(l, func() {
			assert.Equal(t, 0, r.Len(Firework), "firework expired after 1s")
			assert.Equal(t, 1, r.Len(HeartEmoji))
			assert.Equal(t, 1, r.Len(CryingEmoji))
		})

		time.Sleep(2 * time.Second)
		on(l, func() {
			assert.Equal(t, 0, r.Len(HeartEmoji))
			assert.Equal(t, 0, r.Len(CryingEmoji))
		})
	})
}

func TestRegistry_ExpiryKeepsOthersInOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		go l.Run()
		defer l.Close()
		r := newTestRegistry(l)

		on(l, func() { r.SpawnCryingEmoji(1, 1) })
		time.Sleep(time.Second)
		on(l, func() { r.SpawnCryingEmoji(2, 2) })
		time.Sleep(time.Second)
		on(l, func() { r.SpawnCryingEmoji(3, 3) })

		// First emoji expires at 3s, the others keep their position and timers.
		time.Sleep(1500 * time.Millisecond)
		on(l, func() {
			crying := r.Crying()
			assert.Equal(t, []string{"fx-2", "fx-3"}, ids(crying))
			assert.InDelta(t, 2.0, crying[0].X, 1e-9)
			assert.InDelta(t, 3.0, crying[1].X, 1e-9)
		})

		time.Sleep(time.Second)
		on(l, func() { assert.Equal(t, []string{"fx-3"}, ids(r.Crying())) })

		time.Sleep(time.Second)
		on(l, func() { assert.Empty(t, r.Crying()) })
	})
}

func TestRegistry_ClearAll(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		go l.Run()
		defer l.Close()
		r := newTestRegistry(l)

		changes := 0
		on(l, func() {
			r.OnChange(func() { changes++ })
			r.SpawnFirework(0, 0)
			r.SpawnFirework(1, 1)
			r.SpawnHeartEmoji(0, 0)
			r.SpawnCryingEmoji(0, 0)
			r.ClearAll()
		})

		on(l, func() {
			assert.Empty(t, r.Fireworks())
			assert.Empty(t, r.Hearts())
			assert.Empty(t, r.Crying())
			assert.Equal(t, 5, changes)
		})
		assert.Equal(t, 0, l.Pending(), "expiry timers cancelled")

		on(l, func() {
			r.ClearAll()
			assert.Equal(t, 5, changes, "clearing an empty registry is a no-op")
		})
	})
}

func TestRegistry_OverlayFlag(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		go l.Run()
		defer l.Close()
		r := newTestRegistry(l)

		changes := 0
		on(l, func() {
			r.OnChange(func() { changes++ })
			assert.False(t, r.Overlay())
			r.SetOverlay(true)
			r.SetOverlay(true)
			assert.True(t, r.Overlay())
			r.SetOverlay(false)
		})
		on(l, func() { assert.Equal(t, 2, changes) })
	})
}

func TestRegistry_SnapshotsAreCopies(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		go l.Run()
		defer l.Close()
		r := newTestRegistry(l)

		on(l, func() {
			r.SpawnFirework(5, 5)
			got := r.Fireworks()
			got[0].X = 99
			assert.InDelta(t, 5.0, r.Fireworks()[0].X, 1e-9)
		})
	})
}

func TestNewRegistry_DefaultsZeroTTL(t *testing.T) {
	r := NewRegistry(loop.New(), TTL{Heart: 5 * time.Second})
	assert.Equal(t, time.Second, r.ttl.Firework)
	assert.Equal(t, 5*time.Second, r.ttl.Heart)
	assert.Equal(t, 3*time.Second, r.ttl.Crying)
	assert.Equal(t, 0, r.Len(Kind(9)))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "firework", Firework.String())
	assert.Equal(t, "heart", HeartEmoji.String())
	assert.Equal(t, "crying", CryingEmoji.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
