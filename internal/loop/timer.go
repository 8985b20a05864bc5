package loop

import (
	"container/heap"
	"time"
)

// Timer is a callback scheduled on a Loop.
type Timer struct {
	loop    *Loop
	fn      func()
	when    time.Time
	seq     uint64
	index   int
	fired   bool
	stopped bool
}

// Stop prevents the timer from running. It reports whether the call stopped
// a pending timer; it returns false once the timer fired or was stopped.
// A timer already due but not yet executed is removed as well.
func (t *Timer) Stop() bool {
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&l.queue, t.index)
	}
	return true
}

// When returns the deadline of the timer.
func (t *Timer) When() time.Time {
	return t.when
}

// Fired reports whether the callback has been started.
func (t *Timer) Fired() bool {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	return t.fired
}

// timerQueue orders timers by deadline, then by scheduling sequence.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].when.Equal(q[j].when) {
		return q[i].seq < q[j].seq
	}
	return q[i].when.Before(q[j].when)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer) //nolint:forcetypeassert // only timers are pushed
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
