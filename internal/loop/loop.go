// Package loop provides the single logical thread every core mutation runs on.
//
// A Loop executes posted closures and timer callbacks one at a time on the
// goroutine that calls Run. Work is ordered by deadline first and scheduling
// order second, so callbacks due at the same instant run FIFO.
package loop

import (
	"container/heap"
	"sync"
	"time"
)

// Loop is a cooperative event loop with deadline-ordered timers.
type Loop struct {
	mu     sync.Mutex
	queue  timerQueue
	seq    uint64
	closed bool

	wake chan struct{}
	done chan struct{}
}

// New creates a loop. Nothing runs until Run is called.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Now returns the current time as seen by timers on this loop.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Post queues fn to run on the loop after the work already due.
func (l *Loop) Post(fn func()) {
	l.AfterFunc(0, fn)
}

// AfterFunc schedules fn to run on the loop once d has elapsed.
// On a closed loop the returned timer is already stopped.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{loop: l, fn: fn, index: -1}

	l.mu.Lock()
	if l.closed {
		t.stopped = true
		l.mu.Unlock()
		return t
	}
	t.when = time.Now().Add(d)
	l.seq++
	t.seq = l.seq
	heap.Push(&l.queue, t)
	l.mu.Unlock()

	l.notify()
	return t
}

// Call runs fn on the loop and waits for it to return.
// It reports false if the loop closed before fn ran.
// Calling it from a loop callback deadlocks.
func (l *Loop) Call(fn func()) bool {
	ran := make(chan struct{})
	l.Post(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}

// Run executes work until Close is called.
func (l *Loop) Run() {
	for {
		next, wait, ok := l.next()
		if !ok {
			return
		}
		if next != nil {
			next.fn()
			continue
		}
		if !l.sleep(wait) {
			return
		}
	}
}

// Close stops the loop and drops pending work. It is idempotent.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for _, t := range l.queue {
		t.stopped = true
		t.index = -1
	}
	l.queue = nil
	close(l.done)
}

// Done is closed once the loop has been closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Pending returns the number of timers not yet fired.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// next pops the first due timer, or reports how long to wait for one.
// A negative wait means the queue is empty.
func (l *Loop) next() (*Timer, time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, 0, false
	}
	if len(l.queue) == 0 {
		return nil, -1, true
	}
	head := l.queue[0]
	if wait := time.Until(head.when); wait > 0 {
		return nil, wait, true
	}
	heap.Pop(&l.queue)
	head.fired = true
	return head, 0, true
}

func (l *Loop) sleep(wait time.Duration) bool {
	if wait < 0 {
		select {
		case <-l.wake:
			return true
		case <-l.done:
			return false
		}
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-l.wake:
		return true
	case <-l.done:
		return false
	}
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
