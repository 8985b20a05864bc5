package loop

import (
	"slices"
	"testing"
	"testing/synctest"
	"time"
)

func startLoop() *Loop {
	l := New()
	go l.Run()
	return l
}

// collect reads a value owned by the loop from the loop goroutine.
func collect(l *Loop, got *[]string) []string {
	var out []string
	l.Call(func() { out = slices.Clone(*got) })
	return out
}

func TestLoop_PostRunsInOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := startLoop()
		defer l.Close()

		var got []string
		l.Post(func() { got = append(got, "a") })
		l.Post(func() { got = append(got, "b") })
		l.Post(func() { got = append(got, "c") })

		if out := collect(l, &got); !slices.Equal(out, []string{"a", "b", "c"}) {
			t.Errorf("order = %v, want [a b c]", out)
		}
	})
}

func TestLoop_TimersFireByDeadline(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := startLoop()
		defer l.Close()

		var got []string
		l.AfterFunc(300*time.Millisecond, func() { got = append(got, "300") })
		l.AfterFunc(100*time.Millisecond, func() { got = append(got, "100") })
		l.AfterFunc(200*time.Millisecond, func() { got = append(got, "200") })

		time.Sleep(150 * time.Millisecond)
		if out := collect(l, &got); !slices.Equal(out, []string{"100"}) {
			t.Errorf("at 150ms got %v, want [100]", out)
		}

		time.Sleep(time.Second)
		if out := collect(l, &got); !slices.Equal(out, []string{"100", "200", "300"}) {
			t.Errorf("got %v, want [100 200 300]", out)
		}
	})
}

func TestLoop_SameDeadlineIsFIFO(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := startLoop()
		defer l.Close()

		var got []string
		l.AfterFunc(500*time.Millisecond, func() { got = append(got, "first") })
		time.Sleep(100 * time.Millisecond)
		// Scheduled later, due at the same instant.
		l.AfterFunc(400*time.Millisecond, func() { got = append(got, "second") })
		l.AfterFunc(400*time.Millisecond, func() { got = append(got, "third") })

		time.Sleep(time.Second)
		want := []string{"first", "second", "third"}
		if out := collect(l, &got); !slices.Equal(out, want) {
			t.Errorf("got %v, want %v", out, want)
		}
	})
}

func TestTimer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := startLoop()
		defer l.Close()

		var got []string
		tm := l.AfterFunc(100*time.Millisecond, func() { got = append(got, "x") })

		if !tm.Stop() {
			t.Error("Stop() on pending timer = false, want true")
		}
		if tm.Stop() {
			t.Error("second Stop() = true, want false")
		}

		time.Sleep(time.Second)
		if out := collect(l, &got); len(out) != 0 {
			t.Errorf("stopped timer ran: %v", out)
		}
		if l.Pending() != 0 {
			t.Errorf("Pending() = %d, want 0", l.Pending())
		}
	})
}

func TestTimer_StopDueTimerFromEarlierCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := startLoop()
		defer l.Close()

		var got []string
		l.Call(func() {
			var victim *Timer
			l.AfterFunc(100*time.Millisecond, func() {
				got = append(got, "canceller")
				victim.Stop()
			})
			victim = l.AfterFunc(100*time.Millisecond, func() { got = append(got, "victim") })
		})

		time.Sleep(time.Second)
		if out := collect(l, &got); !slices.Equal(out, []string{"canceller"}) {
			t.Errorf("got %v, want [canceller]", out)
		}
	})
}

func TestTimer_StopAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := startLoop()
		defer l.Close()

		tm := l.AfterFunc(10*time.Millisecond, func() {})
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		if !tm.Fired() {
			t.Fatal("timer did not fire")
		}
		if tm.Stop() {
			t.Error("Stop() after fire = true, want false")
		}
	})
}

func TestLoop_CloseDropsPendingWork(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := startLoop()

		ran := false
		l.AfterFunc(time.Second, func() { ran = true })
		l.Close()
		l.Close()

		time.Sleep(2 * time.Second)
		if ran {
			t.Error("callback ran after Close")
		}
		if l.Call(func() {}) {
			t.Error("Call() on closed loop = true, want false")
		}
		if tm := l.AfterFunc(0, func() {}); tm.Stop() {
			t.Error("timer on closed loop should already be stopped")
		}
		<-l.Done()
	})
}
