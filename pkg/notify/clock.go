package notify

import "time"

// Clock abstracts timer creation so notification lifecycles can be driven
// deterministically in tests. See the notifytest package for a manual
// implementation.
type Clock interface {
	// AfterFunc schedules fn to run in its own goroutine after d has
	// elapsed and returns the pending timer.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a single pending callback created by a Clock.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from firing.
	Stop() bool
}

// SystemClock returns a Clock backed by the runtime's timers.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (t systemTimer) Stop() bool { return t.t.Stop() }
