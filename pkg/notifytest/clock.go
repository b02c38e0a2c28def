package notifytest

import (
	"sync"
	"time"

	"github.com/vango-dev/notify/pkg/notify"
)

// Clock is a manual notify.Clock. Time only moves when Advance is called;
// due timers fire synchronously on the advancing goroutine.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*fakeTimer
}

// fakeTimer is one pending callback. seq breaks ties between timers due
// at the same instant so firing order matches scheduling order.
type fakeTimer struct {
	clock   *Clock
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// NewClock creates a clock at elapsed time zero with no pending timers.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc implements notify.Clock. Callbacks with non-positive delay
// still wait for the next Advance; nothing fires spontaneously.
func (c *Clock) AfterFunc(d time.Duration, fn func()) notify.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{
		clock: c,
		at:    c.now + d,
		seq:   c.seq,
		fn:    fn,
	}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

// Stop implements notify.Timer.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	for i, pending := range t.clock.timers {
		if pending == t {
			t.clock.timers = append(t.clock.timers[:i], t.clock.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by d, firing every timer that becomes
// due, in due order. Timers scheduled by firing callbacks are eligible
// within the same call if they fall inside the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		t := c.nextDueLocked(target)
		if t == nil {
			break
		}
		c.now = t.at
		t.stopped = true
		c.mu.Unlock()
		t.fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// nextDueLocked removes and returns the earliest timer due at or before
// target, or nil if none is pending.
func (c *Clock) nextDueLocked(target time.Duration) *fakeTimer {
	best := -1
	for i, t := range c.timers {
		if t.at > target {
			continue
		}
		if best < 0 || t.at < c.timers[best].at ||
			(t.at == c.timers[best].at && t.seq < c.timers[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := c.timers[best]
	c.timers = append(c.timers[:best], c.timers[best+1:]...)
	return t
}

// Elapsed returns the total time the clock has been advanced.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of timers waiting to fire.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
