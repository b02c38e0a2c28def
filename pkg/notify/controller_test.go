package notify_test

import (
	"testing"
	"time"

	"github.com/vango-dev/notify/pkg/notify"
	"github.com/vango-dev/notify/pkg/notifytest"
)

// newTestController appends one notification and mounts a controller for
// it on a manual clock.
func newTestController(t *testing.T, opts ...notify.ControllerOption) (*notify.Store, *notify.Controller, *notifytest.Clock, *notifytest.Recorder) {
	t.Helper()
	clock := notifytest.NewClock()
	rec := &notifytest.Recorder{}
	store := notify.NewStore(notify.WithHooks(rec))
	store.Info("hello")

	opts = append([]notify.ControllerOption{notify.WithClock(clock)}, opts...)
	c := notify.NewController(store, store.Logs()[0], opts...)
	return store, c, clock, rec
}

func TestControllerTimedLifecycle(t *testing.T) {
	store, c, clock, rec := newTestController(t,
		notify.WithTimeout(3000*time.Millisecond),
		notify.WithFadeDuration(300*time.Millisecond),
	)

	notifytest.ExpectState(t, c, notify.StateVisible)

	clock.Advance(2699 * time.Millisecond)
	notifytest.ExpectState(t, c, notify.StateVisible)

	clock.Advance(1 * time.Millisecond)
	notifytest.ExpectState(t, c, notify.StateFading)

	clock.Advance(299 * time.Millisecond)
	notifytest.ExpectState(t, c, notify.StateFading)

	clock.Advance(1 * time.Millisecond)
	notifytest.ExpectState(t, c, notify.StateRemoved)

	if store.Len() != 0 {
		t.Errorf("expected empty queue after removal, got %d", store.Len())
	}
	if got := len(rec.Removed()); got != 1 {
		t.Errorf("expected exactly one removal, got %d", got)
	}
}

func TestControllerFullLifecycleInOneAdvance(t *testing.T) {
	store, c, clock, _ := newTestController(t)

	// The removal timer is scheduled by the fade callback; both fire
	// within a single window.
	clock.Advance(notify.DefaultTimeout)

	notifytest.ExpectState(t, c, notify.StateRemoved)
	notifytest.ExpectLogs(t, store)
}

func TestControllerDisposeCancelsTimers(t *testing.T) {
	store, c, clock, rec := newTestController(t)

	clock.Advance(1000 * time.Millisecond)
	c.Dispose()
	clock.Advance(10 * time.Second)

	notifytest.ExpectState(t, c, notify.StateVisible)
	if got := len(rec.Removed()); got != 0 {
		t.Errorf("expected zero removals from a disposed controller, got %d", got)
	}
	if store.Len() != 1 {
		t.Errorf("expected notification to remain in queue, got %d", store.Len())
	}
	if clock.Pending() != 0 {
		t.Errorf("expected no pending timers after dispose, got %d", clock.Pending())
	}
}

func TestControllerDisposeDuringFade(t *testing.T) {
	_, c, clock, rec := newTestController(t)

	clock.Advance(notify.DefaultTimeout - notify.DefaultFadeDuration)
	notifytest.ExpectState(t, c, notify.StateFading)

	c.Dispose()
	clock.Advance(time.Second)

	if got := len(rec.Removed()); got != 0 {
		t.Errorf("expected zero removals, got %d", got)
	}
}

func TestControllerDismissRemovesImmediately(t *testing.T) {
	store, c, clock, rec := newTestController(t)

	clock.Advance(500 * time.Millisecond)
	c.Dismiss()

	notifytest.ExpectState(t, c, notify.StateRemoved)
	notifytest.ExpectLogs(t, store)
	if got := len(rec.Removed()); got != 1 {
		t.Fatalf("expected one removal, got %d", got)
	}

	// The cancelled timers must not remove anything else.
	clock.Advance(10 * time.Second)
	if got := len(rec.Removed()); got != 1 {
		t.Errorf("expected removal to fire exactly once, got %d", got)
	}
}

func TestControllerDismissIsIdempotent(t *testing.T) {
	_, c, _, rec := newTestController(t)

	c.Dismiss()
	c.Dismiss()

	if got := len(rec.Removed()); got != 1 {
		t.Errorf("expected one removal, got %d", got)
	}
}

func TestControllerDismissAfterDisposeIsNoop(t *testing.T) {
	store, c, _, rec := newTestController(t)

	c.Dispose()
	c.Dismiss()

	if got := len(rec.Removed()); got != 0 {
		t.Errorf("expected zero removals, got %d", got)
	}
	if store.Len() != 1 {
		t.Errorf("expected notification to remain, got %d pending", store.Len())
	}
}

func TestControllerDisposeIsIdempotent(t *testing.T) {
	_, c, _, _ := newTestController(t)

	c.Dispose()
	c.Dispose()

	notifytest.ExpectState(t, c, notify.StateVisible)
}

func TestControllerFadeLongerThanTimeout(t *testing.T) {
	_, c, clock, _ := newTestController(t,
		notify.WithTimeout(300*time.Millisecond),
		notify.WithFadeDuration(500*time.Millisecond),
	)

	// The visible phase is clamped to zero: fading starts at once.
	clock.Advance(0)
	notifytest.ExpectState(t, c, notify.StateFading)

	clock.Advance(500 * time.Millisecond)
	notifytest.ExpectState(t, c, notify.StateRemoved)
}

func TestControllerRemovalByIdentityNotHead(t *testing.T) {
	clock := notifytest.NewClock()
	store := notify.NewStore()
	store.Info("a")
	store.Info("b")

	// Drive only the second notification's lifecycle.
	c := notify.NewController(store, store.Logs()[1], notify.WithClock(clock))
	clock.Advance(notify.DefaultTimeout)

	notifytest.ExpectState(t, c, notify.StateRemoved)
	notifytest.ExpectLogs(t, store, "a")
}

func TestControllerMarshalsThroughScheduler(t *testing.T) {
	clock := notifytest.NewClock()
	store := notify.NewStore()
	store.Info("hello")

	dispatches := 0
	sched := schedulerFunc(func(fn func()) {
		dispatches++
		fn()
	})

	c := notify.NewController(store, store.Logs()[0],
		notify.WithClock(clock),
		notify.WithScheduler(sched),
	)

	clock.Advance(notify.DefaultTimeout)

	notifytest.ExpectState(t, c, notify.StateRemoved)
	if dispatches != 2 {
		t.Errorf("expected 2 dispatched callbacks (fade, removal), got %d", dispatches)
	}
}

// schedulerFunc adapts a function to the notify.Scheduler interface.
type schedulerFunc func(fn func())

func (f schedulerFunc) Dispatch(fn func()) { f(fn) }

func TestControllerNotificationAccessor(t *testing.T) {
	_, c, _, _ := newTestController(t)

	n := c.Notification()
	if n.ID != 0 || n.Message != "hello" {
		t.Errorf("unexpected notification %+v", n)
	}
}

func TestStateString(t *testing.T) {
	cases := []struct {
		state notify.State
		want  string
	}{
		{notify.StateVisible, "visible"},
		{notify.StateFading, "fading"},
		{notify.StateRemoved, "removed"},
		{notify.State(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}
