package notify

import (
	"sync"
	"time"
)

// State identifies where a notification is in its visible lifetime.
type State uint8

const (
	// StateVisible is the initial state, entered when the controller is
	// created.
	StateVisible State = iota

	// StateFading marks the notification visually transparent; the
	// opacity transition is running.
	StateFading

	// StateRemoved is terminal: the notification has been removed from
	// the store, either by timeout or by dismissal.
	StateRemoved
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateFading:
		return "fading"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Lifecycle defaults. Timeout is the total visible duration per
// notification; the fade transition occupies the last FadeDuration of it.
const (
	DefaultTimeout      = 3 * time.Second
	DefaultFadeDuration = 300 * time.Millisecond
)

// Controller drives one notification through its timed fade-out and
// removal. It owns at most two pending timers and guarantees that a
// disposed controller never removes anything.
//
// The fade timer fires timeout-fade after creation and moves the
// controller to StateFading; the removal timer fires one fade duration
// later, moves it to StateRemoved, and removes the notification from the
// store by identity.
type Controller struct {
	store *Store
	n     Notification

	clock   Clock
	sched   Scheduler
	timeout time.Duration
	fade    time.Duration

	mu          sync.Mutex
	state       State
	fadeTimer   Timer
	removeTimer Timer
	disposed    bool
}

// ControllerOption configures a Controller.
type ControllerOption interface {
	isControllerOption()
	applyController(c *Controller)
}

type controllerOptionFunc func(*Controller)

func (f controllerOptionFunc) isControllerOption()           {}
func (f controllerOptionFunc) applyController(c *Controller) { f(c) }

// WithTimeout sets the total visible duration before removal completes.
// Non-positive values keep the default.
func WithTimeout(d time.Duration) ControllerOption {
	return controllerOptionFunc(func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	})
}

// WithFadeDuration sets the length of the fade-out transition.
// Non-positive values keep the default.
func WithFadeDuration(d time.Duration) ControllerOption {
	return controllerOptionFunc(func(c *Controller) {
		if d > 0 {
			c.fade = d
		}
	})
}

// WithClock sets the clock used to schedule the lifecycle timers.
func WithClock(clock Clock) ControllerOption {
	return controllerOptionFunc(func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	})
}

// WithScheduler sets the scheduler that timer callbacks are marshalled
// through. By default callbacks run inline on the timer goroutine.
func WithScheduler(sched Scheduler) ControllerOption {
	return controllerOptionFunc(func(c *Controller) {
		if sched != nil {
			c.sched = sched
		}
	})
}

// NewController creates a controller for n in StateVisible and schedules
// the fade timer. The notification is expected to be present in store;
// if it is removed by someone else first, the eventual removal is a no-op.
func NewController(store *Store, n Notification, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:   store,
		n:       n,
		clock:   SystemClock(),
		sched:   syncScheduler{},
		timeout: DefaultTimeout,
		fade:    DefaultFadeDuration,
		state:   StateVisible,
	}
	for _, opt := range opts {
		opt.applyController(c)
	}

	visible := c.timeout - c.fade
	if visible < 0 {
		// A fade at least as long as the timeout starts fading at once.
		visible = 0
	}

	c.mu.Lock()
	c.fadeTimer = c.clock.AfterFunc(visible, func() {
		c.sched.Dispatch(c.enterFading)
	})
	c.mu.Unlock()
	return c
}

// Notification returns the notification this controller drives.
func (c *Controller) Notification() Notification {
	return c.n
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// enterFading handles the fade timer firing.
func (c *Controller) enterFading() {
	c.mu.Lock()
	if c.disposed || c.state != StateVisible {
		c.mu.Unlock()
		return
	}
	c.state = StateFading
	c.fadeTimer = nil
	c.removeTimer = c.clock.AfterFunc(c.fade, func() {
		c.sched.Dispatch(c.enterRemoved)
	})
	c.mu.Unlock()
}

// enterRemoved handles the removal timer firing. The store call happens
// outside the lock: removal notifies subscribers, and a subscriber may
// dispose this controller.
func (c *Controller) enterRemoved() {
	c.mu.Lock()
	if c.disposed || c.state == StateRemoved {
		c.mu.Unlock()
		return
	}
	c.state = StateRemoved
	c.removeTimer = nil
	c.mu.Unlock()

	c.store.Remove(c.n.ID)
}

// Dismiss removes the notification immediately, bypassing any remaining
// fade. It cancels both timers and fires the removal exactly once.
// Dismiss after removal or disposal is a no-op.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	if c.disposed || c.state == StateRemoved {
		c.mu.Unlock()
		return
	}
	c.state = StateRemoved
	ft, rt := c.fadeTimer, c.removeTimer
	c.fadeTimer, c.removeTimer = nil, nil
	c.mu.Unlock()

	if ft != nil {
		ft.Stop()
	}
	if rt != nil {
		rt.Stop()
	}
	c.store.Remove(c.n.ID)
}

// Dispose tears the controller down, cancelling any outstanding timers.
// A disposed controller never invokes the removal; the notification stays
// in the store unless removed through another path. Dispose is idempotent.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	ft, rt := c.fadeTimer, c.removeTimer
	c.fadeTimer, c.removeTimer = nil, nil
	c.mu.Unlock()

	if ft != nil {
		ft.Stop()
	}
	if rt != nil {
		rt.Stop()
	}
}
