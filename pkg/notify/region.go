package notify

import (
	"sync"
	"sync/atomic"
)

// Region is the provider scope for notifications: it owns a Store, mounts
// one Controller per visible notification, and disposes everything when
// the hosting UI region unmounts.
//
// The queue's lifecycle is tied to the Region: created empty on mount,
// grows and shrinks for the Region's lifetime, and is discarded on
// Dispose. No timer outlives its Region.
type Region struct {
	store *Store

	// ctrlOpts are the default options applied to every mounted
	// controller (timeout, fade, clock, scheduler).
	ctrlOpts []ControllerOption

	// maxVisible caps how many queued notifications are rendered at
	// once. Zero means all pending notifications are stacked.
	maxVisible int

	mu          sync.Mutex
	controllers map[uint64]*Controller
	order       []uint64 // mount order, for reverse-order disposal
	cleanups    []func()

	cancelSub func()
	disposed  atomic.Bool
}

// RegionOption configures a Region.
type RegionOption interface {
	isRegionOption()
	applyRegion(r *Region)
}

type regionOptionFunc func(*Region)

func (f regionOptionFunc) isRegionOption()       {}
func (f regionOptionFunc) applyRegion(r *Region) { f(r) }

// WithDefaults sets controller options applied to every notification the
// region mounts, e.g. WithTimeout for the provider-wide visible duration.
func WithDefaults(opts ...ControllerOption) RegionOption {
	return regionOptionFunc(func(r *Region) {
		r.ctrlOpts = append(r.ctrlOpts, opts...)
	})
}

// WithMaxVisible caps how many notifications are visible at once. Items
// beyond the cap stay queued without a running lifecycle until earlier
// removals promote them into view. Zero (the default) shows all.
func WithMaxVisible(n int) RegionOption {
	return regionOptionFunc(func(r *Region) {
		if n >= 0 {
			r.maxVisible = n
		}
	})
}

// WithStoreOptions forwards options to the region's store, e.g. WithHooks.
func WithStoreOptions(opts ...StoreOption) RegionOption {
	return regionOptionFunc(func(r *Region) {
		r.store = NewStore(opts...)
	})
}

// NewRegion creates a region with an empty store and subscribes to it.
// Append a notification through the region (or its store) and a
// controller is mounted for it automatically.
func NewRegion(opts ...RegionOption) *Region {
	r := &Region{
		controllers: make(map[uint64]*Controller),
	}
	for _, opt := range opts {
		opt.applyRegion(r)
	}
	if r.store == nil {
		r.store = NewStore()
	}
	r.cancelSub = r.store.Subscribe(r.reconcile)
	return r
}

// Store returns the region's notification store.
func (r *Region) Store() *Store { return r.store }

// Debug appends a DEBUG-level notification.
func (r *Region) Debug(message string) { r.store.Debug(message) }

// Info appends an INFO-level notification.
func (r *Region) Info(message string) { r.store.Info(message) }

// Warn appends a WARN-level notification.
func (r *Region) Warn(message string) { r.store.Warn(message) }

// Error appends an ERROR-level notification.
func (r *Region) Error(message string) { r.store.Error(message) }

// Logs returns a snapshot of the pending notifications, oldest first.
func (r *Region) Logs() []Notification { return r.store.Logs() }

// Controller returns the mounted controller for the given notification,
// or nil if the notification is not currently visible.
func (r *Region) Controller(id uint64) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.controllers[id]
}

// Dismiss removes the notification with the given id immediately. If a
// controller is mounted for it, its timers are cancelled first.
func (r *Region) Dismiss(id uint64) {
	r.mu.Lock()
	c := r.controllers[id]
	r.mu.Unlock()

	if c != nil {
		c.Dismiss()
		return
	}
	r.store.Remove(id)
}

// OnCleanup registers fn to run when the region is disposed. If the
// region is already disposed, fn runs immediately.
func (r *Region) OnCleanup(fn func()) {
	if r.disposed.Load() {
		fn()
		return
	}
	r.mu.Lock()
	r.cleanups = append(r.cleanups, fn)
	r.mu.Unlock()
}

// reconcile brings the mounted controllers in line with the visible
// window of the queue: a controller is created for every notification
// entering the window and disposed for every notification that left the
// store, cancelling its timers.
func (r *Region) reconcile() {
	if r.disposed.Load() {
		return
	}

	r.mu.Lock()
	// Snapshot under r.mu: a mutation on another goroutine cannot slip
	// between the read and the controller update, so a controller is
	// never mounted for a notification that has already left the store.
	visible := r.store.Logs()
	if r.maxVisible > 0 && len(visible) > r.maxVisible {
		visible = visible[:r.maxVisible]
	}
	want := make(map[uint64]Notification, len(visible))
	for _, n := range visible {
		want[n.ID] = n
	}

	var stale []*Controller
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := want[id]; ok {
			kept = append(kept, id)
			continue
		}
		stale = append(stale, r.controllers[id])
		delete(r.controllers, id)
	}
	r.order = kept

	for _, n := range visible {
		if _, ok := r.controllers[n.ID]; ok {
			continue
		}
		r.controllers[n.ID] = NewController(r.store, n, r.ctrlOpts...)
		r.order = append(r.order, n.ID)
	}
	r.mu.Unlock()

	// Dispose outside the lock so a controller callback can never
	// re-enter reconcile while r.mu is held.
	for _, c := range stale {
		c.Dispose()
	}
}

// Dispose unmounts the region: the store subscription is cancelled, every
// mounted controller is disposed (newest first), and cleanups run in
// reverse registration order. Dispose is idempotent.
func (r *Region) Dispose() {
	if r.disposed.Swap(true) {
		return
	}
	if r.cancelSub != nil {
		r.cancelSub()
	}

	r.mu.Lock()
	ctrls := make([]*Controller, 0, len(r.order))
	for _, id := range r.order {
		ctrls = append(ctrls, r.controllers[id])
	}
	cleanups := r.cleanups
	r.controllers = make(map[uint64]*Controller)
	r.order = nil
	r.cleanups = nil
	r.mu.Unlock()

	for i := len(ctrls) - 1; i >= 0; i-- {
		ctrls[i].Dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// IsDisposed reports whether the region has been disposed.
func (r *Region) IsDisposed() bool {
	return r.disposed.Load()
}
