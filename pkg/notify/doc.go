// Package notify provides transient, auto-dismissing notifications ("toasts")
// for server-driven Go applications.
//
// Application code emits leveled messages through a Store or a Region; the
// rendering layer reads the ordered queue via Logs and re-renders whenever it
// changes. Each visible notification is driven by a Controller, a small state
// machine that fades the banner out after a timeout and then removes it from
// the queue.
//
// # Core Types
//
// Store owns the ordered notification queue:
//
//	store := notify.NewStore()
//	store.Info("Changes saved")
//	store.Error("Failed to delete item")
//	for _, n := range store.Logs() {
//	    fmt.Println(n.ID, n.Level, n.Message)
//	}
//
// Region is the provider scope used by applications. It owns a Store, mounts
// one Controller per visible notification, and tears everything down on
// Dispose:
//
//	region := notify.NewRegion(
//	    notify.WithDefaults(notify.WithTimeout(5*time.Second)),
//	)
//	defer region.Dispose()
//
//	region.Warn("This action cannot be undone")
//
// # Lifecycle
//
// A notification moves through three states:
//
//	StateVisible -> StateFading -> StateRemoved
//
// The fade begins timeout-fade after the controller is created, removal
// follows one fade duration later. Dismiss short-circuits both timers and
// removes the notification immediately. Dispose cancels any pending timers
// without removing anything.
//
// # Injection
//
// The region is passed to components as an explicit capability rather than a
// global. NewContext and FromContext carry it through a context.Context:
//
//	ctx = notify.NewContext(ctx, region)
//	...
//	if r := notify.FromContext(ctx); r != nil {
//	    r.Info("New features available")
//	}
//
// # Thread Safety
//
// Store and Region are safe for concurrent use. Timer callbacks can be
// serialized onto a single goroutine by configuring a Loop as the
// controller Scheduler; by default they run on the timer's goroutine.
package notify
