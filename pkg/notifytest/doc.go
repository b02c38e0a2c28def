// Package notifytest provides testing helpers for notification lifecycles.
//
// The notifytest package makes timed behavior deterministic: a manual
// Clock stands in for the runtime timers, and a Recorder captures store
// mutations for assertions.
//
// # Quick Start
//
//	func TestBannerExpires(t *testing.T) {
//	    clock := notifytest.NewClock()
//	    store := notify.NewStore()
//	    store.Info("saved")
//
//	    c := notify.NewController(store, store.Logs()[0],
//	        notify.WithClock(clock),
//	    )
//
//	    clock.Advance(3 * time.Second)
//	    notifytest.ExpectState(t, c, notify.StateRemoved)
//	    notifytest.ExpectLogs(t, store)
//	}
//
// # Manual Clock
//
// Clock.Advance moves time forward and fires due timers synchronously, in
// due order, on the caller's goroutine. Timers scheduled by a firing
// callback are themselves eligible within the same Advance, so a full
// fade-and-remove sequence can be driven by a single call.
//
// # Recorder
//
// Recorder implements notify.Hook and captures every append and removal:
//
//	rec := &notifytest.Recorder{}
//	store := notify.NewStore(notify.WithHooks(rec))
//	store.Warn("careful")
//	if len(rec.Appended()) != 1 { ... }
package notifytest
