package notify

// Hook observes store mutations. Hooks are the attachment point for
// metrics, tracing, and logging; see the observe package for ready-made
// implementations.
//
// Callbacks run synchronously on the mutating goroutine, after the queue
// has been updated and before subscribers are notified. Implementations
// must be safe for concurrent use and must not call back into the Store.
type Hook interface {
	// NotificationAppended is called once for every notification added
	// to the queue.
	NotificationAppended(n Notification)

	// NotificationRemoved is called once for every notification removed
	// from the queue, whether by timeout, dismissal, or head-removal.
	NotificationRemoved(n Notification)
}
