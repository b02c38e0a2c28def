package notify

import "sync"

// Store owns the ordered notification queue. It is the only owner of the
// queue: renderers get read-only snapshots via Logs and observe changes via
// Subscribe.
//
// The queue is append-only at the tail. Removal happens either from the
// head (RemoveOldest, the oldest-times-out-first policy) or by identity
// (Remove), so dismissing a non-head notification never removes the wrong
// entry.
type Store struct {
	mu     sync.RWMutex
	nextID uint64
	queue  []Notification

	// subs are the listeners notified after every queue mutation.
	subs   []subscriber
	subSeq uint64
	subMu  sync.RWMutex

	hooks []Hook
}

// subscriber pairs a callback with a unique id so a subscription can be
// cancelled without comparing function values.
type subscriber struct {
	id uint64
	fn func()
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithHooks attaches hooks that observe every append and removal.
func WithHooks(hooks ...Hook) StoreOption {
	return func(s *Store) {
		s.hooks = append(s.hooks, hooks...)
	}
}

// NewStore creates an empty store. The ID counter starts at zero.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds a notification with the next counter value to the tail of
// the queue. All messages are accepted unconditionally.
func (s *Store) Append(level Level, message string) {
	s.mu.Lock()
	n := Notification{ID: s.nextID, Level: level, Message: message}
	s.nextID++
	s.queue = append(s.queue, n)
	s.mu.Unlock()

	for _, h := range s.hooks {
		h.NotificationAppended(n)
	}
	s.notifySubscribers()
}

// Debug appends a DEBUG-level notification.
func (s *Store) Debug(message string) { s.Append(LevelDebug, message) }

// Info appends an INFO-level notification.
func (s *Store) Info(message string) { s.Append(LevelInfo, message) }

// Warn appends a WARN-level notification.
func (s *Store) Warn(message string) { s.Append(LevelWarn, message) }

// Error appends an ERROR-level notification.
func (s *Store) Error(message string) { s.Append(LevelError, message) }

// RemoveOldest removes the notification at the head of the queue.
// It is a no-op on an empty queue.
func (s *Store) RemoveOldest() {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return
	}
	n := s.queue[0]
	s.queue = append(s.queue[:0], s.queue[1:]...)
	s.mu.Unlock()

	for _, h := range s.hooks {
		h.NotificationRemoved(n)
	}
	s.notifySubscribers()
}

// Remove removes the notification with the given id, wherever it sits in
// the queue. It reports whether a notification was removed.
func (s *Store) Remove(id uint64) bool {
	s.mu.Lock()
	idx := -1
	for i, n := range s.queue {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	n := s.queue[idx]
	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
	s.mu.Unlock()

	for _, h := range s.hooks {
		h.NotificationRemoved(n)
	}
	s.notifySubscribers()
	return true
}

// Logs returns a snapshot of the pending notifications, oldest first.
// The returned slice is a copy; mutating it does not affect the queue.
func (s *Store) Logs() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.queue))
	copy(out, s.queue)
	return out
}

// Len returns the number of pending notifications.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queue)
}

// Subscribe registers fn to run after every queue mutation. The returned
// function cancels the subscription; calling it more than once is safe.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.subMu.Lock()
	s.subSeq++
	id := s.subSeq
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// notifySubscribers runs all subscriber callbacks. Subscribers are copied
// before notification so callbacks can subscribe or cancel without
// deadlocking.
func (s *Store) notifySubscribers() {
	s.subMu.RLock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.fn()
	}
}
