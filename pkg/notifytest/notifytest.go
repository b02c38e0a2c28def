package notifytest

import (
	"sync"
	"testing"

	"github.com/vango-dev/notify/pkg/notify"
)

// Recorder is a notify.Hook that captures every append and removal for
// later assertions.
type Recorder struct {
	mu       sync.Mutex
	appended []notify.Notification
	removed  []notify.Notification
}

// NotificationAppended implements notify.Hook.
func (r *Recorder) NotificationAppended(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appended = append(r.appended, n)
}

// NotificationRemoved implements notify.Hook.
func (r *Recorder) NotificationRemoved(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, n)
}

// Appended returns a copy of the captured appends, in order.
func (r *Recorder) Appended() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Notification, len(r.appended))
	copy(out, r.appended)
	return out
}

// Removed returns a copy of the captured removals, in order.
func (r *Recorder) Removed() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Notification, len(r.removed))
	copy(out, r.removed)
	return out
}

// ExpectLogs asserts that the store's pending messages equal want, in
// order. Call with no messages to assert the queue is empty.
func ExpectLogs(t *testing.T, s *notify.Store, want ...string) {
	t.Helper()
	logs := s.Logs()
	if len(logs) != len(want) {
		t.Errorf("expected %d pending notifications, got %d: %v", len(want), len(logs), logs)
		return
	}
	for i, n := range logs {
		if n.Message != want[i] {
			t.Errorf("notification %d: expected message %q, got %q", i, want[i], n.Message)
		}
	}
}

// ExpectLevels asserts that the store's pending levels equal want, in order.
func ExpectLevels(t *testing.T, s *notify.Store, want ...notify.Level) {
	t.Helper()
	logs := s.Logs()
	if len(logs) != len(want) {
		t.Errorf("expected %d pending notifications, got %d", len(want), len(logs))
		return
	}
	for i, n := range logs {
		if n.Level != want[i] {
			t.Errorf("notification %d: expected level %s, got %s", i, want[i], n.Level)
		}
	}
}

// ExpectIDs asserts that the store's pending IDs equal want, in order.
func ExpectIDs(t *testing.T, s *notify.Store, want ...uint64) {
	t.Helper()
	logs := s.Logs()
	if len(logs) != len(want) {
		t.Errorf("expected %d pending notifications, got %d", len(want), len(logs))
		return
	}
	for i, n := range logs {
		if n.ID != want[i] {
			t.Errorf("notification %d: expected id %d, got %d", i, want[i], n.ID)
		}
	}
}

// ExpectState asserts the controller's current lifecycle state.
func ExpectState(t *testing.T, c *notify.Controller, want notify.State) {
	t.Helper()
	if got := c.State(); got != want {
		t.Errorf("expected state %s, got %s", want, got)
	}
}
