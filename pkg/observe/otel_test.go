package observe

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/notify/pkg/notify"
)

func openSpanCount(h *OTelHook) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.spans)
}

func TestOTelHook_SpanPerNotification(t *testing.T) {
	hook := OpenTelemetry()
	store := notify.NewStore(notify.WithHooks(hook))

	store.Info("a")
	store.Warn("b")

	if got := openSpanCount(hook); got != 2 {
		t.Fatalf("expected 2 open spans, got %d", got)
	}

	store.RemoveOldest()
	if got := openSpanCount(hook); got != 1 {
		t.Errorf("expected 1 open span after removal, got %d", got)
	}

	store.RemoveOldest()
	if got := openSpanCount(hook); got != 0 {
		t.Errorf("expected no open spans, got %d", got)
	}
}

func TestOTelHook_RemovalWithoutSpanIsNoop(t *testing.T) {
	hook := OpenTelemetry()

	// No span was ever opened for this notification.
	hook.NotificationRemoved(notify.Notification{ID: 42})

	if got := openSpanCount(hook); got != 0 {
		t.Errorf("expected no open spans, got %d", got)
	}
}

func TestOTelHook_LevelFilterSkipsBelowMinimum(t *testing.T) {
	hook := OpenTelemetry(WithLevelFilter(notify.LevelWarn))
	store := notify.NewStore(notify.WithHooks(hook))

	store.Debug("skipped")
	store.Info("skipped")
	store.Warn("traced")
	store.Error("traced")

	if got := openSpanCount(hook); got != 2 {
		t.Errorf("expected 2 open spans, got %d", got)
	}
}

func TestOTelHook_NotificationFilter(t *testing.T) {
	hook := OpenTelemetry(WithNotificationFilter(func(n notify.Notification) bool {
		return n.Message != "quiet"
	}))
	store := notify.NewStore(notify.WithHooks(hook))

	store.Info("quiet")
	store.Info("loud")

	if got := openSpanCount(hook); got != 1 {
		t.Errorf("expected 1 open span, got %d", got)
	}
}

func TestOTelHook_AttributeExtractorRuns(t *testing.T) {
	calls := 0
	hook := OpenTelemetry(
		WithTracerName("test"),
		WithIncludeMessage(true),
		WithAttributeExtractor(func(n notify.Notification) []attribute.KeyValue {
			calls++
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)
	store := notify.NewStore(notify.WithHooks(hook))

	store.Info("a")

	if calls != 1 {
		t.Errorf("expected extractor to run once, got %d", calls)
	}
}

func TestOTelHook_CloseEndsOpenSpans(t *testing.T) {
	hook := OpenTelemetry()
	store := notify.NewStore(notify.WithHooks(hook))

	store.Info("a")
	store.Info("b")

	hook.Close()

	if got := openSpanCount(hook); got != 0 {
		t.Errorf("expected Close to end all spans, got %d open", got)
	}
}
