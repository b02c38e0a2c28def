package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/notify/pkg/notify"
)

// Default tracer name for the notification hook.
const defaultTracerName = "notify"

// OTelConfig configures the OpenTelemetry hook.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "notify").
	TracerName string

	// IncludeMessage includes the notification message in span
	// attributes. Messages may contain sensitive information - disabled
	// by default; only the message length is recorded.
	IncludeMessage bool

	// Filter determines which notifications to trace.
	// Return true to trace, false to skip. If nil, all are traced.
	Filter func(n notify.Notification) bool

	// AttributeExtractor extracts custom attributes per notification.
	AttributeExtractor func(n notify.Notification) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry hook.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeMessage enables recording the full message on spans.
func WithIncludeMessage(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeMessage = include
	}
}

// WithLevelFilter traces only notifications at or above the given level.
func WithLevelFilter(min notify.Level) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = func(n notify.Notification) bool {
			return n.Level >= min
		}
	}
}

// WithNotificationFilter sets an arbitrary filter function.
func WithNotificationFilter(filter func(n notify.Notification) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(n notify.Notification) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OTelHook opens one span per notification, from append to removal, so
// the span duration is how long the banner stayed pending.
type OTelHook struct {
	cfg    OTelConfig
	tracer trace.Tracer

	mu    sync.Mutex
	spans map[uint64]trace.Span
}

// OpenTelemetry creates the tracing hook using the global tracer provider.
func OpenTelemetry(opts ...OTelOption) *OTelHook {
	cfg := defaultOTelConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &OTelHook{
		cfg:    cfg,
		tracer: otel.Tracer(cfg.TracerName),
		spans:  make(map[uint64]trace.Span),
	}
}

// NotificationAppended implements notify.Hook.
func (h *OTelHook) NotificationAppended(n notify.Notification) {
	if h.cfg.Filter != nil && !h.cfg.Filter(n) {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.Int64("notify.id", int64(n.ID)),
		attribute.String("notify.level", n.Level.String()),
		attribute.Int("notify.message_length", len(n.Message)),
	}
	if h.cfg.IncludeMessage {
		attrs = append(attrs, attribute.String("notify.message", n.Message))
	}
	if h.cfg.AttributeExtractor != nil {
		attrs = append(attrs, h.cfg.AttributeExtractor(n)...)
	}

	_, span := h.tracer.Start(context.Background(), "notify.notification",
		trace.WithAttributes(attrs...),
	)

	h.mu.Lock()
	h.spans[n.ID] = span
	h.mu.Unlock()
}

// NotificationRemoved implements notify.Hook.
func (h *OTelHook) NotificationRemoved(n notify.Notification) {
	h.mu.Lock()
	span, ok := h.spans[n.ID]
	if ok {
		delete(h.spans, n.ID)
	}
	h.mu.Unlock()

	if ok {
		span.End()
	}
}

// Close ends any spans still open, e.g. for notifications pending when
// the application shuts down.
func (h *OTelHook) Close() {
	h.mu.Lock()
	spans := make([]trace.Span, 0, len(h.spans))
	for _, span := range h.spans {
		spans = append(spans, span)
	}
	h.spans = make(map[uint64]trace.Span)
	h.mu.Unlock()

	for _, span := range spans {
		span.End()
	}
}
