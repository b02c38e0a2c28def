// Package observe provides ready-made notify.Hook implementations for
// metrics, tracing, and structured logging.
//
// Hooks attach at store construction and see every append and removal:
//
//	store := notify.NewStore(notify.WithHooks(
//	    observe.Prometheus(observe.WithNamespace("myapp")),
//	    observe.OpenTelemetry(),
//	    observe.Logging(logger),
//	))
//
// # Prometheus
//
// The Prometheus hook exports counters for appended and removed
// notifications (labelled by level) and a gauge of currently pending
// notifications. One hook registers its collectors once; create at most
// one hook per registry.
//
// # OpenTelemetry
//
// The OpenTelemetry hook opens one span per notification when it is
// appended and ends it on removal, so the span duration is the time a
// banner stayed pending. With no tracer provider configured the spans are
// no-ops.
//
// # Logging
//
// The Logging hook emits one zerolog event per append (at the
// notification's own level) and one debug event per removal.
package observe
