package observe

import (
	"github.com/rs/zerolog"

	"github.com/vango-dev/notify/pkg/notify"
)

// LogHook emits one zerolog event per store mutation: appends log at the
// notification's own level, removals at debug level.
type LogHook struct {
	log zerolog.Logger
}

// Logging creates a logging hook writing through the given logger.
func Logging(log zerolog.Logger) *LogHook {
	return &LogHook{log: log}
}

// NotificationAppended implements notify.Hook.
func (h *LogHook) NotificationAppended(n notify.Notification) {
	h.log.WithLevel(zerologLevel(n.Level)).
		Uint64("id", n.ID).
		Msg(n.Message)
}

// NotificationRemoved implements notify.Hook.
func (h *LogHook) NotificationRemoved(n notify.Notification) {
	h.log.Debug().
		Uint64("id", n.ID).
		Str("level", n.Level.String()).
		Msg("notification removed")
}

// zerologLevel maps a notification level onto the zerolog scale.
func zerologLevel(l notify.Level) zerolog.Level {
	switch l {
	case notify.LevelDebug:
		return zerolog.DebugLevel
	case notify.LevelInfo:
		return zerolog.InfoLevel
	case notify.LevelWarn:
		return zerolog.WarnLevel
	case notify.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
