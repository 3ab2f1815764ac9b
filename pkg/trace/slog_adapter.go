package trace

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Successful operations are logged at Debug, failures at Warn.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("unit", event.Unit.String()),
		slog.String("board", event.BoardID.String()),
		slog.String("op", event.Operation.String()),
		slog.String("key", event.Key.String()),
		slog.String("status", event.Status.String()),
	}

	if event.Slot != "" {
		attrs = append(attrs, slog.String("slot", event.Slot))
	}
	if event.Subdev != "" {
		attrs = append(attrs, slog.String("subdev", event.Subdev))
	}
	if event.Value != nil {
		attrs = append(attrs, slog.String("value", event.Value.String()))
	}

	level := slog.LevelDebug
	if event.Failed() {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), level, "dboard property", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
