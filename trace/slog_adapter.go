package trace

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger. Bound members and
// members skipped by declaration are logged at Debug, failed bindings at Warn
// and failed clicks at Error.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter writing to the given logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Record writes the event.
func (a *SlogAdapter) Record(event Event) {
	attrs := []slog.Attr{
		slog.String("pass", event.PassID),
		slog.String("phase", event.Phase.String()),
		slog.String("owner", event.Owner),
		slog.String("kind", event.Kind),
		slog.Int("id", event.ElementID),
		slog.String("outcome", event.Outcome),
	}
	if event.Member != "" {
		attrs = append(attrs, slog.String("member", event.Member))
	}

	level := slog.LevelDebug
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
		level = slog.LevelWarn
		if event.Phase == PhaseClick {
			level = slog.LevelError
		}
	}

	a.logger.LogAttrs(context.Background(), level, "binding", attrs...)
}

var _ Recorder = (*SlogAdapter)(nil)
