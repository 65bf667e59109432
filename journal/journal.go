// Package journal provides the append-only audit log for simulation events.
// Entries carry a kind, a severity level, and a message; the simulation
// never reads them back.
package journal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Severity grades audit entries. Pulses are routine, escalations are not.
type Severity int

const (
	SeverityMedium Severity = iota
	SeverityHigh
	SeverityExtreme
)

func (s Severity) level() slog.Level {
	switch s {
	case SeverityHigh:
		return slog.LevelWarn
	case SeverityExtreme:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Journal is an append-only audit log. A nil Journal discards everything,
// so systems can hold one unconditionally.
type Journal struct {
	logger *slog.Logger
}

// New creates a journal writing colorized entries to w
func New(w io.Writer) *Journal {
	return &Journal{
		logger: slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.TimeOnly,
		})),
	}
}

// NewWithLogger wraps an existing slog logger, for hosts that already
// configured their own handler
func NewWithLogger(logger *slog.Logger) *Journal {
	return &Journal{logger: logger}
}

// Log appends an entry. args are slog key/value pairs.
func (j *Journal) Log(kind string, severity Severity, msg string, args ...any) {
	if j == nil || j.logger == nil {
		return
	}
	j.logger.With("kind", kind).Log(context.Background(), severity.level(), msg, args...)
}
