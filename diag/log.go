package diag

import (
	"io"
	"log/slog"
)

// Lazy wraps a diagnostic string that is expensive to build; fn only runs if
// the log record is actually emitted.
func Lazy(fn func() string) slog.LogValuer {
	return lazy{fn}
}

type lazy struct {
	fn func() string
}

func (l lazy) LogValue() slog.Value {
	return slog.StringValue(l.fn())
}

// NewLogger returns a text logger writing to w at the given minimum level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
