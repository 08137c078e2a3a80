// Package logging sets up the slog logger of the regx command with logfmt
// output and string log levels ERROR, WARNING, INFO, DEBUG and TRACE.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelTrace is below slog.LevelDebug, keeping slog's gap of 4.
const LevelTrace = slog.Level(-8)

// NewLogger creates a logfmt logger writing to w. Unknown levels select
// INFO.
func NewLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: replaceLevelName,
	})
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "ERROR":
		return slog.LevelError
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "INFO":
		return slog.LevelInfo
	case "DEBUG":
		return slog.LevelDebug
	case "TRACE":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
