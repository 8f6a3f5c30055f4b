package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewWithWriter creates a configured application logger writing to w.
// Commands pass stderr so that stdout stays reserved for demo output and
// MCP JSON-RPC. It standardizes common keys (e.g., "error" -> "err").
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
// "off" and "none" are reported as ok=false so callers can use NewNop.
func ParseLevel(s string) (level slog.Level, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none":
		return 0, false, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	default:
		return 0, false, fmt.Errorf("unknown log level %q", s)
	}
}

// FromLevelName builds a logger writing to w from a level name, falling
// back to NewNop when logging is off. A nil w means os.Stderr.
func FromLevelName(w io.Writer, name string) (*slog.Logger, error) {
	level, ok, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewNop(), nil
	}
	if w == nil {
		w = os.Stderr
	}
	return NewWithWriter(w, level), nil
}
