package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the application's structured logger.
var Logger *slog.Logger

func init() {
	// Discard until Init is called so packages can log unconditionally.
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a --log-level value onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Init points Logger at logPath. An empty path discards everything. At debug
// level records are mirrored to stderr. The returned closer releases the log
// file.
func Init(level slog.Level, logPath string) (io.Closer, error) {
	opts := &slog.HandlerOptions{Level: level}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, err
		}
		w, closer = f, f
	}
	if level <= slog.LevelDebug {
		w = io.MultiWriter(w, os.Stderr)
	}

	Logger = slog.New(slog.NewTextHandler(w, opts))
	return closer, nil
}

// For returns Logger tagged with a component name.
func For(component string) *slog.Logger {
	return Logger.With("component", component)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
