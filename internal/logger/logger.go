// Package logger builds the structured file logger used by courtside.
// The terminal belongs to the UI, so records always go to a file.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"courtside/internal/api"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output string // file path, "stderr", or "discard"
}

// ParseLevel converts a level name into a slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New opens the configured output and returns a logger writing to it.
// The returned closer releases the log file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	case "discard":
		out = io.Discard
	case "":
		return nil, nil, errors.New("log output must not be empty")
	default:
		if dir := filepath.Dir(cfg.Output); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}

	return slog.New(NewHandler(out, cfg.Format, level)), closer, nil
}

// NewHandler returns a text or JSON handler for w
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Sink reports load failures as structured error records
type Sink struct {
	logger *slog.Logger
}

// NewSink wraps logger as a failure sink
func NewSink(logger *slog.Logger) *Sink {
	return &Sink{logger: logger}
}

// LogFailure writes one error record per failed fetch
func (s *Sink) LogFailure(context string, err error) {
	attrs := []any{"context", context, "error", err}

	var netErr *api.NetworkError
	var parseErr *api.ParseError
	switch {
	case errors.As(err, &netErr):
		attrs = append(attrs, "kind", "network", "status", netErr.StatusCode, "request_id", netErr.RequestID)
	case errors.As(err, &parseErr):
		attrs = append(attrs, "kind", "parse", "request_id", parseErr.RequestID)
	}

	s.logger.Error("load failed", attrs...)
}
