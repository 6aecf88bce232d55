// ABOUTME: Structured logging configuration using log/slog
// ABOUTME: Writes to a rotated debug.log in the config dir so the TUI display stays clean

package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the file created inside the config directory
const LogFileName = "debug.log"

// Options controls where and how logs are written
type Options struct {
	Dir    string // empty disables file output and discards logs
	Level  string // debug, info, warn, error (default: info)
	Format string // text, json (default: text)
}

// Init configures the default slog logger and returns a closer for the
// underlying log file. Callers should defer the closer.
func Init(opts Options) io.Closer {
	var out io.WriteCloser = nopCloser{io.Discard}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0700); err == nil {
			out = &lumberjack.Logger{
				Filename:   filepath.Join(opts.Dir, LogFileName),
				MaxSize:    5, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			}
		}
	}

	slog.SetDefault(slog.New(newHandler(out, opts)))
	return out
}

func newHandler(w io.Writer, opts Options) slog.Handler {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	}
	if strings.ToLower(opts.Format) == "json" {
		return slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.NewTextHandler(w, handlerOpts)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
