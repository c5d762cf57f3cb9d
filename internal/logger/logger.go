// Package logger provides structured logging with configurable verbosity
// and output destinations. Console output goes to stderr through a colored
// tint handler; an optional log file receives the same records as plain
// text, opened in append mode.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Logger manages application logging. It fans each record out to the
// console handler and, when configured, the log-file handler.
type Logger struct {
	slogger    *slog.Logger
	fileWriter io.WriteCloser
}

// globalLogger is the singleton logger instance used throughout the
// application.
var globalLogger *Logger

// SetupLogging initializes the global logger.
//
// verbose enables debug-level output; logFile, if non-empty, additionally
// writes every record to the given file as uncolored text. Returns an
// error if the log file cannot be opened.
func SetupLogging(verbose bool, logFile string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	})}

	var fileWriter io.WriteCloser
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		fileWriter = f
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	globalLogger = &Logger{
		slogger:    slog.New(multiHandler(handlers)),
		fileWriter: fileWriter,
	}
	return nil
}

// Close closes the log file if one was opened. Safe to call without a log
// file and safe to call more than once.
func Close() error {
	if globalLogger != nil && globalLogger.fileWriter != nil {
		err := globalLogger.fileWriter.Close()
		globalLogger.fileWriter = nil
		return err
	}
	return nil
}

// Debug logs a debug-level message (only shown in verbose mode).
func Debug(format string, args ...interface{}) {
	logMessage(slog.LevelDebug, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	logMessage(slog.LevelInfo, format, args...)
}

// Warning logs a warning message.
func Warning(format string, args ...interface{}) {
	logMessage(slog.LevelWarn, format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	logMessage(slog.LevelError, format, args...)
}

// LogPathError logs a path-specific failure with the path and cause as
// structured attributes rather than interpolated text, so file logs stay
// grep-able by key.
func LogPathError(operation, path string, err error) {
	if globalLogger == nil {
		return
	}
	globalLogger.slogger.Error("operation failed",
		slog.String("operation", operation),
		slog.String("path", path),
		slog.Any("reason", err))
}

// LogPathWarning logs a path-specific warning with structured attributes.
func LogPathWarning(operation, path, reason string) {
	if globalLogger == nil {
		return
	}
	globalLogger.slogger.Warn("operation skipped",
		slog.String("operation", operation),
		slog.String("path", path),
		slog.String("reason", reason))
}

func logMessage(level slog.Level, format string, args ...interface{}) {
	if globalLogger == nil {
		slog.Log(context.Background(), level, fmt.Sprintf(format, args...))
		return
	}
	globalLogger.slogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// multiHandler fans one record out to every underlying handler. A single
// handler is returned as-is.
func multiHandler(handlers []slog.Handler) slog.Handler {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return fanoutHandler(handlers)
}

type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range h {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanoutHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithAttrs(attrs)
	}
	return next
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	next := make(fanoutHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithGroup(name)
	}
	return next
}
