package meshconv

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with meshconv-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithObject adds an object name field to the logger.
func (l *Logger) WithObject(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("object", name),
	}
}

// LogExport logs an export operation.
func (l *Logger) LogExport(ctx context.Context, name string, vertices, triangles int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"object", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "export completed",
			"object", name,
			"vertices", vertices,
			"triangles", triangles,
		)
	}
}

// LogImport logs a project import operation.
func (l *Logger) LogImport(ctx context.Context, project string, converted, skipped int) {
	if skipped > 0 {
		l.WarnContext(ctx, "import completed with skipped elements",
			"project", project,
			"converted", converted,
			"skipped", skipped,
		)
	} else {
		l.InfoContext(ctx, "import completed",
			"project", project,
			"converted", converted,
		)
	}
}

// LogSkippedElement logs an element the importer could not convert.
func (l *Logger) LogSkippedElement(ctx context.Context, element string, err error) {
	l.WarnContext(ctx, "element skipped",
		"element", element,
		"error", err,
	)
}
