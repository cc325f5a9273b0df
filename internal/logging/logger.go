// Package logging provides the structured logger used across the solver.
//
// The Logger interface keeps call sites independent of the backend; the
// default implementation writes through zap to standard error so that
// standard output stays reserved for puzzle answers.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "warn" into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Error(ctx context.Context, err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
	WithComponent(component string) Logger
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level     LogLevel
	Format    string // "console" or "json"
	Output    io.Writer
	Component string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:  LevelWarn,
		Format: "console",
		Output: os.Stderr,
	}
}

// PuzzleLogger implements Logger on top of zap
type PuzzleLogger struct {
	logger    *zap.Logger
	component string
}

// NewLogger creates a new structured logger
func NewLogger(config *LoggerConfig) *PuzzleLogger {
	if config == nil {
		config = DefaultConfig()
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	var encoder zapcore.Encoder
	if config.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(output), zap.NewAtomicLevelAt(config.Level.zapLevel()))

	return &PuzzleLogger{
		logger:    zap.New(core),
		component: config.Component,
	}
}

// NewFromZap wraps an existing zap logger
func NewFromZap(logger *zap.Logger) *PuzzleLogger {
	return &PuzzleLogger{logger: logger}
}

// NewNop returns a logger that discards everything
func NewNop() *PuzzleLogger {
	return NewFromZap(zap.NewNop())
}

// Debug logs a debug message
func (l *PuzzleLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zapcore.DebugLevel, nil, msg, fields...)
}

// Info logs an info message
func (l *PuzzleLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zapcore.InfoLevel, nil, msg, fields...)
}

// Warn logs a warning message
func (l *PuzzleLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.log(ctx, zapcore.WarnLevel, err, msg, fields...)
}

// Error logs an error message
func (l *PuzzleLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.log(ctx, zapcore.ErrorLevel, err, msg, fields...)
}

// With creates a new logger with additional fields
func (l *PuzzleLogger) With(fields ...interface{}) Logger {
	return &PuzzleLogger{
		logger:    l.logger.With(toZapFields(fields)...),
		component: l.component,
	}
}

// WithComponent creates a new logger with component context
func (l *PuzzleLogger) WithComponent(component string) Logger {
	return &PuzzleLogger{
		logger:    l.logger,
		component: component,
	}
}

// Sync flushes buffered log entries
func (l *PuzzleLogger) Sync() error {
	return l.logger.Sync()
}

func (l *PuzzleLogger) log(ctx context.Context, level zapcore.Level, err error, msg string, fields ...interface{}) {
	ce := l.logger.Check(level, msg)
	if ce == nil {
		return
	}

	zfields := make([]zap.Field, 0, len(fields)/2+3)
	if l.component != "" {
		zfields = append(zfields, zap.String("component", l.component))
	}
	if id := RunID(ctx); id != "" {
		zfields = append(zfields, zap.String("run_id", id))
	}
	if err != nil {
		zfields = append(zfields, zap.Error(err))
	}
	zfields = append(zfields, toZapFields(fields)...)

	ce.Write(zfields...)
}

// toZapFields converts alternating key/value pairs into zap fields. Pairs
// with a non-string key and a trailing odd value are dropped.
func toZapFields(fields []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		out = append(out, zap.Any(key, fields[i+1]))
	}
	return out
}

type ctxKey struct{ name string }

var keyRunID = ctxKey{"run_id"}

// WithRunID annotates ctx with the identifier of the current solve run
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRunID, id)
}

// RunID returns the run identifier stored in ctx, if any
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(keyRunID).(string); ok {
		return v
	}
	return ""
}

// PerfLogger tracks how long an operation took
type PerfLogger struct {
	Logger
	startTime time.Time
	operation string
}

// StartOperation begins performance tracking on any Logger
func StartOperation(logger Logger, operation string) *PerfLogger {
	return &PerfLogger{
		Logger:    logger.With("operation", operation),
		startTime: time.Now(),
		operation: operation,
	}
}

// StartOperation begins performance tracking
func (l *PuzzleLogger) StartOperation(operation string) *PerfLogger {
	return StartOperation(l, operation)
}

// End completes performance tracking and logs the duration
func (p *PerfLogger) End(ctx context.Context) time.Duration {
	duration := time.Since(p.startTime)
	p.Debug(ctx, "Operation completed",
		"duration_ms", duration.Milliseconds(),
		"duration", duration.String(),
	)
	return duration
}

// EndQuietly completes performance tracking of a failed operation at debug
// level, for callers that return err to someone who reports it.
func (p *PerfLogger) EndQuietly(ctx context.Context, err error) time.Duration {
	duration := time.Since(p.startTime)
	p.Debug(ctx, "Operation failed",
		"error", err.Error(),
		"duration_ms", duration.Milliseconds(),
		"duration", duration.String(),
	)
	return duration
}

// EndWithError completes performance tracking and logs an error
func (p *PerfLogger) EndWithError(ctx context.Context, err error) time.Duration {
	duration := time.Since(p.startTime)
	p.Error(ctx, err, "Operation failed",
		"duration_ms", duration.Milliseconds(),
		"duration", duration.String(),
	)
	return duration
}
