package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// Logger is the application logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithContext(ctx context.Context) Logger
}

// Config holds logger configuration.
type Config struct {
	// Name prefixes every line.
	Name string
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the output format (text, json).
	Format string
	// Output is the output writer (defaults to os.Stderr).
	Output io.Writer
	// Timestamps adds the time to each line.
	Timestamps bool
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		Name:   "fsm",
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// hclogLogger adapts hclog.Logger to Logger.
type hclogLogger struct {
	l hclog.Logger
}

// New creates a new logger with the given configuration.
func New(cfg Config) (Logger, error) {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	l := hclog.New(&hclog.LoggerOptions{
		Name:        cfg.Name,
		Level:       parseLevel(cfg.Level),
		Output:      output,
		JSONFormat:  strings.EqualFold(cfg.Format, "json"),
		DisableTime: !cfg.Timestamps,
		Color:       hclog.ColorOff,
	})

	return &hclogLogger{l: l}, nil
}

func (l *hclogLogger) Debug(msg string, args ...any) {
	l.l.Debug(msg, redactArgs(args)...)
}

func (l *hclogLogger) Info(msg string, args ...any) {
	l.l.Info(msg, redactArgs(args)...)
}

func (l *hclogLogger) Warn(msg string, args ...any) {
	l.l.Warn(msg, redactArgs(args)...)
}

func (l *hclogLogger) Error(msg string, args ...any) {
	l.l.Error(msg, redactArgs(args)...)
}

func (l *hclogLogger) With(args ...any) Logger {
	return &hclogLogger{l: l.l.With(redactArgs(args)...)}
}

// WithContext attaches the session name carried by ctx, if any.
func (l *hclogLogger) WithContext(ctx context.Context) Logger {
	if name := SessionFromContext(ctx); name != "" {
		return l.With("session", name)
	}
	return l
}

// parseLevel converts a string level to hclog.Level, defaulting to info.
func parseLevel(level string) hclog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return hclog.Trace
	case "debug":
		return hclog.Debug
	case "info":
		return hclog.Info
	case "warn", "warning":
		return hclog.Warn
	case "error":
		return hclog.Error
	case "off":
		return hclog.Off
	default:
		return hclog.Info
	}
}

var defaultLogger atomic.Pointer[hclogLogger]

// SetDefault sets the default global logger.
func SetDefault(l Logger) {
	if hl, ok := l.(*hclogLogger); ok {
		defaultLogger.Store(hl)
	}
}

// Default returns the default global logger, creating it from
// DefaultConfig on first use.
func Default() Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l, _ := New(DefaultConfig())
	defaultLogger.CompareAndSwap(nil, l.(*hclogLogger))
	return defaultLogger.Load()
}
