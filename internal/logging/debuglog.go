package logging

import (
	"os"
	"strings"
	"sync"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// FlagSource reports whether debug and info output is enabled.
type FlagSource interface {
	DebugLogsEnabled() bool
}

// FlagFunc adapts a function to FlagSource.
type FlagFunc func() bool

func (f FlagFunc) DebugLogsEnabled() bool {
	return f()
}

// StaticFlag is a FlagSource with a fixed answer.
type StaticFlag bool

func (f StaticFlag) DebugLogsEnabled() bool {
	return bool(f)
}

// DebugLogger is the widget's conditional console logger. Warnings and errors
// always reach the console; debug and info output is gated by a FlagSource.
//
// Log never panics. Faults raised by the flag sources, the recorder or the
// console are recovered and reported to the diagnostics logger.
type DebugLogger struct {
	mu          sync.RWMutex
	ambient     FlagSource
	override    FlagSource
	console     Console
	recorder    Recorder
	diagnostics Logger
}

// DebugOption configures a DebugLogger.
type DebugOption func(*DebugLogger)

// WithFlags sets the configuration the gate reads when no override is installed.
func WithFlags(src FlagSource) DebugOption {
	return func(l *DebugLogger) { l.ambient = src }
}

// WithOverride installs an override at construction time.
func WithOverride(src FlagSource) DebugOption {
	return func(l *DebugLogger) { l.override = src }
}

// WithConsole sets the console that receives emitted calls.
func WithConsole(console Console) DebugOption {
	return func(l *DebugLogger) { l.console = console }
}

// WithRecorder sets the collaborator that observes every emitted call.
func WithRecorder(recorder Recorder) DebugOption {
	return func(l *DebugLogger) { l.recorder = recorder }
}

// WithDiagnostics sets where recovered faults are reported.
func WithDiagnostics(logger Logger) DebugOption {
	return func(l *DebugLogger) { l.diagnostics = logger }
}

// NewDebugLogger builds a logger writing to the process stdout and stderr
// unless a console is supplied. Without flag sources debug and info output is
// suppressed.
func NewDebugLogger(opts ...DebugOption) *DebugLogger {
	l := &DebugLogger{}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	if isNil(l.console) {
		l.console = NewTerminalConsole(os.Stdout, os.Stderr)
	}
	l.diagnostics = OrNop(l.diagnostics)
	return l
}

// SetOverride installs or replaces the flag source consulted ahead of the
// configured flags. A nil source restores the configured flags.
func (l *DebugLogger) SetOverride(src FlagSource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.override = src
}

// Log emits args on the channel for level and reports whether anything was
// written. Level matching is case-insensitive and an empty level means debug.
// Unknown levels are treated like warnings for gating and go to the standard
// channel.
func (l *DebugLogger) Log(level string, args ...any) (emitted bool) {
	defer func() {
		if r := recover(); r != nil {
			emitted = false
			l.reportFault(level, r)
		}
	}()

	lvl := normalizeLevel(level)
	if !l.enabled(lvl) {
		return false
	}

	l.mu.RLock()
	recorder, console := l.recorder, l.console
	l.mu.RUnlock()

	if !isNil(recorder) {
		recorder.Record(Call{Level: lvl, Args: append([]any(nil), args...)})
	}

	switch lvl {
	case LevelWarn:
		console.Warn(args...)
	case LevelError:
		console.Error(args...)
	default:
		console.Log(args...)
	}
	return true
}

// Debug is Log at LevelDebug.
func (l *DebugLogger) Debug(args ...any) bool { return l.Log(LevelDebug, args...) }

// Info is Log at LevelInfo.
func (l *DebugLogger) Info(args ...any) bool { return l.Log(LevelInfo, args...) }

// Warn is Log at LevelWarn; it is never gated.
func (l *DebugLogger) Warn(args ...any) bool { return l.Log(LevelWarn, args...) }

// Error is Log at LevelError; it is never gated.
func (l *DebugLogger) Error(args ...any) bool { return l.Log(LevelError, args...) }

func (l *DebugLogger) enabled(lvl string) bool {
	if lvl != LevelDebug && lvl != LevelInfo {
		return true
	}

	l.mu.RLock()
	src := l.override
	if isNil(src) {
		src = l.ambient
	}
	l.mu.RUnlock()

	if isNil(src) {
		return false
	}
	return src.DebugLogsEnabled()
}

func (l *DebugLogger) reportFault(level string, fault any) {
	defer func() {
		_ = recover()
	}()
	l.diagnostics.Error("debug log call at level %q dropped: %v", level, fault)
}

func normalizeLevel(level string) string {
	if level == "" {
		return LevelDebug
	}
	return strings.ToLower(level)
}
