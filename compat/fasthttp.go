package compat

import (
	"fmt"
	"strings"
	"sync"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/tinylog"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter routes fasthttp server logs into a tinylog.Logger
type FastHTTPAdapter struct {
	lockable
	logger        *tinylog.Logger
	defaultLevel  tinylog.Level
	levelDetector func(string) (tinylog.Level, bool) // Detects level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *tinylog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		lockable:      lockable{lock: &sync.Mutex{}},
		logger:        logger,
		defaultLevel:  tinylog.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing
func WithDefaultLevel(level tinylog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content.
// nil disables detection.
func WithLevelDetector(detector func(string) (tinylog.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithFastHTTPLocker shares lock with other users of the same logger
func WithFastHTTPLocker(lock sync.Locker) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		if lock != nil {
			a.lock = lock
		}
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	a.do(func() { a.logger.Log(level, msg) })
}

// DetectLogLevel guesses a level from keywords in the message
func DetectLogLevel(msg string) (tinylog.Level, bool) {
	msgLower := strings.ToLower(msg)

	switch {
	case strings.Contains(msgLower, "error"),
		strings.Contains(msgLower, "failed"),
		strings.Contains(msgLower, "fatal"),
		strings.Contains(msgLower, "panic"):
		return tinylog.LevelError, true

	case strings.Contains(msgLower, "warn"),
		strings.Contains(msgLower, "deprecated"):
		return tinylog.LevelWarn, true

	case strings.Contains(msgLower, "debug"):
		return tinylog.LevelDebug, true

	case strings.Contains(msgLower, "trace"):
		return tinylog.LevelTrace, true
	}

	return tinylog.LevelInfo, false
}
