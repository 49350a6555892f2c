package compat

import (
	"fmt"
	"os"
	"sync"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/tinylog"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter routes gnet engine logs into a tinylog.Logger
type GnetAdapter struct {
	lockable
	logger       *tinylog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *tinylog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		lockable: lockable{lock: &sync.Mutex{}},
		logger:   logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetLocker shares lock with other users of the same logger
func WithGnetLocker(lock sync.Locker) GnetOption {
	return func(a *GnetAdapter) {
		if lock != nil {
			a.lock = lock
		}
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.log(tinylog.LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.log(tinylog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.log(tinylog.LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.log(tinylog.LevelError, fmt.Sprintf(format, args...))
}

// Fatalf logs at fatal level and triggers the fatal handler.
// Sinks are synchronous, the line is out before the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.log(tinylog.LevelFatal, msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

func (a *GnetAdapter) log(level tinylog.Level, msg string) {
	a.do(func() { a.logger.Log(level, msg) })
}
