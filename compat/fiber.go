package compat

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/lixenwraith/tinylog"
)

// FiberAdapter routes Fiber logs into a tinylog.Logger. It satisfies Fiber's
// AllLogger method set (plain, printf and key-value variants) structurally,
// without importing Fiber.
type FiberAdapter struct {
	lockable
	logger       *tinylog.Logger
	fatalHandler func(msg string)
	panicHandler func(msg string)
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(logger *tinylog.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		lockable: lockable{lock: &sync.Mutex{}},
		logger:   logger,
		fatalHandler: func(msg string) {
			os.Exit(1)
		},
		panicHandler: func(msg string) {
			panic(msg)
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// WithFiberLocker shares lock with other users of the same logger
func WithFiberLocker(lock sync.Locker) FiberOption {
	return func(a *FiberAdapter) {
		if lock != nil {
			a.lock = lock
		}
	}
}

// --- Plain variants ---

func (a *FiberAdapter) Trace(v ...any) { a.log(tinylog.LevelTrace, fmt.Sprint(v...)) }
func (a *FiberAdapter) Debug(v ...any) { a.log(tinylog.LevelDebug, fmt.Sprint(v...)) }
func (a *FiberAdapter) Info(v ...any)  { a.log(tinylog.LevelInfo, fmt.Sprint(v...)) }
func (a *FiberAdapter) Warn(v ...any)  { a.log(tinylog.LevelWarn, fmt.Sprint(v...)) }
func (a *FiberAdapter) Error(v ...any) { a.log(tinylog.LevelError, fmt.Sprint(v...)) }
func (a *FiberAdapter) Fatal(v ...any) { a.fatalLog(fmt.Sprint(v...)) }
func (a *FiberAdapter) Panic(v ...any) { a.panicLog(fmt.Sprint(v...)) }

// Write logs p as one info line, so the adapter can back an io.Writer option
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	a.log(tinylog.LevelInfo, strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// --- Printf variants ---

func (a *FiberAdapter) Tracef(format string, v ...any) {
	a.log(tinylog.LevelTrace, fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Debugf(format string, v ...any) {
	a.log(tinylog.LevelDebug, fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Infof(format string, v ...any) {
	a.log(tinylog.LevelInfo, fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Warnf(format string, v ...any) {
	a.log(tinylog.LevelWarn, fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Errorf(format string, v ...any) {
	a.log(tinylog.LevelError, fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Fatalf(format string, v ...any) { a.fatalLog(fmt.Sprintf(format, v...)) }
func (a *FiberAdapter) Panicf(format string, v ...any) { a.panicLog(fmt.Sprintf(format, v...)) }

// --- Key-value variants ---
// Pairs are flattened onto the line as " key=value" continuation fragments.

func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	a.logPairs(tinylog.LevelTrace, msg, keysAndValues)
}

func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	a.logPairs(tinylog.LevelDebug, msg, keysAndValues)
}

func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	a.logPairs(tinylog.LevelInfo, msg, keysAndValues)
}

func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	a.logPairs(tinylog.LevelWarn, msg, keysAndValues)
}

func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	a.logPairs(tinylog.LevelError, msg, keysAndValues)
}

func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	a.logPairs(tinylog.LevelFatal, msg, keysAndValues)
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	a.logPairs(tinylog.LevelFatal, msg, keysAndValues)
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

func (a *FiberAdapter) log(level tinylog.Level, msg string) {
	a.do(func() { a.logger.Log(level, msg) })
}

// logPairs writes msg followed by each pair; a trailing key without value is written alone
func (a *FiberAdapter) logPairs(level tinylog.Level, msg string, keysAndValues []any) {
	a.do(func() {
		l := a.logger.Log(level, msg)
		for i := 0; i < len(keysAndValues); i += 2 {
			l.Str(" ").Append(keysAndValues[i])
			if i+1 < len(keysAndValues) {
				l.Str("=").Append(keysAndValues[i+1])
			}
		}
	})
}

// fatalLog logs at fatal level, then runs the fatal handler
func (a *FiberAdapter) fatalLog(msg string) {
	a.log(tinylog.LevelFatal, msg)
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// panicLog logs at fatal level, then runs the panic handler
func (a *FiberAdapter) panicLog(msg string) {
	a.log(tinylog.LevelFatal, msg)
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}
