package tinylog

import (
	"os"
	"path/filepath"
)

// Global instance for package-level functions
var defaultLogger = newDefaultLogger()

// newDefaultLogger writes to stdout under the executable name
func newDefaultLogger() *Logger {
	cfg := DefaultConfig()
	if len(os.Args) > 0 {
		if name := filepath.Base(os.Args[0]); name != "" && name != "." {
			cfg.Name = name
		}
	}

	l, err := NewFromConfig(cfg)
	if err != nil {
		return New(cfg.Name)
	}
	return l
}

// Default returns the package-level logger
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger, nil is ignored
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default package-level functions that delegate to the default logger

// Log starts a line at level on the default logger
func Log(level Level, msg string) *Logger {
	return defaultLogger.Log(level, msg)
}

// Trace logs at trace level
func Trace(msg string) *Logger {
	return defaultLogger.Trace(msg)
}

// Debug logs at debug level
func Debug(msg string) *Logger {
	return defaultLogger.Debug(msg)
}

// Info logs at info level
func Info(msg string) *Logger {
	return defaultLogger.Info(msg)
}

// Warn logs at warn level
func Warn(msg string) *Logger {
	return defaultLogger.Warn(msg)
}

// Error logs at error level
func Error(msg string) *Logger {
	return defaultLogger.Error(msg)
}

// Fatal logs at fatal level without exiting
func Fatal(msg string) *Logger {
	return defaultLogger.Fatal(msg)
}
