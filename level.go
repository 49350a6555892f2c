package tinylog

import (
	"strconv"
	"strings"
)

// Level is the severity of a log line, compared by rank only
type Level int

// Tag returns the bracketed, column-aligned mnemonic used in the line header
func (lv Level) Tag() string {
	switch lv {
	case LevelTrace:
		return "[TRACE]"
	case LevelDebug:
		return "[DEBUG]"
	case LevelInfo:
		return "[INFO ]"
	case LevelWarn:
		return "[WARN ]"
	case LevelError:
		return "[ERROR]"
	case LevelFatal:
		return "[FATAL]"
	case LevelDisabled:
		return "[DISAB]"
	default:
		return "[UNKNW]"
	}
}

// String returns the lower-case level name
func (lv Level) String() string {
	switch lv {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelDisabled:
		return "disabled"
	default:
		return "unknown(" + strconv.Itoa(int(lv)) + ")"
	}
}

// ParseLevel converts a level name to its constant.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "disabled", "off":
		return LevelDisabled, nil
	default:
		return LevelInfo, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, fatal, disabled)", levelStr)
	}
}
