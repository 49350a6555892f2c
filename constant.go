package tinylog

// Capacity limits
const (
	// Name buffer size including the terminator slot, stored names hold at most MaxNameLen-1 bytes
	MaxNameLen = 21
	// Maximum number of sinks a logger accepts
	MaxSinks = 3
)

// Severity levels, ordered by rank
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelDisabled
)

// Numeric bases for integer rendering
const (
	BaseBin Base = 2
	BaseOct Base = 8
	BaseDec Base = 10
	BaseHex Base = 16
)

// Fixed fragments of a log line
const (
	lineBreak = "\n"
	separator = " "
)

// Formatting
const (
	digitAlphabet = "0123456789ABCDEF"
	// 64 binary digits, 2-char prefix, sign
	maxIntWidth = 64 + 2 + 1
)
