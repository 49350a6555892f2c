package tinylog

// Logger is a named, level-filtered fragment dispatcher.
// A Logger belongs to one goroutine; concurrent use needs external locking.
type Logger struct {
	name       string
	minLevel   Level
	lastLevel  Level // level of the most recent Log call, gates continuation output
	base       Base
	printDate  bool
	timeSource TimeSource
	sinks      sinkSet
}

// New creates a logger, silently truncating name to MaxNameLen-1 bytes
func New(name string) *Logger {
	return &Logger{
		name:      truncateName(name),
		minLevel:  LevelInfo,
		lastLevel: LevelInfo,
		base:      BaseDec,
		sinks:     newSinkSet(),
	}
}

// Name returns the stored, possibly truncated, logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level that passes the filter
func (l *Logger) Level() Level {
	return l.minLevel
}

// SetLevel changes the minimum level. LevelDisabled suppresses all output.
func (l *Logger) SetLevel(level Level) {
	l.minLevel = level
}

// AddSink registers s after the existing sinks.
// Returns false for a nil sink or when MaxSinks are already registered.
func (l *Logger) AddSink(s Sink) bool {
	return l.sinks.add(s)
}

// SinkCount returns the number of registered sinks
func (l *Logger) SinkCount() int {
	return l.sinks.len()
}

// SetTimeSource replaces the time source, nil removes the timestamp tag
func (l *Logger) SetTimeSource(src TimeSource) {
	l.timeSource = src
}

// SetPrintDate toggles the date part of the timestamp tag
func (l *Logger) SetPrintDate(printDate bool) {
	l.printDate = printDate
}

// PrintDate reports whether the timestamp tag carries the date
func (l *Logger) PrintDate() bool {
	return l.printDate
}

// Base returns the radix applied to the next integer fragment
func (l *Logger) Base() Base {
	return l.base
}

// Log starts a new line: line break, timestamp, level tag, name tag, space, message.
// Each fragment is gated on level independently, so sinks always see six calls per
// line; the timestamp fragment is empty without a time source. The header is
// rendered, and the time source called, even when level is filtered out.
// The returned logger continues the same line.
func (l *Logger) Log(level Level, msg string) *Logger {
	timestamp := l.timestampTag()
	levelTag := level.Tag()
	nameTag := formatName(l.name)

	l.write(level, lineBreak)
	l.write(level, timestamp)
	l.write(level, levelTag)
	l.write(level, nameTag)
	l.write(level, separator)
	l.write(level, msg)

	l.lastLevel = level
	return l
}

// LogBytes is Log for a byte-slice message
func (l *Logger) LogBytes(level Level, msg []byte) *Logger {
	return l.Log(level, string(msg))
}

// Trace logs msg at trace level
func (l *Logger) Trace(msg string) *Logger { return l.Log(LevelTrace, msg) }

// Debug logs msg at debug level
func (l *Logger) Debug(msg string) *Logger { return l.Log(LevelDebug, msg) }

// Info logs msg at info level
func (l *Logger) Info(msg string) *Logger { return l.Log(LevelInfo, msg) }

// Warn logs msg at warn level
func (l *Logger) Warn(msg string) *Logger { return l.Log(LevelWarn, msg) }

// Error logs msg at error level
func (l *Logger) Error(msg string) *Logger { return l.Log(LevelError, msg) }

// Fatal logs msg at fatal level. It does not terminate the process.
func (l *Logger) Fatal(msg string) *Logger { return l.Log(LevelFatal, msg) }

// Enabled reports whether a fragment at level would reach the sinks
func (l *Logger) Enabled(level Level) bool {
	// Both the equality guards and the ordering are kept so a level ranked
	// above LevelDisabled still cannot bypass it
	if l.minLevel == LevelDisabled || level == LevelDisabled {
		return false
	}
	return level >= l.minLevel
}

// write forwards fragment to every sink when level passes the filter
func (l *Logger) write(level Level, fragment string) {
	if !l.Enabled(level) {
		return
	}
	l.sinks.each(fragment)
}

// timestampTag calls the time source once, empty when none is registered
func (l *Logger) timestampTag() string {
	if l.timeSource == nil {
		return ""
	}
	return formatTimestamp(l.timeSource(), l.printDate)
}
