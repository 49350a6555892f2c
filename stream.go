package tinylog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Continuation output appends fragments to the line opened by the last Log call.
// Every fragment is gated on that call's level, so output following a filtered
// Log is suppressed as well. No header is written.

// dumper renders values with no dedicated fragment form
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Str appends s verbatim
func (l *Logger) Str(s string) *Logger {
	l.write(l.lastLevel, s)
	return l
}

// Bytes appends b verbatim
func (l *Logger) Bytes(b []byte) *Logger {
	return l.Str(string(b))
}

// Int appends v in the current base
func (l *Logger) Int(v int64) *Logger {
	l.write(l.lastLevel, FormatInt(v, l.base))
	return l
}

// Uint appends v in the current base
func (l *Logger) Uint(v uint64) *Logger {
	l.write(l.lastLevel, FormatInt(v, l.base))
	return l
}

// Radix sets the base for following integer fragments. It writes nothing and
// the base persists across lines until changed.
func (l *Logger) Radix(b Base) *Logger {
	l.base = b
	return l
}

// Seconds appends d as whole seconds with an "s" suffix
func (l *Logger) Seconds(d time.Duration) *Logger {
	return l.duration(int64(d/time.Second), "s")
}

// Millis appends d as whole milliseconds with an "ms" suffix
func (l *Logger) Millis(d time.Duration) *Logger {
	return l.duration(int64(d/time.Millisecond), "ms")
}

// Micros appends d as whole microseconds with a "us" suffix
func (l *Logger) Micros(d time.Duration) *Logger {
	return l.duration(int64(d/time.Microsecond), "us")
}

// Dur appends d in the coarsest of s, ms, us that represents it exactly,
// falling back to truncated microseconds
func (l *Logger) Dur(d time.Duration) *Logger {
	switch {
	case d%time.Second == 0:
		return l.Seconds(d)
	case d%time.Millisecond == 0:
		return l.Millis(d)
	default:
		return l.Micros(d)
	}
}

// duration resets the base to decimal before writing count and unit
func (l *Logger) duration(count int64, unit string) *Logger {
	return l.Radix(BaseDec).Int(count).Str(unit)
}

// Write implements io.Writer as a continuation of the current line
func (l *Logger) Write(p []byte) (int, error) {
	l.Bytes(p)
	return len(p), nil
}

// Append writes each value as its own fragment, dispatching on type.
// Base values change the radix, integers follow it, durations use Dur.
// Types without a dedicated form are dumped compactly.
func (l *Logger) Append(vals ...any) *Logger {
	for _, v := range vals {
		l.appendValue(v)
	}
	return l
}

func (l *Logger) appendValue(v any) {
	switch val := v.(type) {
	case string:
		l.Str(val)
	case []byte:
		l.Bytes(val)
	case Base:
		l.Radix(val)
	case time.Duration:
		l.Dur(val)
	case int:
		l.Int(int64(val))
	case int8:
		l.Int(int64(val))
	case int16:
		l.Int(int64(val))
	case int32:
		l.Int(int64(val))
	case int64:
		l.Int(val)
	case uint:
		l.Uint(uint64(val))
	case uint8:
		l.Uint(uint64(val))
	case uint16:
		l.Uint(uint64(val))
	case uint32:
		l.Uint(uint64(val))
	case uint64:
		l.Uint(val)
	case uintptr:
		l.Uint(uint64(val))
	case bool:
		l.Str(strconv.FormatBool(val))
	case float32:
		l.Str(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		l.Str(strconv.FormatFloat(val, 'f', -1, 64))
	case nil:
		l.Str("nil")
	case error:
		l.Str(val.Error())
	case fmt.Stringer:
		l.Str(val.String())
	default:
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		l.Str(string(bytes.TrimSpace(b.Bytes())))
	}
}
