package tinylog

import (
	"github.com/trickstertwo/xclock"
)

// Builder provides a fluent API for building loggers.
// It wraps a Config and adds sinks and time sources that have no config form.
type Builder struct {
	cfg        *Config
	sinks      []Sink
	timeSource TimeSource
	err        error // Accumulate errors for deferred handling
}

// NewBuilder creates a new builder with default configuration values
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates the logger, failing on the first accumulated error, an invalid
// configuration, or more sinks than the logger accepts
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger, err := NewFromConfig(b.cfg)
	if err != nil {
		return nil, err
	}

	if b.timeSource != nil {
		logger.SetTimeSource(b.timeSource)
	}

	for i, s := range b.sinks {
		if !logger.AddSink(s) {
			return nil, fmtErrorf("sink %d rejected: nil or capacity of %d reached", i, MaxSinks)
		}
	}

	return logger, nil
}

// Name sets the logger name.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Level sets the minimum level.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level.String()
	return b
}

// LevelString sets the minimum level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// Base sets the initial integer base.
func (b *Builder) Base(base Base) *Builder {
	if b.err != nil {
		return b
	}
	switch base {
	case BaseBin, BaseOct, BaseDec, BaseHex:
	default:
		b.err = fmtErrorf("invalid base: %d (use BaseBin, BaseOct, BaseDec, or BaseHex)", int(base))
		return b
	}
	b.cfg.Base = base.String()
	return b
}

// PrintDate includes the date in the timestamp tag.
func (b *Builder) PrintDate(enable bool) *Builder {
	b.cfg.PrintDate = enable
	return b
}

// Timestamps attaches the system clock as time source.
func (b *Builder) Timestamps(enable bool) *Builder {
	b.cfg.Timestamps = enable
	return b
}

// TimeSource sets a custom time source, overriding Timestamps.
func (b *Builder) TimeSource(src TimeSource) *Builder {
	b.timeSource = src
	return b
}

// Clock uses an xclock clock as time source.
func (b *Builder) Clock(c xclock.Clock) *Builder {
	if c == nil {
		return b
	}
	return b.TimeSource(ClockSource(c))
}

// EnableConsole registers the console sink.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Sanitization sets the console sanitizer policy.
func (b *Builder) Sanitization(policy string) *Builder {
	b.cfg.Sanitization = policy
	return b
}

// Sink registers an additional sink after the console sink.
func (b *Builder) Sink(s Sink) *Builder {
	b.sinks = append(b.sinks, s)
	return b
}

// Example usage:
// logger, err := tinylog.NewBuilder().
//
//	Name("sensor").
//	LevelString("debug").
//	PrintDate(true).
//	EnableConsole(false).
//	Sink(rec.Sink()).
//	Build()
//
// if err == nil {
//
//	 logger.Info("sensor ready").Str(" id=").Radix(tinylog.BaseHex).Int(0xBEEF)
//
// }
