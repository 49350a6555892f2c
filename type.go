package tinylog

import (
	"github.com/trickstertwo/xclock"
)

// Sink receives one finished text fragment per call. A logical log line
// arrives as several fragments, sinks must not assume line buffering.
type Sink func(fragment string)

// TimeSource returns the timestamp stamped on the next log line
type TimeSource func() Timestamp

// ClockSource adapts an xclock clock into a TimeSource
func ClockSource(c xclock.Clock) TimeSource {
	return func() Timestamp {
		return TimestampOf(c.Now())
	}
}

// SystemTimeSource reads the process-wide xclock default on every call,
// so a frozen or offset clock installed later is honoured
func SystemTimeSource() TimeSource {
	return func() Timestamp {
		return TimestampOf(xclock.Now())
	}
}

// sinkSet is a bounded, append-only, ordered sink collection
type sinkSet struct {
	sinks []Sink
}

func newSinkSet() sinkSet {
	return sinkSet{sinks: make([]Sink, 0, MaxSinks)}
}

// add appends s, failing once MaxSinks are registered
func (ss *sinkSet) add(s Sink) bool {
	if s == nil || len(ss.sinks) >= MaxSinks {
		return false
	}
	ss.sinks = append(ss.sinks, s)
	return true
}

func (ss *sinkSet) len() int {
	return len(ss.sinks)
}

// each calls every sink with fragment in registration order
func (ss *sinkSet) each(fragment string) {
	for _, s := range ss.sinks {
		s(fragment)
	}
}
