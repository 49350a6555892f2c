// Package sink provides ready-made fragment sinks for tinylog loggers.
// Every constructor returns a plain func(string), assignable to tinylog.Sink.
package sink

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/lixenwraith/tinylog/sanitizer"
)

// Writer forwards each fragment to w. Write errors are dropped, a sink has no
// way to report them.
func Writer(w io.Writer) func(string) {
	return func(fragment string) {
		_, _ = io.WriteString(w, fragment)
	}
}

// Console writes to os.Stderr when target is "stderr", os.Stdout otherwise
func Console(target string) func(string) {
	if target == "stderr" {
		return Writer(os.Stderr)
	}
	return Writer(os.Stdout)
}

// Sanitized passes fragments through s before next. The bare line-break
// fragment that opens every log line is forwarded untouched. Header fragments
// are sanitized like any other, so policies that strip whitespace also strip
// the level tag padding and the separator.
func Sanitized(next func(string), s *sanitizer.Sanitizer) func(string) {
	return func(fragment string) {
		if fragment == "\n" {
			next(fragment)
			return
		}
		next(s.Sanitize(fragment))
	}
}

// Recorder accumulates fragments in memory
type Recorder struct {
	sb        strings.Builder
	fragments []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Sink returns the capture function to register on a logger
func (r *Recorder) Sink() func(string) {
	return func(fragment string) {
		r.sb.WriteString(fragment)
		r.fragments = append(r.fragments, fragment)
	}
}

// String returns all captured fragments concatenated
func (r *Recorder) String() string {
	return r.sb.String()
}

// Fragments returns a copy of the captured fragments in arrival order
func (r *Recorder) Fragments() []string {
	return slices.Clone(r.fragments)
}

// Reset discards captured output
func (r *Recorder) Reset() {
	r.sb.Reset()
	r.fragments = nil
}
