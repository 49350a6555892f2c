package tinylog

import (
	"fmt"
	"unicode/utf8"
)

// formatTimestamp renders the bracketed timestamp tag,
// [HH:MM:SS.mmm] or [YYYY/MM/DD HH:MM:SS.mmm] when withDate is set
func formatTimestamp(ts Timestamp, withDate bool) string {
	if withDate {
		return fmt.Sprintf("[%04d/%02d/%02d %02d:%02d:%02d.%03d]",
			ts.Year(), ts.Month(), ts.Day(),
			ts.Hour(), ts.Minute(), ts.Second(), ts.Millisecond())
	}
	return fmt.Sprintf("[%02d:%02d:%02d.%03d]",
		ts.Hour(), ts.Minute(), ts.Second(), ts.Millisecond())
}

// formatName renders the bracketed logger name tag
func formatName(name string) string {
	return "[" + name + "]"
}

// truncateName bounds a logger name to MaxNameLen-1 bytes without splitting a rune
func truncateName(name string) string {
	limit := MaxNameLen - 1
	if len(name) <= limit {
		return name
	}
	for limit > 0 && !utf8.RuneStart(name[limit]) {
		limit--
	}
	return name[:limit]
}
