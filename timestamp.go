package tinylog

import "time"

// Timestamp is the calendar/clock value a TimeSource produces.
// Every setter checks only its own field range, so day 31 is accepted for any month.
type Timestamp struct {
	year        uint16
	month       uint8
	day         uint8
	hour        uint8
	minute      uint8
	second      uint8
	millisecond uint16
}

// NewTimestamp returns 2000/01/01 00:00:00.000
func NewTimestamp() Timestamp {
	return Timestamp{year: 2000, month: 1, day: 1}
}

// TimestampOf converts a wall-clock time, dropping sub-millisecond precision.
// Years outside 0-9999 keep the default year.
func TimestampOf(t time.Time) Timestamp {
	ts := NewTimestamp()
	if t.Year() >= 0 {
		ts.SetYear(uint16(min(t.Year(), 0xFFFF)))
	}
	ts.SetMonth(uint8(t.Month()))
	ts.SetDay(uint8(t.Day()))
	ts.SetHour(uint8(t.Hour()))
	ts.SetMinute(uint8(t.Minute()))
	ts.SetSecond(uint8(t.Second()))
	ts.SetMillisecond(uint16(t.Nanosecond() / int(time.Millisecond)))
	return ts
}

func (ts Timestamp) Year() uint16 { return ts.year }
func (ts Timestamp) Month() uint8 { return ts.month }
func (ts Timestamp) Day() uint8 { return ts.day }
func (ts Timestamp) Hour() uint8 { return ts.hour }
func (ts Timestamp) Minute() uint8 { return ts.minute }
func (ts Timestamp) Second() uint8 { return ts.second }
func (ts Timestamp) Millisecond() uint16 { return ts.millisecond }

// SetYear accepts 0-9999
func (ts *Timestamp) SetYear(v uint16) bool {
	if v > 9999 {
		return false
	}
	ts.year = v
	return true
}

// SetMonth accepts 1-12
func (ts *Timestamp) SetMonth(v uint8) bool {
	if v < 1 || v > 12 {
		return false
	}
	ts.month = v
	return true
}

// SetDay accepts 1-31
func (ts *Timestamp) SetDay(v uint8) bool {
	if v < 1 || v > 31 {
		return false
	}
	ts.day = v
	return true
}

// SetHour accepts 0-23
func (ts *Timestamp) SetHour(v uint8) bool {
	if v > 23 {
		return false
	}
	ts.hour = v
	return true
}

// SetMinute accepts 0-59
func (ts *Timestamp) SetMinute(v uint8) bool {
	if v > 59 {
		return false
	}
	ts.minute = v
	return true
}

// SetSecond accepts 0-59
func (ts *Timestamp) SetSecond(v uint8) bool {
	if v > 59 {
		return false
	}
	ts.second = v
	return true
}

// SetMillisecond accepts 0-999
func (ts *Timestamp) SetMillisecond(v uint16) bool {
	if v > 999 {
		return false
	}
	ts.millisecond = v
	return true
}
