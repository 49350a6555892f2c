package tinylog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimestamp(t *testing.T) {
	ts := NewTimestamp()

	assert.Equal(t, uint16(2000), ts.Year())
	assert.Equal(t, uint8(1), ts.Month())
	assert.Equal(t, uint8(1), ts.Day())
	assert.Equal(t, uint8(0), ts.Hour())
	assert.Equal(t, uint8(0), ts.Minute())
	assert.Equal(t, uint8(0), ts.Second())
	assert.Equal(t, uint16(0), ts.Millisecond())
}

func TestTimestampSetters(t *testing.T) {
	t.Run("bounds accepted", func(t *testing.T) {
		ts := NewTimestamp()
		assert.True(t, ts.SetYear(0))
		assert.True(t, ts.SetYear(9999))
		assert.True(t, ts.SetMonth(1))
		assert.True(t, ts.SetMonth(12))
		assert.True(t, ts.SetDay(1))
		assert.True(t, ts.SetDay(31))
		assert.True(t, ts.SetHour(0))
		assert.True(t, ts.SetHour(23))
		assert.True(t, ts.SetMinute(59))
		assert.True(t, ts.SetSecond(59))
		assert.True(t, ts.SetMillisecond(999))
	})

	t.Run("out of range rejected and field kept", func(t *testing.T) {
		ts := NewTimestamp()
		ts.SetHour(5)
		ts.SetMinute(6)
		ts.SetSecond(7)
		ts.SetMillisecond(8)

		assert.False(t, ts.SetYear(10000))
		assert.False(t, ts.SetMonth(0))
		assert.False(t, ts.SetMonth(13))
		assert.False(t, ts.SetDay(0))
		assert.False(t, ts.SetDay(32))
		assert.False(t, ts.SetHour(24))
		assert.False(t, ts.SetMinute(60))
		assert.False(t, ts.SetSecond(60))
		assert.False(t, ts.SetMillisecond(1000))

		assert.Equal(t, uint16(2000), ts.Year())
		assert.Equal(t, uint8(1), ts.Month())
		assert.Equal(t, uint8(1), ts.Day())
		assert.Equal(t, uint8(5), ts.Hour())
		assert.Equal(t, uint8(6), ts.Minute())
		assert.Equal(t, uint8(7), ts.Second())
		assert.Equal(t, uint16(8), ts.Millisecond())
	})

	t.Run("no cross-field validation", func(t *testing.T) {
		ts := NewTimestamp()
		assert.True(t, ts.SetMonth(2))
		assert.True(t, ts.SetDay(30))
		assert.Equal(t, "[2000/02/30 00:00:00.000]", formatTimestamp(ts, true))
	})
}

func TestTimestampOf(t *testing.T) {
	ts := TimestampOf(time.Date(2024, time.January, 30, 23, 25, 16, 753_999_999, time.UTC))

	assert.Equal(t, "[2024/01/30 23:25:16.753]", formatTimestamp(ts, true))
	assert.Equal(t, "[23:25:16.753]", formatTimestamp(ts, false))

	t.Run("year out of range keeps default", func(t *testing.T) {
		ts := TimestampOf(time.Date(12000, time.March, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, uint16(2000), ts.Year())
		assert.Equal(t, uint8(3), ts.Month())
	})
}
