package tinylog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyValue(t *testing.T) {
	key, value, err := parseKeyValue("  level = debug ")
	assert.NoError(t, err)
	assert.Equal(t, "level", key)
	assert.Equal(t, "debug", value)

	key, value, err = parseKeyValue("name=a=b")
	assert.NoError(t, err)
	assert.Equal(t, "name", key)
	assert.Equal(t, "a=b", value)

	_, _, err = parseKeyValue("novalue")
	assert.Error(t, err)

	_, _, err = parseKeyValue("=value")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "key cannot be empty")
}

func TestFmtErrorf(t *testing.T) {
	assert.Equal(t, "tinylog: bad 1", fmtErrorf("bad %d", 1).Error())
	assert.Equal(t, "tinylog: once", fmtErrorf("tinylog: once").Error())

	wrapped := fmtErrorf("outer: %w", errSentinel)
	assert.True(t, errors.Is(wrapped, errSentinel))
}

var errSentinel = errors.New("sentinel")

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, combineErrors(nil))

	single := fmtErrorf("only")
	assert.Equal(t, single, combineErrors([]error{single}))

	combined := combineErrors([]error{fmtErrorf("first"), errors.New("second")})
	assert.Equal(t, "tinylog: multiple configuration errors:\n  1. first\n  2. second", combined.Error())
}
