package tinylog

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"170 bin", FormatInt(170, BaseBin), "0b10101010"},
		{"170 oct", FormatInt(170, BaseOct), "0o252"},
		{"170 dec", FormatInt(170, BaseDec), "170"},
		{"170 hex", FormatInt(170, BaseHex), "0xAA"},
		{"0 bin", FormatInt(0, BaseBin), "0b0"},
		{"0 oct", FormatInt(0, BaseOct), "0o0"},
		{"0 dec", FormatInt(0, BaseDec), "0"},
		{"0 hex", FormatInt(0, BaseHex), "0x0"},
		{"uppercase hex", FormatInt(uint32(0xdeadbeef), BaseHex), "0xDEADBEEF"},
		{"negative dec", FormatInt(-170, BaseDec), "-170"},
		{"int8 min", FormatInt(int8(math.MinInt8), BaseDec), "-128"},
		{"int64 min", FormatInt(int64(math.MinInt64), BaseDec), "-9223372036854775808"},
		{"uint64 max dec", FormatInt(uint64(math.MaxUint64), BaseDec), "18446744073709551615"},
		{"uint64 max hex", FormatInt(uint64(math.MaxUint64), BaseHex), "0xFFFFFFFFFFFFFFFF"},
		{"uint64 max bin", FormatInt(uint64(math.MaxUint64), BaseBin), "0b" + strings.Repeat("1", 64)},
		{"int64 min bin", FormatInt(int64(math.MinInt64), BaseBin), "0b-1" + strings.Repeat("0", 63)},
		{"negative hex layout", FormatInt(-170, BaseHex), "0x-AA"},
		{"unknown base is decimal", FormatInt(170, Base(7)), "170"},
		{"named integer type", FormatInt(Level(5), BaseBin), "0b101"},
		{"single digit", FormatInt(uint8(9), BaseDec), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestBase(t *testing.T) {
	assert.Equal(t, "0b", BaseBin.Prefix())
	assert.Equal(t, "0o", BaseOct.Prefix())
	assert.Equal(t, "", BaseDec.Prefix())
	assert.Equal(t, "0x", BaseHex.Prefix())

	for _, b := range []Base{BaseBin, BaseOct, BaseDec, BaseHex} {
		parsed, err := ParseBase(b.String())
		assert.NoError(t, err)
		assert.Equal(t, b, parsed)
	}

	parsed, err := ParseBase(" HEX ")
	assert.NoError(t, err)
	assert.Equal(t, BaseHex, parsed)

	_, err = ParseBase("base64")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base")
}
