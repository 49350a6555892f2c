package tinylog

import "strings"

// Base selects the radix used when rendering integers
type Base int

// Integer is the set of integral types FormatInt renders
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Prefix returns the literal prefix written ahead of the digits
func (b Base) Prefix() string {
	switch b {
	case BaseBin:
		return "0b"
	case BaseOct:
		return "0o"
	case BaseHex:
		return "0x"
	default:
		return ""
	}
}

// String returns the configuration name of the base
func (b Base) String() string {
	switch b {
	case BaseBin:
		return "bin"
	case BaseOct:
		return "oct"
	case BaseHex:
		return "hex"
	default:
		return "dec"
	}
}

// ParseBase converts a base name to its constant.
func ParseBase(baseStr string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(baseStr)) {
	case "bin", "2":
		return BaseBin, nil
	case "oct", "8":
		return BaseOct, nil
	case "dec", "10":
		return BaseDec, nil
	case "hex", "16":
		return BaseHex, nil
	default:
		return BaseDec, fmtErrorf("invalid base: '%s' (use bin, oct, dec, or hex)", baseStr)
	}
}

// FormatInt renders v in base b with the base prefix and uppercase digits.
// Unknown bases render as decimal. A negative value in a non-decimal base renders
// as prefix, sign, magnitude; that layout is implementation-defined.
func FormatInt[T Integer](v T, b Base) string {
	var buf [maxIntWidth]byte
	n := 0

	radix := uint64(b)
	switch b {
	case BaseBin, BaseOct, BaseHex:
		n += copy(buf[:], b.Prefix())
	default:
		radix = uint64(BaseDec)
	}

	var mag uint64
	if v < 0 {
		buf[n] = '-'
		n++
		// -(v+1)+1 keeps the minimum signed value in range
		mag = uint64(-(v+1)) + 1
	} else {
		mag = uint64(v)
	}

	// Digits come out least significant first
	first := n
	for {
		buf[n] = digitAlphabet[mag%radix]
		n++
		mag /= radix
		if mag == 0 {
			break
		}
	}

	// Reverse the digit run only, prefix and sign stay in front
	for i, j := first, n-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf[:n])
}
