package fixedUints

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FromHex parses a hexadecimal string, most significant digit first, into a UInt.
//
// Digits may be upper- or lowercase. An optional "0x" or "0X" prefix and "_" separators between digits are accepted.
// If the string encodes a value that does not fit into 64*W bits, the excess high-order digits are silently dropped,
// i.e. the result is the value modulo 2^(64*W). Leading zeros are always fine.
//
// On failure, the returned error wraps [ErrInvalidHexDigit] or [ErrEmptyHexString].
func FromHex[W WordArray](s string) (z UInt[W], err error) {
	err = z.SetHex(s)
	return
}

// MustFromHex is like [FromHex], but panics on invalid input. It is meant for constants and tests.
func MustFromHex[W WordArray](s string) UInt[W] {
	z, err := FromHex[W](s)
	if err != nil {
		panic(err)
	}
	return z
}

// SetHex sets z from a hex string, as described in [FromHex]. On error, z is unchanged.
func (z *UInt[W]) SetHex(s string) error {
	digits := s
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	var result W
	position := 0 // position from the least significant digit, ignoring separators
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c == '_' {
			if i == 0 || i == len(digits)-1 || digits[i-1] == '_' {
				return errors.Wrapf(ErrInvalidHexDigit, "misplaced separator at offset %v of %q", i, s)
			}
			continue
		}
		value, ok := decodeHexDigit(c)
		if !ok {
			return errors.Wrapf(ErrInvalidHexDigit, "character %q at offset %v of %q", c, i, s)
		}
		if wordIndex := position / 16; wordIndex < len(result) {
			result[wordIndex] |= uint64(value) << (4 * uint(position%16))
		}
		position++
	}
	if position == 0 {
		return errors.Wrapf(ErrEmptyHexString, "input %q", s)
	}
	z.words = result
	return nil
}

func decodeHexDigit(c byte) (value byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToHex returns the lowercase hex representation of z without prefix: 16 digits per word, most significant word first.
//
// The output length only depends on W; leading zeros are never suppressed.
func (z *UInt[W]) ToHex() string {
	var sb strings.Builder
	sb.Grow(16 * len(z.words))
	for i := len(z.words) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", z.words[i])
	}
	return sb.String()
}

// String returns "0x" followed by [UInt.ToHex].
func (z UInt[W]) String() string {
	return "0x" + z.ToHex()
}

// Format implements [fmt.Formatter]. The verbs %v and %s give the same output as [UInt.String],
// %x and %X give the fixed-width hex digits (with a 0x prefix if the # flag is set) and %d prints the decimal value.
func (z UInt[W]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		digits := z.ToHex()
		if verb == 'X' {
			digits = strings.ToUpper(digits)
		}
		if s.Flag('#') {
			digits = "0x" + digits
		}
		fmt.Fprint(s, digits)
	case 'd':
		fmt.Fprint(s, z.ToBigInt().String())
	case 'v', 's':
		fmt.Fprint(s, z.String())
	default:
		fmt.Fprintf(s, "%%!%c(fixedUints.UInt=%s)", verb, z.String())
	}
}
