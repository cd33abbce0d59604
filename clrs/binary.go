package clrs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch is returned by BinaryAdd when the operands differ in length.
var ErrLengthMismatch = errors.New("input vectors have different lengths")

// BinaryAdd adds two unsigned integers stored as bit vectors, least
// significant bit first. The sum has one more bit than the operands, except
// that two empty operands produce an empty sum.
func BinaryAdd(a, b []bool) ([]bool, error) {

	if len(a) != len(b) {
		return nil, fmt.Errorf("%w (%d and %d, respectively)", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return []bool{}, nil
	}

	sum := make([]bool, len(a)+1)
	carry := false
	for i := range a {
		sum[i] = a[i] != b[i] != carry
		carry = (a[i] && b[i]) || (carry && (a[i] != b[i]))
	}
	sum[len(a)] = carry

	return sum, nil

}

// ParseBits reads a string of '0' and '1' characters, least significant bit first.
func ParseBits(s string) ([]bool, error) {
	bits := make([]bool, len(s))
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			bits[i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", r, i)
		}
	}
	return bits, nil
}

// FormatBits is the inverse of ParseBits.
func FormatBits(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
