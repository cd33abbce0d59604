package clrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	F = false
	T = true
)

func TestBinaryAdd(t *testing.T) {
	tests := []struct {
		a, b, want []bool
	}{
		{[]bool{}, []bool{}, []bool{}},
		{[]bool{F}, []bool{F}, []bool{F, F}},
		{[]bool{T}, []bool{T}, []bool{F, T}},
		{[]bool{F, F, T, T, F}, []bool{F, T, F, T, F}, []bool{F, T, T, F, T, F}},
		{[]bool{T, T, F, T, T}, []bool{T, T, F, F, T}, []bool{F, T, T, T, F, T}},
	}
	for _, tt := range tests {
		got, err := BinaryAdd(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBinaryAddMatchesIntegerSum(t *testing.T) {
	const width = 6
	toBits := func(v int) []bool {
		bits := make([]bool, width)
		for i := range bits {
			bits[i] = v&(1<<i) != 0
		}
		return bits
	}
	fromBits := func(bits []bool) int {
		v := 0
		for i, b := range bits {
			if b {
				v |= 1 << i
			}
		}
		return v
	}

	for x := 0; x < 1<<width; x += 3 {
		for y := 0; y < 1<<width; y += 5 {
			got, err := BinaryAdd(toBits(x), toBits(y))
			require.NoError(t, err)
			require.Len(t, got, width+1)
			assert.Equal(t, x+y, fromBits(got), "%d + %d", x, y)
		}
	}
}

func TestBinaryAddLengthMismatch(t *testing.T) {
	_, err := BinaryAdd([]bool{T, F}, []bool{T})
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "(2 and 1, respectively)")
}

func TestParseFormatBits(t *testing.T) {
	bits, err := ParseBits("00110")
	require.NoError(t, err)
	assert.Equal(t, []bool{F, F, T, T, F}, bits)
	assert.Equal(t, "00110", FormatBits(bits))

	_, err = ParseBits("01x")
	assert.Error(t, err)
}
