package clrs

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertionSort(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{7}, []int{7}},
		{"sorted", []int{1, 2, 3}, []int{1, 2, 3}},
		{"reversed", []int{3, 2, 1}, []int{1, 2, 3}},
		{"duplicates", []int{2, 1, 2, 1}, []int{1, 1, 2, 2}},
		{
			"mixed",
			[]int{-8, 923, 17, 1, 15, -72, -23849, 0, 129},
			[]int{-23849, -72, -8, 0, 1, 15, 17, 129, 923},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InsertionSort(tt.in)
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestInsertionSortRandomPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = r.Intn(100) - 50
		}
		want := slices.Clone(in)
		slices.Sort(want)

		InsertionSort(in)
		assert.Equal(t, want, in)

		// sorting again changes nothing
		InsertionSort(in)
		assert.Equal(t, want, in)
	}
}

func TestInsertionSortFuncStable(t *testing.T) {
	words := []string{"bb", "a", "cc", "d", "aa"}
	InsertionSortFunc(words, func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, []string{"a", "d", "bb", "cc", "aa"}, words)

	InsertionSortFunc(words, strings.Compare)
	assert.Equal(t, []string{"a", "aa", "bb", "cc", "d"}, words)
}
