package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertices(t *testing.T) {
	quad := []float32{
		0.5, 0.5, 0, 1, 1,
		0.5, -0.5, 0, 1, 0,
		-0.5, -0.5, 0, 0, 0,
		-0.5, 0.5, 0, 0, 1,
	}

	n, err := Vertices(quad, []int32{3, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(4), n)

	n, err = Vertices(quad, []int32{3, 2}, []uint32{0, 1, 3, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int32(6), n)

	n, err = Vertices(nil, []int32{3}, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestVerticesRejects(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		layout   []int32
		indices  []uint32
		want     error
	}{
		{"no layout", []float32{1, 2, 3}, nil, nil, ErrLayout},
		{"zero size", []float32{1, 2, 3}, []int32{3, 0}, nil, ErrLayout},
		{"negative size", []float32{1, 2, 3}, []int32{-3}, nil, ErrLayout},
		{"five components", []float32{1, 2, 3, 4, 5}, []int32{5}, nil, ErrLayout},
		{"trailing floats", []float32{1, 2, 3, 4, 5, 6, 7}, []int32{3}, nil, ErrPartial},
		{"index past end", []float32{1, 2, 3, 4, 5, 6}, []int32{3}, []uint32{0, 1, 2}, ErrIndex},
		{"index with no vertices", nil, []int32{3}, []uint32{0}, ErrIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Vertices(tt.vertices, tt.layout, tt.indices)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSize(t *testing.T) {
	assert.NoError(t, Size(800, 600))
	assert.NoError(t, Size(1, 1))
	assert.ErrorIs(t, Size(0, 0), ErrSize)
	assert.ErrorIs(t, Size(800, 0), ErrSize)
	assert.ErrorIs(t, Size(-1, 600), ErrSize)
}
