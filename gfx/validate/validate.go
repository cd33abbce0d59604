// Package validate checks buffer and size arguments before they reach the
// GL, where a mistake becomes an out of bounds read in the driver instead
// of an error.
package validate

import (
	"errors"
	"fmt"
)

var (
	ErrLayout  = errors.New("invalid attribute layout")
	ErrPartial = errors.New("vertex data is not a whole number of vertices")
	ErrIndex   = errors.New("index out of range")
	ErrSize    = errors.New("invalid size")
)

// Vertices checks interleaved vertex data against its attribute layout and
// optional index list. It returns the number of elements to draw: indices
// when there are any, vertices otherwise.
func Vertices(vertices []float32, layout []int32, indices []uint32) (int32, error) {

	if len(layout) == 0 {
		return 0, fmt.Errorf("%w: no attributes", ErrLayout)
	}

	var stride int32
	for i, size := range layout {
		if size < 1 || size > 4 {
			return 0, fmt.Errorf("%w: attribute %d has %d components", ErrLayout, i, size)
		}
		stride += size
	}

	if len(vertices)%int(stride) != 0 {
		return 0, fmt.Errorf("%w: %d floats, stride %d", ErrPartial, len(vertices), stride)
	}
	n := len(vertices) / int(stride)

	if len(indices) == 0 {
		return int32(n), nil
	}
	for i, idx := range indices {
		if int(idx) >= n {
			return 0, fmt.Errorf("%w: indices[%d] = %d, %d vertices", ErrIndex, i, idx, n)
		}
	}
	return int32(len(indices)), nil

}

// Size rejects framebuffer sizes that cannot back a texture, such as the
// 0x0 reported while a window is minimized.
func Size(width, height int32) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	return nil
}
