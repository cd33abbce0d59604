package scene

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// BackToFront returns the indices of positions ordered from farthest to
// nearest to eye. Transparent objects must be blended in this order.
//
// https://learnopengl.com/Advanced-OpenGL/Blending
func BackToFront(positions []mgl32.Vec3, eye mgl32.Vec3) []int {

	order := make([]int, len(positions))
	dist := make([]float32, len(positions))
	for i, p := range positions {
		order[i] = i
		d := p.Sub(eye)
		dist[i] = d.Dot(d)
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(dist[b], dist[a])
	})
	return order

}
