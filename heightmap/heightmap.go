// Package heightmap turns a terrain image into an indexed triangle grid.
//
// Heights are stored in the color channels the way terrain tile services
// encode elevation:
//
//	height = R*256 + G + B/256 - 32768
//
// https://github.com/tilezen/joerd/blob/master/docs/formats.md#terrarium
package heightmap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/learnopengl/texture"
)

// Grid is a terrain mesh with one vertex per image pixel. X and Z span [0, 1],
// Y is the decoded height.
type Grid struct {
	Width     int
	Height    int
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// Load reads a heightmap image file.
func Load(path string, flipY bool) (*Grid, error) {
	img, err := texture.Open(path, false)
	if err != nil {
		return nil, err
	}
	return FromImage(img, flipY)
}

// FromImage builds the grid for img, reading the rows bottom up when flipY
// is set. Channels are read unpremultiplied, so alpha never changes a height.
func FromImage(img image.Image, flipY bool) (*Grid, error) {

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("heightmap must be at least 2x2 pixels, got %dx%d", w, h)
	}

	g := &Grid{
		Width:     w,
		Height:    h,
		Positions: make([]mgl32.Vec3, 0, w*h),
		Indices:   make([]uint32, 0, (w-1)*(h-1)*6),
	}

	for y := 0; y < h; y++ {
		row := y
		if flipY {
			row = h - 1 - y
		}
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+row)).(color.NRGBA)
			g.Positions = append(g.Positions, mgl32.Vec3{
				float32(x) / float32(w-1),
				Decode(c.R, c.G, c.B),
				float32(y) / float32(h-1),
			})
		}
	}

	// two triangles per cell, none starting on the last column
	for i := 0; i < w*(h-1); i++ {
		if (i+1)%w == 0 {
			continue
		}
		j := uint32(i)
		s := uint32(w)
		g.Indices = append(g.Indices,
			j, j+1, j+s, // upper-left triangle
			j+1, j+s+1, j+s, // lower-right triangle
		)
	}

	g.Normals = normals(g.Positions, g.Indices)

	return g, nil

}

// Decode returns the height stored in 8 bit, non-premultiplied channels.
func Decode(r, g, b uint8) float32 {
	return float32(r)*256 + float32(g) + float32(b)/256 - 32768
}

// vertex normals are the normalized sum of the adjacent face normals,
// so larger faces weigh more
func normals(positions []mgl32.Vec3, indices []uint32) []mgl32.Vec3 {

	n := make([]mgl32.Vec3, len(positions))
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		pa := positions[a]
		face := positions[c].Sub(pa).Cross(positions[b].Sub(pa))
		n[a] = n[a].Add(face)
		n[b] = n[b].Add(face)
		n[c] = n[c].Add(face)
	}

	for i := range n {
		if n[i].Len() > 0 {
			n[i] = n[i].Normalize()
		}
	}
	return n

}

// Interleaved returns x, y, z, nx, ny, nz for every vertex.
func (g *Grid) Interleaved() []float32 {
	out := make([]float32, 0, len(g.Positions)*6)
	for i, p := range g.Positions {
		nrm := g.Normals[i]
		out = append(out, p.X(), p.Y(), p.Z(), nrm.X(), nrm.Y(), nrm.Z())
	}
	return out
}

// HeightRange returns the lowest and highest vertex heights.
func (g *Grid) HeightRange() (lo, hi float32) {
	lo, hi = g.Positions[0].Y(), g.Positions[0].Y()
	for _, p := range g.Positions[1:] {
		lo = min(lo, p.Y())
		hi = max(hi, p.Y())
	}
	return lo, hi
}
