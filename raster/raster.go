// Package raster draws models into images on the CPU, without a GL context.
// The image origin is the top left corner; Viewport flips normalized device
// coordinates so +Y points up on screen.
//
// https://github.com/ssloy/tinyrenderer/wiki/Lesson-1:-Bresenham%E2%80%99s-Line-Drawing-Algorithm
// https://github.com/ssloy/tinyrenderer/wiki/Lesson-2:-Triangle-rasterization-and-back-face-culling
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport maps x and y in [-1, 1] to the pixel grid of a w x h image.
func Viewport(v mgl32.Vec3, w, h int) image.Point {
	return image.Point{
		X: int(math32.Round((v.X() + 1) * 0.5 * float32(w-1))),
		Y: int(math32.Round((1 - v.Y()) * 0.5 * float32(h-1))), // flip Y axis for screen
	}
}

// Line draws from a to b inclusive. Pixels outside img are skipped.
func Line(img draw.Image, a, b image.Point, c color.Color) {

	bounds := img.Bounds()

	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)

	sx := 1
	if a.X >= b.X {
		sx = -1
	}
	sy := 1
	if a.Y >= b.Y {
		sy = -1
	}

	err := dx + dy
	for p := a; ; {
		if p.In(bounds) {
			img.Set(p.X, p.Y, c)
		}
		if p == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}

}

// Triangle fills the triangle p0 p1 p2, edges included, one row at a time.
func Triangle(img draw.Image, p0, p1, p2 image.Point, c color.Color) {

	bounds := img.Bounds()

	// sort vertices by y
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
	}
	if p2.Y < p0.Y {
		p0, p2 = p2, p0
	}
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}

	// x of the long edge and of the two short edges, one entry per row
	x02 := interpolate(p0.Y, p2.Y, p0.X, p2.X)
	x01 := interpolate(p0.Y, p1.Y, p0.X, p1.X)
	x12 := interpolate(p1.Y, p2.Y, p1.X, p2.X)
	x012 := append(x01[:len(x01)-1], x12...)

	for y := max(p0.Y, bounds.Min.Y); y <= min(p2.Y, bounds.Max.Y-1); y++ {
		xa, xb := x02[y-p0.Y], x012[y-p0.Y]
		if xa > xb {
			xa, xb = xb, xa
		}
		for x := max(xa, bounds.Min.X); x <= min(xb, bounds.Max.X-1); x++ {
			img.Set(x, y, c)
		}
	}

}

// interpolate returns x for every row from y0 to y1.
func interpolate(y0, y1, x0, x1 int) []int {
	dy := y1 - y0
	if dy == 0 {
		return []int{x0}
	}
	xs := make([]int, 0, dy+1)
	for i := 0; i <= dy; i++ {
		xs = append(xs, x0+(x1-x0)*i/dy)
	}
	return xs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	return img
}

// Wireframe draws the edges of every face of m.
func Wireframe(m *Model, w, h int, c color.Color) *image.RGBA {
	img := blank(w, h)
	for _, f := range m.Faces {
		for j := 0; j < 3; j++ {
			a := Viewport(m.Vertices[f[j]], w, h)
			b := Viewport(m.Vertices[f[(j+1)%3]], w, h)
			Line(img, a, b, c)
		}
	}
	return img
}

// Solid fills every face of m that faces the viewer, shaded by the angle
// between its normal and a light shining down -Z. Faces are counter
// clockwise when seen from the front.
func Solid(m *Model, w, h int, c color.Color) *image.RGBA {

	img := blank(w, h)
	light := mgl32.Vec3{0, 0, -1}
	base := color.NRGBAModel.Convert(c).(color.NRGBA)

	for _, f := range m.Faces {
		v0, v1, v2 := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		n := v2.Sub(v0).Cross(v1.Sub(v0))
		if n.Len() == 0 {
			continue
		}
		k := n.Normalize().Dot(light)
		// back face
		if k <= 0 {
			continue
		}
		shaded := color.NRGBA{
			R: uint8(float32(base.R) * k),
			G: uint8(float32(base.G) * k),
			B: uint8(float32(base.B) * k),
			A: base.A,
		}
		Triangle(img, Viewport(v0, w, h), Viewport(v1, w, h), Viewport(v2, w, h), shaded)
	}

	return img

}

// TestPattern fills a block x block square centered in a w x h image with
// a gradient: red follows x, green follows y, blue is x*y. Coordinates are
// counted from the bottom left corner.
func TestPattern(w, h, block int) *image.RGBA {
	img := blank(w, h)
	cx, cy := w/2, h/2
	for x := cx - block/2; x <= cx+block/2; x++ {
		for y := cy - block/2; y <= cy+block/2; y++ {
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			img.SetRGBA(x, h-1-y, color.RGBA{uint8(x % 256), uint8(y % 256), uint8((x * y) % 256), 255})
		}
	}
	return img
}

// Save writes img, picking the encoder from the file extension.
func Save(path string, img image.Image) error {
	var enc imgio.Encoder
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		enc = imgio.PNGEncoder()
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(95)
	case ".bmp":
		enc = imgio.BMPEncoder()
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
	return imgio.Save(path, img, enc)
}
