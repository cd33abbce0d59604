package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func lit(img *image.RGBA) []image.Point {
	var pts []image.Point
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != black {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

func TestViewport(t *testing.T) {
	assert.Equal(t, image.Pt(0, 799), Viewport(mgl32.Vec3{-1, -1, 0}, 800, 800))
	assert.Equal(t, image.Pt(799, 0), Viewport(mgl32.Vec3{1, 1, 0}, 800, 800))
	assert.Equal(t, image.Pt(4, 2), Viewport(mgl32.Vec3{0, 0, 0.5}, 9, 5))
}

func TestLine(t *testing.T) {
	img := blank(5, 5)
	Line(img, image.Pt(0, 0), image.Pt(4, 2), white)

	pts := lit(img)
	assert.Len(t, pts, 5)
	assert.Contains(t, pts, image.Pt(0, 0))
	assert.Contains(t, pts, image.Pt(4, 2))

	// one pixel per column along the major axis
	cols := map[int]int{}
	for _, p := range pts {
		cols[p.X]++
	}
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}, cols)

	img = blank(5, 5)
	Line(img, image.Pt(4, 2), image.Pt(0, 0), white)
	assert.Len(t, lit(img), 5)

	img = blank(5, 5)
	Line(img, image.Pt(2, 2), image.Pt(2, 2), white)
	assert.Equal(t, []image.Point{{2, 2}}, lit(img))
}

func TestLineClipped(t *testing.T) {
	img := blank(5, 5)
	Line(img, image.Pt(-3, 2), image.Pt(7, 2), white)
	assert.Equal(t, []image.Point{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}, lit(img))

	img = blank(5, 5)
	Line(img, image.Pt(-10, -10), image.Pt(-1, 20), white)
	assert.Empty(t, lit(img))
}

func TestTriangle(t *testing.T) {
	img := blank(10, 10)
	Triangle(img, image.Pt(1, 1), image.Pt(8, 1), image.Pt(1, 8), white)

	assert.Len(t, lit(img), 36)
	for _, p := range []image.Point{{1, 1}, {8, 1}, {1, 8}, {4, 5}} {
		assert.Equal(t, white, img.RGBAAt(p.X, p.Y), "%v", p)
	}
	for _, p := range []image.Point{{0, 0}, {8, 8}, {5, 5}, {9, 1}} {
		assert.Equal(t, black, img.RGBAAt(p.X, p.Y), "%v", p)
	}

	// vertex order does not matter
	other := blank(10, 10)
	Triangle(other, image.Pt(1, 8), image.Pt(1, 1), image.Pt(8, 1), white)
	assert.Equal(t, img.Pix, other.Pix)

	img = blank(10, 10)
	Triangle(img, image.Pt(3, 3), image.Pt(3, 3), image.Pt(3, 3), white)
	assert.Equal(t, []image.Point{{3, 3}}, lit(img))
}

func TestTriangleClipped(t *testing.T) {
	img := blank(10, 10)
	Triangle(img, image.Pt(-5, -5), image.Pt(20, -5), image.Pt(-5, 20), white)

	assert.Len(t, lit(img), 94)
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(9, 0))
	assert.Equal(t, black, img.RGBAAt(9, 9))
}

func facing() *Model {
	return &Model{
		Vertices: []mgl32.Vec3{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}},
		Faces:    [][3]int{{0, 1, 2}},
	}
}

func TestWireframe(t *testing.T) {
	img := Wireframe(facing(), 9, 9, white)
	for _, p := range []image.Point{{0, 8}, {8, 8}, {4, 0}, {4, 8}} {
		assert.Equal(t, white, img.RGBAAt(p.X, p.Y), "%v", p)
	}
	assert.Equal(t, black, img.RGBAAt(4, 5))
	assert.Equal(t, black, img.RGBAAt(0, 0))
}

func TestSolid(t *testing.T) {
	orange := color.NRGBA{200, 100, 50, 255}

	img := Solid(facing(), 9, 9, orange)
	assert.Equal(t, color.RGBA{200, 100, 50, 255}, img.RGBAAt(4, 5))
	assert.Equal(t, black, img.RGBAAt(0, 0))

	// clockwise from the front means the back is showing
	back := facing()
	back.Faces[0] = [3]int{0, 2, 1}
	assert.Empty(t, lit(Solid(back, 9, 9, orange)))
}

func TestTestPattern(t *testing.T) {
	img := TestPattern(800, 800, 700)

	// block spans 50..750 counted from the bottom left
	assert.Equal(t, color.RGBA{50, 50, 196, 255}, img.RGBAAt(50, 749))
	assert.Equal(t, color.RGBA{238, 94, 100, 255}, img.RGBAAt(750, 799-350))
	assert.Equal(t, black, img.RGBAAt(49, 749))
	assert.Equal(t, black, img.RGBAAt(50, 799-751))

	// larger than the image
	img = TestPattern(10, 10, 30)
	assert.Equal(t, color.RGBA{5, 5, 25, 255}, img.RGBAAt(5, 4))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := TestPattern(16, 8, 6)

	for _, name := range []string{"out.png", "out.JPG", "out.bmp"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, img), name)
		back, err := imgio.Open(path)
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), back.Bounds())
	}

	assert.Error(t, Save(filepath.Join(dir, "out.tga"), img))
}
