package heightmap

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 3x3 map with a single peak in the middle
func peak() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 255, 0, 255})
		}
	}
	img.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})
	return img
}

func TestFromImagePeak(t *testing.T) {
	g, err := FromImage(peak(), false)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 3, g.Height)
	require.Len(t, g.Positions, 9)

	for i, p := range g.Positions {
		x, y := i%3, i/3
		assert.Equal(t, float32(x)/2, p.X())
		assert.Equal(t, float32(y)/2, p.Z())
		if i == 4 {
			assert.Equal(t, float32(32512), p.Y())
		} else {
			assert.Equal(t, float32(-32513), p.Y())
		}
	}

	assert.Equal(t, []uint32{
		0, 1, 3, 1, 4, 3,
		1, 2, 4, 2, 5, 4,
		3, 4, 6, 4, 7, 6,
		4, 5, 7, 5, 8, 7,
	}, g.Indices)

	lo, hi := g.HeightRange()
	assert.Equal(t, float32(-32513), lo)
	assert.Equal(t, float32(32512), hi)
}

func TestFlatNormalsPointUp(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	g, err := FromImage(img, false)
	require.NoError(t, err)
	for _, n := range g.Normals {
		assert.True(t, n.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5), "%v", n)
	}
	assert.Len(t, g.Indices, 3*2*6)
	assert.Len(t, g.Interleaved(), 12*6)
}

func TestFromImageFlipY(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{128, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{128, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{128, 1, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{128, 1, 0, 255})

	g, err := FromImage(img, false)
	require.NoError(t, err)
	assert.Equal(t, float32(0), g.Positions[0].Y())
	assert.Equal(t, float32(1), g.Positions[2].Y())

	g, err = FromImage(img, true)
	require.NoError(t, err)
	assert.Equal(t, float32(1), g.Positions[0].Y())
	assert.Equal(t, float32(0), g.Positions[2].Y())
}

func TestFromImageTooSmall(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 1, 5)), false)
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	assert.Equal(t, float32(2.5), Decode(128, 2, 128))
	assert.Equal(t, float32(-32768), Decode(0, 0, 0))
}

func TestFromImageIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []uint8{128, 0, 0, 128})
	}
	img.SetNRGBA(1, 1, color.NRGBA{128, 7, 0, 0})

	for _, flip := range []bool{false, true} {
		g, err := FromImage(img, flip)
		require.NoError(t, err)
		for i, p := range g.Positions {
			want := float32(0)
			if (i == 3 && !flip) || (i == 1 && flip) {
				want = 7
			}
			assert.Equal(t, want, p.Y(), "flip %v vertex %d", flip, i)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peak.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, peak()))
	require.NoError(t, f.Close())

	g, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, float32(32512), g.Positions[4].Y())

	_, err = Load(filepath.Join(t.TempDir(), "nope.png"), false)
	assert.Error(t, err)
}
