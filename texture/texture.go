// Package texture decodes image files into tightly packed pixel data ready
// for upload with glTexImage2D.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"  // register gif decoder
	_ "image/jpeg" // register jpeg decoder
	_ "image/png"  // register png decoder

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"  // register bmp decoder
	_ "golang.org/x/image/tiff" // register tiff decoder
	_ "golang.org/x/image/webp" // register webp decoder
)

// Format is the channel layout of Data.Pix.
type Format int

// values are the channel counts
const (
	Red  Format = 1
	RGB  Format = 3
	RGBA Format = 4
)

func (f Format) String() string {
	switch f {
	case Red:
		return "RED"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Channels is the number of bytes per pixel.
func (f Format) Channels() int {
	return int(f)
}

// Data is an 8 bit per channel image, rows stored bottom to top when the
// source was flipped.
type Data struct {
	Width  int
	Height int
	Format Format
	Pix    []uint8
}

// Open decodes the image file at path. With flipY set the rows are reversed,
// which puts the first row at the bottom as OpenGL texture coordinates expect.
func Open(path string, flipY bool) (image.Image, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %q: %w", path, err)
	}

	if flipY {
		return transform.FlipV(img), nil
	}
	return img, nil

}

// Load is Open followed by Pixels.
func Load(path string, flipY bool) (Data, error) {
	img, err := Open(path, flipY)
	if err != nil {
		return Data{}, err
	}
	return Pixels(img), nil
}

// Pixels converts img to packed pixel data. Grayscale images become Red,
// opaque images RGB and everything else RGBA.
func Pixels(img image.Image) Data {

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		pix := make([]uint8, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):]
			pix = append(pix, row[:w]...)
		}
		return Data{Width: w, Height: h, Format: Red, Pix: pix}
	case *image.Gray16:
		pix := make([]uint8, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				pix = append(pix, uint8(src.Gray16At(x, y).Y>>8))
			}
		}
		return Data{Width: w, Height: h, Format: Red, Pix: pix}
	}

	// non-premultiplied so that alpha tested textures keep their color
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if !opaque(rgba) {
		return Data{Width: w, Height: h, Format: RGBA, Pix: rgba.Pix}
	}

	pix := make([]uint8, 0, w*h*3)
	for i := 0; i < len(rgba.Pix); i += 4 {
		pix = append(pix, rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2])
	}
	return Data{Width: w, Height: h, Format: RGB, Pix: pix}

}

func opaque(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			return false
		}
	}
	return true
}
