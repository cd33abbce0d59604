package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/paperboard/learnopengl/texture"
)

// TextureOptions controls sampling of a loaded texture.
type TextureOptions struct {
	// FlipY puts the first image row at t = 1.
	FlipY bool
	// ClampToEdge stops translucent borders bleeding in from the opposite side.
	ClampToEdge bool
}

var glFormats = map[texture.Format]uint32{
	texture.Red:  gl.RED,
	texture.RGB:  gl.RGB,
	texture.RGBA: gl.RGBA,
}

// LoadTexture decodes an image file into a mipmapped 2D texture.
//
// https://learnopengl.com/Getting-started/Textures
func LoadTexture(path string, opts TextureOptions) (uint32, error) {
	data, err := texture.Load(path, opts.FlipY)
	if err != nil {
		return 0, err
	}
	return UploadTexture(data, opts), nil
}

// UploadTexture creates a texture from decoded pixels.
func UploadTexture(data texture.Data, opts TextureOptions) uint32 {

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	wrap := int32(gl.REPEAT)
	if opts.ClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// rows of RED and RGB data are not 4 byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	format := glFormats[data.Format]
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(data.Width), int32(data.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(data.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex

}

// BindTexture binds tex to texture unit.
func BindTexture(unit, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}
