package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/paperboard/learnopengl/gfx/validate"
)

// Framebuffer is a proxy screen: the scene is drawn into it and its color
// texture is then drawn onto the real screen. With samples > 0 drawing goes
// to a multisampled FBO that Resolve blits into the texture.
//
// http://www.songho.ca/opengl/gl_fbo.html
// https://learnopengl.com/Advanced-OpenGL/Framebuffers
// https://learnopengl.com/Advanced-OpenGL/Anti-Aliasing
type Framebuffer struct {
	fbo             uint32 // framebuffer sampled by the screen pass
	fboTexture      uint32 // color attachment of fbo
	fboRenderbuffer uint32 // depth & stencil attachment of fbo (single sampled only)

	msFBO          uint32 // multisampled framebuffer drawn into
	msColor        uint32 // multisampled color renderbuffer
	msRenderbuffer uint32 // multisampled depth & stencil renderbuffer

	samples       int32
	width, height int32
}

// NewFramebuffer creates a width x height pixel framebuffer.
func NewFramebuffer(width, height, samples int32) (*Framebuffer, error) {
	if err := validate.Size(width, height); err != nil {
		return nil, fmt.Errorf("framebuffer: %w", err)
	}
	f := &Framebuffer{samples: samples}
	if err := f.create(width, height); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (f *Framebuffer) create(width, height int32) error {

	f.width, f.height = width, height

	// create FBO and bind to it
	gl.GenFramebuffers(1, &f.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)

	// attach texture to FBO (color buffer component)
	f.attachTexture()

	// attach renderbuffer to FBO (combined depth and stencil buffer component),
	// only needed when the scene is drawn straight into it
	if f.samples == 0 {
		f.fboRenderbuffer = attachRenderbuffer(gl.DEPTH_STENCIL_ATTACHMENT, gl.DEPTH24_STENCIL8, 0, width, height)
	}

	// check if FBO is ready and valid
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	if f.samples > 0 {

		gl.GenFramebuffers(1, &f.msFBO)
		gl.BindFramebuffer(gl.FRAMEBUFFER, f.msFBO)

		f.msColor = attachRenderbuffer(gl.COLOR_ATTACHMENT0, gl.RGB8, f.samples, width, height)
		f.msRenderbuffer = attachRenderbuffer(gl.DEPTH_STENCIL_ATTACHMENT, gl.DEPTH24_STENCIL8, f.samples, width, height)

		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			return fmt.Errorf("multisampled framebuffer incomplete: 0x%x", status)
		}

	}

	// unbind FBO
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return nil

}

func (f *Framebuffer) attachTexture() {

	// NOTE: a texture can be attached to multiple FBOs, where its image storage is shared
	gl.GenTextures(1, &f.fboTexture)
	gl.BindTexture(gl.TEXTURE_2D, f.fboTexture)

	// initalize texture (memory space and min/mag filters)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, f.width, f.height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	// attach texture to framebuffer
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.fboTexture, 0)

}

func attachRenderbuffer(attachment, format uint32, samples, width, height int32) uint32 {

	// create renderbuffer and bind to it
	var rbo uint32
	gl.GenRenderbuffers(1, &rbo)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rbo)

	// initalize renderbuffer memory space
	if samples > 0 {
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, format, width, height)
	} else {
		gl.RenderbufferStorage(gl.RENDERBUFFER, format, width, height)
	}

	// unbind renderbuffer
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	// attach renderbuffer to framebuffer
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, rbo)

	return rbo

}

// Bind directs drawing into the framebuffer and sets the viewport to its size.
func (f *Framebuffer) Bind() {
	if f.samples > 0 {
		gl.BindFramebuffer(gl.FRAMEBUFFER, f.msFBO)
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	}
	gl.Viewport(0, 0, f.width, f.height)
}

// Resolve finishes drawing: multisampled pixels are averaged into the
// texture and the default framebuffer is bound again.
func (f *Framebuffer) Resolve() {
	if f.samples > 0 {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, f.msFBO)
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, f.fbo)
		gl.BlitFramebuffer(0, 0, f.width, f.height, 0, 0, f.width, f.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Texture is the color texture holding the last resolved frame.
func (f *Framebuffer) Texture() uint32 { return f.fboTexture }

// Resize recreates the attachments for a new size. A zero size, as reported
// while the window is minimized, keeps the current attachments. On error the
// framebuffer is left as it was.
func (f *Framebuffer) Resize(width, height int32) error {
	if validate.Size(width, height) != nil || (width == f.width && height == f.height) {
		return nil
	}
	next, err := NewFramebuffer(width, height, f.samples)
	if err != nil {
		return err
	}
	f.Close()
	*f = *next
	return nil
}

func (f *Framebuffer) Close() error {
	for _, rbo := range []*uint32{&f.fboRenderbuffer, &f.msColor, &f.msRenderbuffer} {
		if *rbo != 0 {
			gl.DeleteRenderbuffers(1, rbo)
			*rbo = 0
		}
	}
	if f.fboTexture != 0 {
		gl.DeleteTextures(1, &f.fboTexture)
		f.fboTexture = 0
	}
	for _, fbo := range []*uint32{&f.fbo, &f.msFBO} {
		if *fbo != 0 {
			gl.DeleteFramebuffers(1, fbo)
			*fbo = 0
		}
	}
	return nil
}
