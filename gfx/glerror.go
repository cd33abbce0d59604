// Package gfx wraps the OpenGL 3.3 core and GLFW calls shared by the
// lessons: windows and input, shader programs, textures, vertex arrays and
// offscreen framebuffers.
//
// All functions must be called from the main thread, after OpenWindow.
package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var glErrorLookup = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// ErrorName returns the symbolic name of an OpenGL error code.
func ErrorName(errcode uint32) string {
	if errstr, ok := glErrorLookup[errcode]; ok {
		return errstr
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: %v", errcode)
}

// CheckError panics on the first accumulated OpenGL error.
func CheckError() {
	for {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		panic(fmt.Sprintf("GL_ERROR: %s", ErrorName(glerr)))
	}
}
