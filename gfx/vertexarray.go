package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/paperboard/learnopengl/gfx/validate"
)

const (
	bytesFloat32 = 4 // a float32 is 4 bytes
	bytesUint32  = 4 // a uint32 is 4 bytes
)

// VertexArray is a VAO over one interleaved vertex buffer and an optional
// index buffer.
type VertexArray struct {
	vao     uint32
	vbo     uint32
	ebo     uint32
	count   int32 // vertices, or indices when ebo != 0
	stride  int32 // floats per vertex
	Mode    uint32
	indexed bool
}

// NewVertexArray uploads interleaved vertices. Layout gives the component
// count of each attribute in order; attribute i uses location i.
// It panics when the data does not fit the layout or an index points past
// the last vertex.
//
// https://www.songho.ca/opengl/gl_vbo.html#create
// https://learnopengl.com/Getting-started/Hello-Triangle
func NewVertexArray(vertices []float32, layout []int32, indices []uint32) *VertexArray {

	count, err := validate.Vertices(vertices, layout, indices)
	if err != nil {
		panic(fmt.Sprintf("vertex array: %v", err))
	}

	var stride int32
	for _, size := range layout {
		stride += size
	}

	va := &VertexArray{
		stride:  stride,
		count:   count,
		Mode:    gl.TRIANGLES,
		indexed: len(indices) > 0,
	}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	// copy vertex data to VBO
	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*bytesFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	// copy index data to EBO, the binding is stored in the VAO
	if va.indexed {
		gl.GenBuffers(1, &va.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*bytesUint32, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	// configure and enable each attribute
	var offset int32
	for i, size := range layout {
		gl.VertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride*bytesFloat32, gl.PtrOffset(int(offset*bytesFloat32)))
		gl.EnableVertexAttribArray(uint32(i))
		offset += size
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return va

}

// Draw draws the whole array with Mode.
func (va *VertexArray) Draw() {

	gl.BindVertexArray(va.vao)

	if va.indexed {
		gl.DrawElements(va.Mode, va.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(va.Mode, 0, va.count)
	}

	gl.BindVertexArray(0)

}

func (va *VertexArray) Close() error {
	gl.DeleteVertexArrays(1, &va.vao)
	gl.DeleteBuffers(1, &va.vbo)
	if va.indexed {
		gl.DeleteBuffers(1, &va.ebo)
	}
	return nil
}
