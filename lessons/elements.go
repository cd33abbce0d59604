package lessons

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/learnopengl/gfx"
	"github.com/paperboard/learnopengl/scene"
)

// drawLit draws va once per model with the lit shader already bound.
func drawLit(shader *gfx.Shader, va *gfx.VertexArray, view mgl32.Mat4, models ...mgl32.Mat4) {
	for _, model := range models {
		normal, err := scene.NormalMatrix(view, model)
		if err != nil {
			panic(fmt.Sprintf("normal matrix: %v", err))
		}
		shader.SetMat4("model", model)
		shader.SetMat3("normalMatrixView", normal)
		va.Draw()
	}
}

// useLit binds shader and uploads camera, lights and material.
func useLit(shader *gfx.Shader, m scene.Material, lights []scene.Light, view, projection mgl32.Mat4) {
	shader.Use()
	shader.SetMat4("view", view)
	shader.SetMat4("projection", projection)
	scene.ApplyLights(shader, lights, view)
	for _, b := range m.Apply(shader) {
		gfx.BindTexture(b.Unit, b.Texture)
	}
}

// Cubes draws lit cubes, optionally with a stencil outline.
//
// https://learnopengl.com/Advanced-OpenGL/Stencil-testing
type Cubes struct {
	Shader   *gfx.Shader
	Material scene.Material
	// Models returns the model matrix of every cube at time t.
	Models func(t float32) []mgl32.Mat4

	// Outline, when set, draws a highlight border around every cube.
	Outline      *gfx.Shader
	OutlineColor mgl32.Vec3
	OutlineScale float32

	va *gfx.VertexArray
}

func NewCubes(shader *gfx.Shader, m scene.Material, models func(t float32) []mgl32.Mat4) *Cubes {
	return &Cubes{
		Shader:       shader,
		Material:     m,
		Models:       models,
		OutlineColor: mgl32.Vec3{0.04, 0.28, 0.26},
		OutlineScale: 1.1,
		va:           gfx.NewVertexArray(cubeVertices, layoutPosNormalTex, nil),
	}
}

func (c *Cubes) Render(t float32, lights []scene.Light, view, projection mgl32.Mat4) {

	models := c.Models(t)

	if c.Outline != nil {
		// every cube fragment writes 1 to the stencil buffer
		gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
		gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
		gl.StencilMask(0xFF)
	}

	useLit(c.Shader, c.Material, lights, view, projection)
	drawLit(c.Shader, c.va, view, models...)

	if c.Outline == nil {
		return
	}

	// draw scaled up cubes only where the stencil is not 1, on top of everything
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilMask(0x00)
	gl.Disable(gl.DEPTH_TEST)

	c.Outline.Use()
	c.Outline.SetMat4("view", view)
	c.Outline.SetMat4("projection", projection)
	c.Outline.SetVec3("outlineColor", c.OutlineColor)
	s := c.OutlineScale
	for _, model := range models {
		c.Outline.SetMat4("model", model.Mul4(mgl32.Scale3D(s, s, s)))
		c.va.Draw()
	}

	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
	gl.Enable(gl.DEPTH_TEST)

}

func (c *Cubes) Close() error { return c.va.Close() }

// Lamps draws a small cube in each point light's diffuse color.
type Lamps struct {
	Shader *gfx.Shader
	Size   float32
	va     *gfx.VertexArray
}

func NewLamps(shader *gfx.Shader) *Lamps {
	return &Lamps{
		Shader: shader,
		Size:   0.2,
		va:     gfx.NewVertexArray(cubeVertices, layoutPosNormalTex, nil),
	}
}

func (l *Lamps) Render(_ float32, lights []scene.Light, view, projection mgl32.Mat4) {

	l.Shader.Use()
	l.Shader.SetMat4("view", view)
	l.Shader.SetMat4("projection", projection)

	for _, light := range lights {
		if light.Kind != scene.Point {
			continue
		}
		p := light.Position
		model := mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(l.Size, l.Size, l.Size))
		l.Shader.SetMat4("model", model)
		l.Shader.SetVec3("lampColor", light.Diffuse)
		l.va.Draw()
	}

}

func (l *Lamps) Close() error { return l.va.Close() }

// CoordinateAxes draws the X (red), Y (green) and Z (blue) axes.
type CoordinateAxes struct {
	Shader *gfx.Shader
	va     *gfx.VertexArray
}

func NewCoordinateAxes(shader *gfx.Shader) *CoordinateAxes {
	const far = 10000
	va := gfx.NewVertexArray([]float32{
		-far, 0, 0, 1, 0, 0,
		far, 0, 0, 1, 0, 0,
		0, -far, 0, 0, 1, 0,
		0, far, 0, 0, 1, 0,
		0, 0, -far, 0, 0, 1,
		0, 0, far, 0, 0, 1,
	}, layoutPosColor, nil)
	va.Mode = gl.LINES
	return &CoordinateAxes{Shader: shader, va: va}
}

func (a *CoordinateAxes) Render(_ float32, _ []scene.Light, view, projection mgl32.Mat4) {
	a.Shader.Use()
	a.Shader.SetMat4("view", view)
	a.Shader.SetMat4("projection", projection)
	a.Shader.SetMat4("model", mgl32.Ident4())
	a.va.Draw()
}

func (a *CoordinateAxes) Close() error { return a.va.Close() }

// Ground is a large textured, lit floor at y = Height. It never writes to
// the stencil buffer.
type Ground struct {
	Shader   *gfx.Shader
	Material scene.Material
	Height   float32
	Size     float32
	va       *gfx.VertexArray
}

func NewGround(shader *gfx.Shader, m scene.Material, size float32) *Ground {
	return &Ground{
		Shader:   shader,
		Material: m,
		Size:     size,
		va:       gfx.NewVertexArray(planeVertices(size/4), layoutPosNormalTex, nil),
	}
}

func (g *Ground) Render(_ float32, lights []scene.Light, view, projection mgl32.Mat4) {
	gl.StencilMask(0x00)
	useLit(g.Shader, g.Material, lights, view, projection)
	model := mgl32.Translate3D(0, g.Height, 0).Mul4(mgl32.Scale3D(g.Size, 1, g.Size))
	drawLit(g.Shader, g.va, view, model)
	gl.StencilMask(0xFF)
}

func (g *Ground) Close() error { return g.va.Close() }

// Billboards are upright textured quads. Translucent ones are blended and
// drawn back to front from the camera; opaque ones rely on the shader
// discarding transparent texels.
//
// https://learnopengl.com/Advanced-OpenGL/Blending
type Billboards struct {
	Shader      *gfx.Shader
	Material    scene.Material
	Positions   []mgl32.Vec3
	Translucent bool
	// Eye returns the camera position used for sorting.
	Eye func() mgl32.Vec3
	va  *gfx.VertexArray
}

func NewBillboards(shader *gfx.Shader, m scene.Material, positions []mgl32.Vec3) *Billboards {
	return &Billboards{
		Shader:    shader,
		Material:  m,
		Positions: positions,
		va:        gfx.NewVertexArray(quadVertices, layoutPosNormalTex, nil),
	}
}

func (b *Billboards) Render(_ float32, lights []scene.Light, view, projection mgl32.Mat4) {

	order := make([]int, len(b.Positions))
	for i := range order {
		order[i] = i
	}
	if b.Translucent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		order = scene.BackToFront(b.Positions, b.Eye())
	}

	useLit(b.Shader, b.Material, lights, view, projection)
	for _, i := range order {
		p := b.Positions[i]
		drawLit(b.Shader, b.va, view, mgl32.Translate3D(p.X(), p.Y(), p.Z()))
	}

	if b.Translucent {
		gl.Disable(gl.BLEND)
	}

}

func (b *Billboards) Close() error { return b.va.Close() }
