package lessons

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/learnopengl/gfx"
	"github.com/paperboard/learnopengl/scene"
	"github.com/paperboard/learnopengl/transform"
)

func init() {
	register(lesson{id: "1.1", title: "Hello Window", dir: "1.1.hello_window", setup: setupHelloWindow})
	register(lesson{id: "1.2", title: "Hello Triangle", dir: "1.2.hello_triangle", setup: setupHelloTriangle})
	register(lesson{id: "1.3", title: "Shaders", dir: "1.3.shaders", setup: setupShaders})
	register(lesson{id: "1.5", title: "Transformations", dir: "1.5.transformations", setup: setupTransformations})
	register(lesson{id: "1.6", title: "Coordinate Systems", dir: "1.6.coordinate_systems", setup: setupCoordinateSystems})
}

// https://learnopengl.com/Getting-started/Hello-Window
func setupHelloWindow(ctx *Context) (FrameFunc, error) {

	// cleared background color = dark teal
	gl.ClearColor(0.2, 0.3, 0.3, 1)

	return func(_, _ float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}, nil

}

// https://learnopengl.com/Getting-started/Hello-Triangle
func setupHelloTriangle(ctx *Context) (FrameFunc, error) {

	shader, err := ctx.Shader("triangle.vert", "triangle.frag")
	if err != nil {
		return nil, err
	}

	// triangle on the left drawn from a plain vertex buffer
	triangle := gfx.NewVertexArray([]float32{
		-0.9, -0.5, 0, // left
		-0.1, -0.5, 0, // right
		-0.5, 0.5, 0, // top
	}, []int32{3}, nil)
	ctx.Defer(triangle)

	// rectangle on the right drawn with an element buffer
	rectangle := gfx.NewVertexArray([]float32{
		0.9, 0.5, 0, // top right
		0.9, -0.5, 0, // bottom right
		0.1, -0.5, 0, // bottom left
		0.1, 0.5, 0, // top left
	}, []int32{3}, []uint32{
		0, 1, 3, // first triangle
		1, 2, 3, // second triangle
	})
	ctx.Defer(rectangle)

	// space toggles wireframe mode
	wireframe := false
	ctx.Controls.OnKey(glfw.KeySpace, func() {
		wireframe = !wireframe
		if wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	})

	gl.ClearColor(0.2, 0.3, 0.3, 1)

	return func(_, _ float32) {

		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		triangle.Draw()
		rectangle.Draw()

	}, nil

}

// https://learnopengl.com/Getting-started/Shaders
func setupShaders(ctx *Context) (FrameFunc, error) {

	shader, err := ctx.Shader("shader.vert", "shader.frag")
	if err != nil {
		return nil, err
	}

	// position + color per vertex, interpolated across the triangle
	triangle := gfx.NewVertexArray([]float32{
		0.5, -0.5, 0, 1, 0, 0, // bottom right = red
		-0.5, -0.5, 0, 0, 1, 0, // bottom left = green
		0, 0.5, 0, 0, 0, 1, // top = blue
	}, layoutPosColor, nil)
	ctx.Defer(triangle)

	gl.ClearColor(0.2, 0.3, 0.3, 1)

	return func(t, _ float32) {

		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		shader.SetFloat("tint", math32.Sin(t)/2+0.5)
		triangle.Draw()

	}, nil

}

// texturedQuad is two triangles with texture coordinates, x,y,z + s,t
var texturedQuad = []float32{
	0.5, 0.5, 0, 1, 1, // top right
	0.5, -0.5, 0, 1, 0, // bottom right
	-0.5, -0.5, 0, 0, 0, // bottom left
	-0.5, 0.5, 0, 0, 1, // top left
}

// loadContainerTextures returns the crate and the smiley as the texture1 and
// texture2 samplers on units 0 and 1.
func loadContainerTextures(ctx *Context) (scene.Samplers, error) {

	container, err := ctx.Texture("textures/container.png", gfx.TextureOptions{FlipY: true})
	if err != nil {
		return nil, err
	}
	face, err := ctx.Texture("textures/awesomeface.png", gfx.TextureOptions{FlipY: true})
	if err != nil {
		return nil, err
	}

	return scene.Samplers{
		{Name: "texture1", TextureBinding: scene.TextureBinding{Unit: 0, Texture: container}},
		{Name: "texture2", TextureBinding: scene.TextureBinding{Unit: 1, Texture: face}},
	}, nil

}

// useSamplers binds shader and its textures.
func useSamplers(shader *gfx.Shader, samplers scene.Samplers) {
	shader.Use()
	for _, b := range samplers.Apply(shader) {
		gfx.BindTexture(b.Unit, b.Texture)
	}
}

// https://learnopengl.com/Getting-started/Transformations
func setupTransformations(ctx *Context) (FrameFunc, error) {

	shader, err := ctx.Shader("transform.vert", "transform.frag")
	if err != nil {
		return nil, err
	}

	quad := gfx.NewVertexArray(texturedQuad, []int32{3, 2}, []uint32{0, 1, 3, 1, 2, 3})
	ctx.Defer(quad)

	samplers, err := loadContainerTextures(ctx)
	if err != nil {
		return nil, err
	}

	gl.ClearColor(0.2, 0.3, 0.3, 1)

	return func(t, _ float32) {

		gl.Clear(gl.COLOR_BUFFER_BIT)

		useSamplers(shader, samplers)

		// spinning quad in the bottom right corner
		model := transform.Translate(0.5, -0.5, 0).Mul4(transform.Rotate(mgl32.RadToDeg(t), mgl32.Vec3{0, 0, 1}).Mat4())
		shader.SetMat4("transform", model)
		quad.Draw()

		// pulsing quad in the top left corner
		s := math32.Abs(math32.Sin(t))
		model = transform.Translate(-0.5, 0.5, 0).Mul4(transform.Scale(s, s, s))
		shader.SetMat4("transform", model)
		quad.Draw()

	}, nil

}

// world space positions of the cubes in the coordinate systems and lighting lessons
var cubePositions = []mgl32.Vec3{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3, -7.5},
	{1.3, -2, -2.5},
	{1.5, 2, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1, -1.5},
}

// cubeModels places the cubes at offset, each tilted 20 degrees more than
// the one before around the same axis.
func cubeModels(offset mgl32.Vec3) []mgl32.Mat4 {
	axis := mgl32.Vec3{1, 0.3, 0.5}.Normalize()
	models := make([]mgl32.Mat4, len(cubePositions))
	for i, p := range cubePositions {
		p = p.Add(offset)
		models[i] = mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(20*float32(i)), axis))
	}
	return models
}

// https://learnopengl.com/Getting-started/Coordinate-Systems
//
// The arrow keys orbit the viewer around the origin like a crystal ball.
func setupCoordinateSystems(ctx *Context) (FrameFunc, error) {

	shader, err := ctx.Shader("coords.vert", "coords.frag")
	if err != nil {
		return nil, err
	}

	cube := gfx.NewVertexArray(cubeVertices, layoutPosNormalTex, nil)
	ctx.Defer(cube)

	samplers, err := loadContainerTextures(ctx)
	if err != nil {
		return nil, err
	}

	eye := mgl32.Vec3{0, 0, 5}
	up := mgl32.Vec3{0, 1, 0}
	const step = 5 // degrees per key press

	ctx.Controls.OnKey(glfw.KeyLeft, func() { eye = transform.Left(-step, eye, up) })
	ctx.Controls.OnKey(glfw.KeyRight, func() { eye = transform.Left(step, eye, up) })
	ctx.Controls.OnKey(glfw.KeyUp, func() { eye, up = transform.Up(step, eye, up) })
	ctx.Controls.OnKey(glfw.KeyDown, func() { eye, up = transform.Up(-step, eye, up) })

	// do not render pixels covered by closer ones
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.2, 0.3, 0.3, 1)

	models := cubeModels(mgl32.Vec3{})

	return func(t, _ float32) {

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		useSamplers(shader, samplers)

		view := transform.LookAt(eye, mgl32.Vec3{}, transform.UpVector(up, eye))
		projection := transform.Perspective(ctx.Camera.Zoom(), ctx.Window.AspectRatio(), 0.1, 100)
		shader.SetMat4("view", view)
		shader.SetMat4("projection", projection)

		for i, model := range models {
			// every third cube spins
			if i%3 == 0 {
				model = model.Mul4(transform.Rotate(mgl32.RadToDeg(t)*0.5, mgl32.Vec3{1, 0.3, 0.5}).Mat4())
			}
			shader.SetMat4("model", model)
			cube.Draw()
		}

	}, nil

}
