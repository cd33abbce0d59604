package lessons

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/learnopengl/gfx"
	"github.com/paperboard/learnopengl/scene"
)

func init() {
	register(lesson{id: "2.1", title: "Colors", dir: "2.1.colors", setup: setupColors})
	register(lesson{id: "2.2", title: "Basic Lighting", dir: "2.2.basic_lighting", setup: setupBasicLighting})
	register(lesson{id: "2.3", title: "Materials", dir: "2.3.materials", setup: setupMaterials})
	register(lesson{id: "2.4", title: "Lighting Maps", dir: "2.4.lighting_maps", setup: setupLightingMaps})
	register(lesson{id: "2.5", title: "Light Casters", dir: "2.5.light_casters", setup: setupLightCasters})
	register(lesson{id: "2.6", title: "Multiple Lights", dir: "2.6.multiple_lights", setup: setupMultipleLights})
}

// shared shader files
const (
	litVert     = "common/lit.vert"
	litFrag     = "common/lit.frag"
	lampVert    = "common/lamp.vert"
	lampFrag    = "common/lamp.frag"
	outlineFrag = "common/outline.frag"
	axesVert    = "common/axes.vert"
	axesFrag    = "common/axes.frag"
	screenVert  = "common/screen.vert"
	screenFrag  = "common/screen.frag"
)

// newGraph prepares depth and stencil testing and returns a scene graph
// that follows the window size and clears all buffers every frame.
func newGraph(ctx *Context, lights []scene.Light, opts ...scene.Option) (*scene.Graph, error) {

	width, height := ctx.Window.GetFramebufferSize()

	opts = append([]scene.Option{scene.WithClear(func() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	})}, opts...)

	g, err := scene.New(width, height, ctx.Camera, lights, opts...)
	if err != nil {
		return nil, err
	}
	ctx.Controls.OnResize(g.Resize)
	ctx.Defer(g)

	// do not render pixels covered by closer ones
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)

	gl.ClearColor(0.1, 0.15, 0.15, 1)

	return g, nil

}

// containerMaterial is the steel-rimmed wooden crate with optional emission.
func containerMaterial(ctx *Context, emission bool) (scene.Material, error) {

	m := scene.Material{Ambient: mgl32.Vec3{1, 1, 1}, Shininess: 64}

	var err error
	if m.DiffuseMap, err = ctx.Texture("textures/container2.png", gfx.TextureOptions{FlipY: true}); err != nil {
		return m, err
	}
	if m.SpecularMap, err = ctx.Texture("textures/container2_specular.png", gfx.TextureOptions{FlipY: true}); err != nil {
		return m, err
	}
	if emission {
		if m.EmissionMap, err = ctx.Texture("textures/matrix.png", gfx.TextureOptions{FlipY: true}); err != nil {
			return m, err
		}
	}
	return m, nil

}

func staticModels(models []mgl32.Mat4) func(float32) []mgl32.Mat4 {
	return func(float32) []mgl32.Mat4 { return models }
}

// https://learnopengl.com/Lighting/Colors
func setupColors(ctx *Context) (FrameFunc, error) {

	object, err := ctx.Shader(litVert, "object.frag")
	if err != nil {
		return nil, err
	}
	lamp, err := ctx.Shader(lampVert, lampFrag)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 0, 3})

	light := scene.NewPointLight(mgl32.Vec3{1.2, 1, 2}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, scene.DefaultAttenuation)
	g, err := newGraph(ctx, []scene.Light{light})
	if err != nil {
		return nil, err
	}

	cube := gfx.NewVertexArray(cubeVertices, layoutPosNormalTex, nil)
	ctx.Defer(cube)

	g.Add(scene.ElementFunc(func(_ float32, lights []scene.Light, view, projection mgl32.Mat4) {
		object.Use()
		object.SetMat4("view", view)
		object.SetMat4("projection", projection)
		object.SetVec3("objectColor", mgl32.Vec3{1, 0.5, 0.31})
		object.SetVec3("lightColor", lights[0].Diffuse)
		drawLit(object, cube, view, mgl32.Ident4())
	}))
	g.Add(NewLamps(lamp))

	return func(t, _ float32) { g.RenderFrame(t) }, nil

}

// https://learnopengl.com/Lighting/Basic-Lighting
func setupBasicLighting(ctx *Context) (FrameFunc, error) {

	phong, err := ctx.Shader(litVert, "phong.frag")
	if err != nil {
		return nil, err
	}
	lamp, err := ctx.Shader(lampVert, lampFrag)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 0, 3})

	light := scene.NewPointLight(mgl32.Vec3{1.2, 1, 2}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, scene.DefaultAttenuation)
	g, err := newGraph(ctx, []scene.Light{light})
	if err != nil {
		return nil, err
	}

	cube := gfx.NewVertexArray(cubeVertices, layoutPosNormalTex, nil)
	ctx.Defer(cube)

	g.Add(scene.ElementFunc(func(_ float32, lights []scene.Light, view, projection mgl32.Mat4) {
		phong.Use()
		phong.SetMat4("view", view)
		phong.SetMat4("projection", projection)
		phong.SetVec3("objectColor", mgl32.Vec3{1, 0.5, 0.31})
		phong.SetVec3("lightColor", lights[0].Diffuse)
		phong.SetVec3("lightPosView", view.Mul4x1(lights[0].Position).Vec3())
		drawLit(phong, cube, view, mgl32.Ident4())
	}))
	g.Add(NewLamps(lamp))

	return func(t, _ float32) {

		// lamp circles the cube
		g.Lights()[0].Position = mgl32.Vec4{2 * math32.Sin(t), 1, 2 * math32.Cos(t), 1}

		g.RenderFrame(t)

	}, nil

}

// https://learnopengl.com/Lighting/Materials
func setupMaterials(ctx *Context) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	lamp, err := ctx.Shader(lampVert, lampFrag)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 0, 3})

	// no falloff so the color changes stay visible
	light := scene.NewPointLight(mgl32.Vec3{1.2, 1, 2}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, scene.Attenuation{Constant: 1})
	g, err := newGraph(ctx, []scene.Light{light})
	if err != nil {
		return nil, err
	}

	coral := scene.Material{
		Ambient:   mgl32.Vec3{1, 0.5, 0.31},
		Diffuse:   mgl32.Vec3{1, 0.5, 0.31},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 32,
	}
	g.Add(NewCubes(lit, coral, staticModels([]mgl32.Mat4{mgl32.Ident4()})))
	g.Add(NewLamps(lamp))

	return func(t, _ float32) {

		// light color drifts through the spectrum
		color := mgl32.Vec3{math32.Sin(t * 2), math32.Sin(t * 0.7), math32.Sin(t * 1.3)}
		l := &g.Lights()[0]
		l.Diffuse = color.Mul(0.5)
		l.Ambient = l.Diffuse.Mul(0.2)

		g.RenderFrame(t)

	}, nil

}

// https://learnopengl.com/Lighting/Lighting-maps
func setupLightingMaps(ctx *Context) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	lamp, err := ctx.Shader(lampVert, lampFrag)
	if err != nil {
		return nil, err
	}
	m, err := containerMaterial(ctx, true)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 0, 3})

	light := scene.NewPointLight(mgl32.Vec3{1.2, 1, 2}, mgl32.Vec3{0.2, 0.2, 0.2}, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 1, 1}, scene.DefaultAttenuation)
	g, err := newGraph(ctx, []scene.Light{light})
	if err != nil {
		return nil, err
	}

	g.Add(NewCubes(lit, m, func(t float32) []mgl32.Mat4 {
		return []mgl32.Mat4{mgl32.HomogRotate3DY(t * 0.3)}
	}))
	g.Add(NewLamps(lamp))

	return func(t, _ float32) { g.RenderFrame(t) }, nil

}

// https://learnopengl.com/Lighting/Light-casters
func setupLightCasters(ctx *Context) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	m, err := containerMaterial(ctx, false)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 0, 3})

	flashlight, err := scene.NewSpotlight(
		mgl32.Vec3{}, mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{0.1, 0.1, 0.1}, mgl32.Vec3{0.8, 0.8, 0.8}, mgl32.Vec3{1, 1, 1},
		scene.DefaultAttenuation, 12.5, 17.5, true,
	)
	if err != nil {
		return nil, err
	}
	g, err := newGraph(ctx, []scene.Light{flashlight})
	if err != nil {
		return nil, err
	}

	g.Add(NewCubes(lit, m, staticModels(cubeModels(mgl32.Vec3{}))))

	return func(t, _ float32) { g.RenderFrame(t) }, nil

}

var (
	dimAmbient    = mgl32.Vec3{0.05, 0.05, 0.05}
	whiteDiffuse  = mgl32.Vec3{0.8, 0.8, 0.8}
	whiteSpecular = mgl32.Vec3{1, 1, 1}
)

// multipleLights is the light set shared by the later lessons: a sun, four
// lamps and a flashlight.
func multipleLights() ([]scene.Light, error) {

	lights := []scene.Light{
		scene.NewDirectionalLight(mgl32.Vec3{1, -1, 0}, dimAmbient, mgl32.Vec3{0.4, 0.4, 0.4}, mgl32.Vec3{0.5, 0.5, 0.5}),
	}

	for _, p := range []mgl32.Vec3{
		{0.7, 0.2, 2},
		{2.3, -3.3, -4},
		{-4, 2, -12},
		{0, 0, -3},
	} {
		lights = append(lights, scene.NewPointLight(p, dimAmbient, whiteDiffuse, whiteSpecular, scene.DefaultAttenuation))
	}

	flashlight, err := scene.NewSpotlight(
		mgl32.Vec3{}, mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1},
		scene.DefaultAttenuation, 6, 9, true,
	)
	if err != nil {
		return nil, err
	}
	return append(lights, flashlight), nil

}

// https://learnopengl.com/Lighting/Multiple-lights
func setupMultipleLights(ctx *Context) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	lamp, err := ctx.Shader(lampVert, lampFrag)
	if err != nil {
		return nil, err
	}
	axes, err := ctx.Shader(axesVert, axesFrag)
	if err != nil {
		return nil, err
	}
	m, err := containerMaterial(ctx, false)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 0, 3})

	lights, err := multipleLights()
	if err != nil {
		return nil, err
	}
	g, err := newGraph(ctx, lights)
	if err != nil {
		return nil, err
	}

	g.Add(NewCoordinateAxes(axes))
	g.Add(NewCubes(lit, m, staticModels(cubeModels(mgl32.Vec3{}))))
	g.Add(NewLamps(lamp))

	return func(t, _ float32) { g.RenderFrame(t) }, nil

}
