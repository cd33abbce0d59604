package lessons

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/paperboard/learnopengl/gfx"
	"github.com/paperboard/learnopengl/scene"
)

func init() {
	register(lesson{id: "4.2", title: "Stencil Testing", dir: "4.2.stencil_testing", setup: setupStencilTesting})
	register(lesson{id: "4.3", title: "Blending", dir: "4.3.blending", setup: setupBlending})
	register(lesson{id: "4.5", title: "Framebuffers", dir: "4.5.framebuffers", setup: setupFramebuffers})
	register(lesson{id: "4.11", title: "Anti Aliasing", dir: "4.11.anti_aliasing", setup: setupAntiAliasing})
}

// cubes float above the ground in the advanced lessons
var cubesAboveGround = mgl32.Vec3{0, 3.5, 0}

func marbleGround(ctx *Context, lit *gfx.Shader) (*Ground, error) {
	marble, err := ctx.Texture("textures/marble.png", gfx.TextureOptions{FlipY: true})
	if err != nil {
		return nil, err
	}
	m := scene.Material{Ambient: mgl32.Vec3{1, 1, 1}, DiffuseMap: marble, Specular: mgl32.Vec3{0.3, 0.3, 0.3}, Shininess: 16}
	return NewGround(lit, m, 100), nil
}

// https://learnopengl.com/Advanced-OpenGL/Stencil-testing
func setupStencilTesting(ctx *Context) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	outline, err := ctx.Shader(lampVert, outlineFrag)
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
	ground, err := marbleGround(ctx, lit)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 5, 10})
	ctx.Camera.SetOrientation(-90, -15)

	lights, err := multipleLights()
	if err != nil {
		return nil, err
	}
	g, err := newGraph(ctx, lights)
	if err != nil {
		return nil, err
	}

	cubes := NewCubes(lit, m, staticModels(cubeModels(cubesAboveGround)))
	cubes.Outline = outline

	// ground first: it must not mark the stencil buffer the outline relies on
	g.Add(ground)
	g.Add(cubes)
	g.Add(NewLamps(lamp))
	g.Add(NewCoordinateAxes(axes))

	return func(t, _ float32) { g.RenderFrame(t) }, nil

}

// https://learnopengl.com/Advanced-OpenGL/Blending
func setupBlending(ctx *Context) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	m, err := containerMaterial(ctx, false)
	if err != nil {
		return nil, err
	}
	ground, err := marbleGround(ctx, lit)
	if err != nil {
		return nil, err
	}

	// transparent borders must not wrap around
	clamp := gfx.TextureOptions{FlipY: true, ClampToEdge: true}
	grassTex, err := ctx.Texture("textures/grass.png", clamp)
	if err != nil {
		return nil, err
	}
	windowTex, err := ctx.Texture("textures/window.png", clamp)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 1, 4})

	sun := scene.NewDirectionalLight(mgl32.Vec3{-0.2, -1, -0.3}, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.6, 0.6, 0.6}, mgl32.Vec3{0.2, 0.2, 0.2})
	g, err := newGraph(ctx, []scene.Light{sun})
	if err != nil {
		return nil, err
	}

	cubes := NewCubes(lit, m, staticModels([]mgl32.Mat4{
		mgl32.Translate3D(-1, 0.5, -1),
		mgl32.Translate3D(2, 0.5, 0),
	}))

	flat := scene.Material{Ambient: mgl32.Vec3{1, 1, 1}, Shininess: 1}

	flat.DiffuseMap = grassTex
	grass := NewBillboards(lit, flat, []mgl32.Vec3{
		{-1.5, 0, -0.48},
		{1.5, 0, 0.51},
		{0, 0, 0.7},
		{-0.3, 0, -2.3},
		{0.5, 0, -0.6},
	})

	flat.DiffuseMap = windowTex
	windows := NewBillboards(lit, flat, []mgl32.Vec3{
		{-1.2, 0, 0.2},
		{1.1, 0, 1.3},
		{0.2, 0, 1.9},
		{-0.6, 0, -1.6},
		{0.8, 0, -0.2},
	})
	windows.Translucent = true
	windows.Eye = ctx.Camera.Position

	// translucent objects go last
	g.Add(ground)
	g.Add(cubes)
	g.Add(grass)
	g.Add(windows)

	return func(t, _ float32) { g.RenderFrame(t) }, nil

}

// post-processing effects selected with the number keys
var postEffects = []struct {
	key  glfw.Key
	name string
}{
	{glfw.Key0, "none"},
	{glfw.Key1, "inversion"},
	{glfw.Key2, "grayscale"},
	{glfw.Key3, "sharpen"},
	{glfw.Key4, "blur"},
	{glfw.Key5, "edge detection"},
}

// https://learnopengl.com/Advanced-OpenGL/Framebuffers
func setupFramebuffers(ctx *Context) (FrameFunc, error) {
	return setupPostProcessing(ctx, 0)
}

// https://learnopengl.com/Advanced-OpenGL/Anti-Aliasing
func setupAntiAliasing(ctx *Context) (FrameFunc, error) {
	samples := int32(ctx.Env.Config.Window.Samples)
	if samples == 0 {
		samples = 4
	}
	return setupPostProcessing(ctx, samples)
}

// setupPostProcessing draws the stencil lesson's scene into an offscreen
// framebuffer (proxy screen) and then draws its texture over the whole
// window (real screen) through an effect shader.
func setupPostProcessing(ctx *Context, samples int32) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	lamp, err := ctx.Shader(lampVert, lampFrag)
	if err != nil {
		return nil, err
	}
	screen, err := ctx.Shader(screenVert, screenFrag)
	if err != nil {
		return nil, err
	}
	m, err := containerMaterial(ctx, false)
	if err != nil {
		return nil, err
	}
	ground, err := marbleGround(ctx, lit)
	if err != nil {
		return nil, err
	}

	ctx.Camera.SetPosition(mgl32.Vec3{0, 5, 10})
	ctx.Camera.SetOrientation(-90, -15)

	lights, err := multipleLights()
	if err != nil {
		return nil, err
	}
	g, err := newGraph(ctx, lights)
	if err != nil {
		return nil, err
	}
	g.Add(ground)
	g.Add(NewCubes(lit, m, staticModels(cubeModels(cubesAboveGround))))
	g.Add(NewLamps(lamp))

	// proxy screen matches the real screen's pixel size
	width, height := ctx.Window.GetFramebufferSize()
	fb, err := gfx.NewFramebuffer(int32(width), int32(height), samples)
	if err != nil {
		return nil, err
	}
	ctx.Defer(fb)
	ctx.Controls.OnResize(func(width, height int) {
		if err := fb.Resize(int32(width), int32(height)); err != nil {
			ctx.Log.Warn("keeping framebuffer size", zap.Error(err))
		}
	})

	quad := gfx.NewVertexArray(screenVertices, layoutScreen, nil)
	ctx.Defer(quad)

	effect := int32(0)
	for i, e := range postEffects {
		ctx.Controls.OnKey(e.key, func() {
			effect = int32(i)
			ctx.Log.Info("post-processing effect", zap.String("effect", e.name))
		})
	}

	ctx.Log.Info("offscreen framebuffer", zap.Int("width", width), zap.Int("height", height), zap.Int32("samples", samples))

	return func(t, _ float32) {

		// draw scene into the proxy screen
		fb.Bind()
		gl.Enable(gl.DEPTH_TEST)
		gl.ClearColor(0.1, 0.15, 0.15, 1)
		g.RenderFrame(t)
		fb.Resolve()

		// draw the proxy screen's texture onto the real screen
		w, h := ctx.Window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.Disable(gl.DEPTH_TEST)
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		useSamplers(screen, scene.Samplers{
			{Name: "screenTexture", TextureBinding: scene.TextureBinding{Texture: fb.Texture()}},
		})
		screen.SetInt("effect", effect)
		quad.Draw()

	}, nil

}
