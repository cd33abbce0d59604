package gfx

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/paperboard/learnopengl/internal/config"
)

// Window is a GLFW window with a current OpenGL 3.3 core context.
type Window struct {
	*glfw.Window
	log *zap.Logger
}

// OpenWindow initializes GLFW and OpenGL and opens a window. The caller's
// goroutine must be locked to the main OS thread.
func OpenWindow(cfg config.Window, log *zap.Logger) (*Window, error) {

	// initalize glfw
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	// use OpenGL v3.3 core
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}

	// create window handle
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	w := &Window{Window: window, log: log}

	// pixel dimension and texel dimensions are not the same in high resolution monitors
	width, height := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	log.Info("window opened",
		zap.String("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("width", width),
		zap.Int("height", height),
	)

	return w, nil

}

// Run calls frame until the window is asked to close. t is the time since
// GLFW started and dt the time since the previous frame, both in seconds.
func (w *Window) Run(frame func(t, dt float32)) {

	last := glfw.GetTime()

	// run gameloop
	for !w.ShouldClose() {

		now := glfw.GetTime()
		dt := now - last
		last = now

		// draw into buffer
		frame(float32(now), float32(dt))

		// render buffer to screen
		w.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

}

// AspectRatio of the framebuffer.
func (w *Window) AspectRatio() float32 {
	width, height := w.GetFramebufferSize()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
