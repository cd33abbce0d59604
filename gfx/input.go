package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/learnopengl/camera"
)

// movement keys polled every frame
var movementKeys = map[glfw.Key]camera.Movement{
	glfw.KeyW: camera.Forward,
	glfw.KeyS: camera.Backward,
	glfw.KeyQ: camera.Left,
	glfw.KeyE: camera.Right,
	glfw.KeyA: camera.TurnLeft,
	glfw.KeyD: camera.TurnRight,
}

// Controls connects window input to a camera:
//
//	W/S    move forward/backward
//	A/D    turn left/right
//	Q/E    strafe left/right
//	mouse  look around (while captured)
//	scroll zoom
//	Tab    toggle mouse capture
//	Esc    close the window
type Controls struct {
	window *Window
	camera *camera.Camera

	firstMouse   bool
	lastX, lastY float64
	captured     bool

	onResize []func(width, height int)
	onKey    map[glfw.Key][]func()
}

// NewControls installs the window callbacks. The cursor starts captured.
func NewControls(w *Window, cam *camera.Camera) *Controls {

	c := &Controls{
		window:     w,
		camera:     cam,
		firstMouse: true,
		onKey:      make(map[glfw.Key][]func()),
	}

	// ensure viewport uses maximum window size
	w.SetFramebufferSizeCallback(c.framebufferSizeCallback)
	w.SetCursorPosCallback(c.cursorPosCallback)
	w.SetScrollCallback(c.scrollCallback)
	w.SetKeyCallback(c.keyCallback)

	c.capture(true)

	return c

}

// OnResize registers fn to run after the viewport follows a framebuffer resize.
func (c *Controls) OnResize(fn func(width, height int)) {
	c.onResize = append(c.onResize, fn)
}

// OnKey registers fn to run when key is pressed.
func (c *Controls) OnKey(key glfw.Key, fn func()) {
	c.onKey[key] = append(c.onKey[key], fn)
}

// Poll moves the camera for held keys over dt seconds.
func (c *Controls) Poll(dt float32) {
	for key, m := range movementKeys {
		if c.window.GetKey(key) == glfw.Press {
			c.camera.ProcessKeyboard(m, dt)
		}
	}
}

func (c *Controls) capture(on bool) {
	c.captured = on
	c.firstMouse = true
	if on {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// on window size change (by OS or user resize) this callback executes
func (c *Controls) framebufferSizeCallback(_ *glfw.Window, width int, height int) {
	// note that width and height will be significantly larger than specified on retina displays.
	gl.Viewport(0, 0, int32(width), int32(height))
	// minimized
	if width == 0 || height == 0 {
		return
	}
	for _, fn := range c.onResize {
		fn(width, height)
	}
}

func (c *Controls) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {

	if !c.captured {
		return
	}

	if c.firstMouse {
		c.lastX, c.lastY = xpos, ypos
		c.firstMouse = false
	}

	// reversed since y-coordinates go from bottom to top
	xoffset := xpos - c.lastX
	yoffset := c.lastY - ypos
	c.lastX, c.lastY = xpos, ypos

	c.camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)

}

func (c *Controls) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	c.camera.ProcessScroll(float32(yoffset))
}

func (c *Controls) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {

	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyTab:
		c.capture(!c.captured)
	}

	for _, fn := range c.onKey[key] {
		fn()
	}

}
