// Package camera implements the fly-through camera used by the lessons.
//
// The camera keeps Euler angles (yaw and pitch, in degrees) and derives an
// orthonormal front/right/up basis from them after every change.
//
// https://learnopengl.com/Getting-started/Camera
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a keyboard driven camera motion.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	TurnLeft
	TurnRight
)

// default camera values
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0
	DefaultTurnRate    = 60.0 // degrees per second

	maxPitch = 89.0
	minZoom  = 1.0
	maxZoom  = 45.0
)

// Camera is a first person camera.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	speed       float32
	sensitivity float32
	turnRate    float32
	zoom        float32
}

// New returns a camera at position with the given orientation in degrees.
func New(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     worldUp.Normalize(),
		yaw:         yaw,
		pitch:       pitch,
		speed:       DefaultSpeed,
		sensitivity: DefaultSensitivity,
		turnRate:    DefaultTurnRate,
		zoom:        DefaultZoom,
	}
	c.updateVectors()
	return c
}

// Default returns a camera at the origin looking down -Z.
func Default() *Camera {
	return New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }

// Zoom is the vertical field of view in degrees.
func (c *Camera) Zoom() float32 { return c.zoom }

func (c *Camera) SetSpeed(unitsPerSecond float32) { c.speed = unitsPerSecond }
func (c *Camera) SetSensitivity(s float32)        { c.sensitivity = s }
func (c *Camera) SetPosition(p mgl32.Vec3)        { c.position = p }

// SetOrientation points the camera by yaw and pitch in degrees.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.yaw, c.pitch = yaw, pitch
	c.updateVectors()
}

// ViewMatrix returns the world to view space transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProcessKeyboard moves or turns the camera for dt seconds.
func (c *Camera) ProcessKeyboard(m Movement, dt float32) {

	velocity := c.speed * dt

	switch m {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case TurnLeft:
		c.yaw -= c.turnRate * dt
		c.updateVectors()
	case TurnRight:
		c.yaw += c.turnRate * dt
		c.updateVectors()
	}

}

// ProcessMouseMovement applies a cursor offset. With constrainPitch set the
// pitch stays within (-90, 90) so the view never flips.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {

	c.yaw += xoffset * c.sensitivity
	c.pitch += yoffset * c.sensitivity

	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, -maxPitch, maxPitch)
	}

	c.updateVectors()

}

// ProcessScroll zooms in or out by yoffset degrees.
func (c *Camera) ProcessScroll(yoffset float32) {
	c.zoom = mgl32.Clamp(c.zoom-yoffset, minZoom, maxZoom)
}

func (c *Camera) updateVectors() {

	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()

}
