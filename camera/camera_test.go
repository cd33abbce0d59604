package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	assert.InDelta(t, 1, c.Front().Len(), epsilon)
	assert.InDelta(t, 1, c.Right().Len(), epsilon)
	assert.InDelta(t, 1, c.Up().Len(), epsilon)
	assert.InDelta(t, 0, c.Front().Dot(c.Right()), epsilon)
	assert.InDelta(t, 0, c.Front().Dot(c.Up()), epsilon)
	assert.InDelta(t, 0, c.Right().Dot(c.Up()), epsilon)
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, epsilon))
	assert.True(t, c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon))
	assert.True(t, c.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, epsilon))
	assert.Equal(t, float32(45), c.Zoom())
	assertOrthonormal(t, c)
}

func TestViewMatrix(t *testing.T) {
	c := New(mgl32.Vec3{0, 5, 10}, mgl32.Vec3{0, 1, 0}, -90, -15)
	want := mgl32.LookAtV(c.Position(), c.Position().Add(c.Front()), c.Up())
	assert.Equal(t, want, c.ViewMatrix())

	// the camera sits at the view space origin
	origin := c.ViewMatrix().Mul4x1(c.Position().Vec4(1))
	assert.True(t, origin.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4))
}

func TestProcessKeyboard(t *testing.T) {
	c := Default()

	c.ProcessKeyboard(Forward, 2)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, -5}, epsilon), "%v", c.Position())

	c.ProcessKeyboard(Backward, 2)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{}, epsilon))

	c.ProcessKeyboard(Right, 1)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{2.5, 0, 0}, epsilon))

	c.ProcessKeyboard(Left, 1)
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{}, epsilon))

	c.ProcessKeyboard(TurnRight, 1.5)
	assert.InDelta(t, 0, c.Yaw(), epsilon)
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon))
	assertOrthonormal(t, c)

	c.ProcessKeyboard(TurnLeft, 1.5)
	assert.InDelta(t, -90, c.Yaw(), epsilon)
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := Default()

	c.ProcessMouseMovement(0, 10000, true)
	assert.Equal(t, float32(89), c.Pitch())
	assertOrthonormal(t, c)

	c.ProcessMouseMovement(0, -20000, true)
	assert.Equal(t, float32(-89), c.Pitch())

	c.ProcessMouseMovement(100, 0, true)
	assert.InDelta(t, -80, c.Yaw(), epsilon)
	assertOrthonormal(t, c)

	c = Default()
	c.ProcessMouseMovement(0, 1000, false)
	assert.InDelta(t, 100, c.Pitch(), epsilon)
}

func TestProcessScrollClampsZoom(t *testing.T) {
	c := Default()

	c.ProcessScroll(10)
	assert.Equal(t, float32(35), c.Zoom())

	c.ProcessScroll(100)
	assert.Equal(t, float32(1), c.Zoom())

	c.ProcessScroll(-100)
	assert.Equal(t, float32(45), c.Zoom())
}

func TestSetOrientation(t *testing.T) {
	c := Default()
	c.SetOrientation(0, 90)
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, epsilon))

	c.SetOrientation(180, 0)
	assert.True(t, c.Front().ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, epsilon))
	assertOrthonormal(t, c)
}
