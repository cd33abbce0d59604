package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-4

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, epsilon), "want %v, got %v", want, got)
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, epsilon), "want\n%v\ngot\n%v", want, got)
}

func TestRotateMatchesHomogRotate(t *testing.T) {
	axis := mgl32.Vec3{1, 0.3, 0.5}
	for _, deg := range []float32{0, 20, 90, 145, -60} {
		want := mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()).Mat3()
		assert.True(t, want.ApproxEqualThreshold(Rotate(deg, axis), epsilon), "degrees %v", deg)
	}
}

func TestLeft(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 5}
	up := mgl32.Vec3{0, 5, 0}

	assertVec3(t, mgl32.Vec3{5, 0, 0}, Left(90, eye, up))
	assertVec3(t, mgl32.Vec3{-5, 0, 0}, Left(-90, eye, up))
	assertVec3(t, mgl32.Vec3{3.5355, -3.5355, 0}, Left(90, eye, mgl32.Vec3{0.5, 0.5, 0}))
}

func TestUp(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 5}
	up := mgl32.Vec3{0, 5, 0}

	e, u := Up(90, eye, up)
	assertVec3(t, mgl32.Vec3{0, 5, 0}, e)
	assertVec3(t, mgl32.Vec3{0, 0, -5}, u)

	e, u = Up(-90, eye, up)
	assertVec3(t, mgl32.Vec3{0, -5, 0}, e)
	assertVec3(t, mgl32.Vec3{0, 0, 5}, u)
}

func TestLookAt(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 7}
	center := mgl32.Vec3{0, -1, 0}
	up := mgl32.Vec3{0, 1, 0}
	assertMat4(t, mgl32.LookAtV(eye, center, up), LookAt(eye, center, up))
}

func TestPerspective(t *testing.T) {
	want := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	assertMat4(t, want, Perspective(45, 4.0/3.0, 0.1, 100))
}

func TestScaleTranslate(t *testing.T) {
	p := mgl32.Vec4{2.8, -1.5, 5.3, 1}
	assert.True(t, mgl32.Vec4{5.6, -1.5, 5.3, 1}.ApproxEqualThreshold(Scale(2, 1, 1).Mul4x1(p), epsilon))

	q := mgl32.Vec4{2.1, 3.5, -4.9, 1}
	assert.True(t, mgl32.Vec4{7.3, 3.5, -4.9, 1}.ApproxEqualThreshold(Translate(5.2, 0, 0).Mul4x1(q), epsilon))
	assert.True(t, mgl32.Vec4{2.9, 1.6, -14.7, 1}.ApproxEqualThreshold(Translate(0.8, -1.9, -9.8).Mul4x1(q), epsilon))

	assertMat4(t, mgl32.Translate3D(1, 2, 3), Translate(1, 2, 3))
	assertMat4(t, mgl32.Scale3D(1, 2, 3), Scale(1, 2, 3))
}

func TestUpVector(t *testing.T) {
	z := mgl32.Vec3{0, 0, 1}
	assertVec3(t, mgl32.Vec3{0, 1, 0}, UpVector(mgl32.Vec3{0, 3, 2}, z))

	got := UpVector(mgl32.Vec3{1, 1, 0.5}, z)
	assert.InDelta(t, 0, got.Dot(z), epsilon)
	assert.InDelta(t, 1, got.Len(), epsilon)
}
