// Package transform builds the classic fixed-function style matrices by hand:
// axis-angle rotation, crystal-ball orbiting, look-at, perspective, scale
// and translation.
//
// Matrices follow the mgl32 convention (column-major storage, column vectors),
// so they can be multiplied with and uploaded like any other mgl32 matrix.
//
// https://learnopengl.com/Getting-started/Transformations
// https://en.wikipedia.org/wiki/Rodrigues%27_rotation_formula
package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotate returns the matrix rotating counter-clockwise by degrees around axis.
// The axis does not need to be normalized.
func Rotate(degrees float32, axis mgl32.Vec3) mgl32.Mat3 {

	a := axis.Normalize()
	theta := mgl32.DegToRad(degrees)
	c, s := math32.Cos(theta), math32.Sin(theta)

	// cross product matrix of the axis
	k := mgl32.Mat3{
		0, a.Z(), -a.Y(),
		-a.Z(), 0, a.X(),
		a.Y(), -a.X(), 0,
	}

	// outer product of the axis with itself
	aat := mgl32.Mat3{
		a.X() * a.X(), a.X() * a.Y(), a.X() * a.Z(),
		a.Y() * a.X(), a.Y() * a.Y(), a.Y() * a.Z(),
		a.Z() * a.X(), a.Z() * a.Y(), a.Z() * a.Z(),
	}

	return mgl32.Ident3().Mul(c).Add(aat.Mul(1 - c)).Add(k.Mul(s))

}

// Left orbits eye around the up direction by degrees. A positive angle
// moves the eye to the viewer's right, spinning the scene left.
func Left(degrees float32, eye, up mgl32.Vec3) mgl32.Vec3 {
	return Rotate(degrees, up).Mul3x1(eye)
}

// Up orbits eye and up over the scene around the axis eye x up.
func Up(degrees float32, eye, up mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	r := Rotate(degrees, eye.Cross(up))
	return r.Mul3x1(eye), r.Mul3x1(up)
}

// LookAt returns the view matrix of a viewer at eye looking at center.
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {

	w := eye.Sub(center).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	return mgl32.Mat4{
		u.X(), v.X(), w.X(), 0,
		u.Y(), v.Y(), w.Y(), 0,
		u.Z(), v.Z(), w.Z(), 0,
		-u.Dot(eye), -v.Dot(eye), -w.Dot(eye), 1,
	}

}

// Perspective returns a projection matrix for a vertical field of view in degrees.
func Perspective(fovy, aspect, near, far float32) mgl32.Mat4 {

	f := 1 / math32.Tan(mgl32.DegToRad(fovy)/2)
	depth := near - far

	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / depth, -1,
		0, 0, 2 * far * near / depth, 0,
	}

}

// Scale returns a non-uniform scaling matrix.
func Scale(sx, sy, sz float32) mgl32.Mat4 {
	return mgl32.Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(tx, ty, tz float32) mgl32.Mat4 {
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		tx, ty, tz, 1,
	}
}

// UpVector makes up orthogonal to the viewing direction z and normalizes it.
func UpVector(up, z mgl32.Vec3) mgl32.Vec3 {
	x := up.Cross(z)
	return z.Cross(x).Normalize()
}
