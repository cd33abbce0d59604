package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms receives shader uniform values by name. It is implemented by
// gfx.Shader; tests use an in-memory recorder.
type Uniforms interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetMat3(name string, m mgl32.Mat3)
	SetMat4(name string, m mgl32.Mat4)
}

// ApplyLights uploads lights in view space. Point lights fill the
// pointLights array in order; there is at most one directional light and
// one spotlight.
//
//	pointLights[i].positionView   directionalLight.directionView   spotlight.positionView
//	pointLights[i].ambientColor   directionalLight.ambientColor    spotlight.directionView
//	...                           ...                              spotlight.cutOffInner
func ApplyLights(u Uniforms, lights []Light, view mgl32.Mat4) {

	points := 0
	hasDirectional, hasSpot := false, false

	for _, l := range lights {
		switch l.Kind {
		case Point:
			prefix := fmt.Sprintf("pointLights[%d]", points)
			u.SetVec3(prefix+".positionView", view.Mul4x1(l.Position).Vec3())
			setColors(u, prefix, l)
			setAttenuation(u, prefix, l.Attenuation)
			points++
		case Directional:
			u.SetVec3("directionalLight.directionView", view.Mul4x1(l.Position).Vec3())
			setColors(u, "directionalLight", l)
			hasDirectional = true
		case Spotlight:
			u.SetVec3("spotlight.positionView", view.Mul4x1(l.Position).Vec3())
			u.SetVec3("spotlight.directionView", view.Mul4x1(l.Spot.Direction).Vec3())
			u.SetFloat("spotlight.cutOffInner", l.Spot.CutOffInner)
			u.SetFloat("spotlight.cutOffOuter", l.Spot.CutOffOuter)
			setColors(u, "spotlight", l)
			setAttenuation(u, "spotlight", l.Attenuation)
			hasSpot = true
		}
	}

	u.SetInt("numPointLights", int32(points))
	u.SetBool("directionalLightPresent", hasDirectional)
	u.SetBool("spotlightPresent", hasSpot)

}

func setColors(u Uniforms, prefix string, l Light) {
	u.SetVec3(prefix+".ambientColor", l.Ambient)
	u.SetVec3(prefix+".diffuseColor", l.Diffuse)
	u.SetVec3(prefix+".specularColor", l.Specular)
}

func setAttenuation(u Uniforms, prefix string, a Attenuation) {
	u.SetFloat(prefix+".constant", a.Constant)
	u.SetFloat(prefix+".linear", a.Linear)
	u.SetFloat(prefix+".quadratic", a.Quadratic)
}

// NormalMatrix returns the inverse transpose of view*model, which keeps
// normals perpendicular under non-uniform scaling.
func NormalMatrix(view, model mgl32.Mat4) (mgl32.Mat3, error) {
	mv := view.Mul4(model).Mat3()
	if mgl32.Abs(mv.Det()) < 1e-12 {
		return mgl32.Mat3{}, fmt.Errorf("modelview matrix is singular")
	}
	return mv.Inv().Transpose(), nil
}
