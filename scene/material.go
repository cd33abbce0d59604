package scene

import "github.com/go-gl/mathgl/mgl32"

// texture units used by materials
const (
	DiffuseUnit  = 0
	SpecularUnit = 1
	EmissionUnit = 2
)

// Material describes how a surface reflects light. A non-zero map handle
// replaces the matching solid color.
//
// https://learnopengl.com/Lighting/Materials
// https://learnopengl.com/Lighting/Lighting-maps
type Material struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	DiffuseMap  uint32
	SpecularMap uint32
	EmissionMap uint32

	Shininess float32
}

// TextureBinding asks the caller to bind Texture to texture unit Unit.
type TextureBinding struct {
	Unit    uint32
	Texture uint32
}

// Apply writes the material.* uniforms and returns the textures to bind.
func (m Material) Apply(u Uniforms) []TextureBinding {

	var bindings []TextureBinding

	u.SetVec3("material.ambientColor", m.Ambient)
	u.SetFloat("material.shininess", m.Shininess)

	u.SetBool("material.diffuseMapPresent", m.DiffuseMap != 0)
	if m.DiffuseMap != 0 {
		u.SetInt("material.diffuseMap", DiffuseUnit)
		bindings = append(bindings, TextureBinding{DiffuseUnit, m.DiffuseMap})
	} else {
		u.SetVec3("material.diffuseColor", m.Diffuse)
	}

	u.SetBool("material.specularMapPresent", m.SpecularMap != 0)
	if m.SpecularMap != 0 {
		u.SetInt("material.specularMap", SpecularUnit)
		bindings = append(bindings, TextureBinding{SpecularUnit, m.SpecularMap})
	} else {
		u.SetVec3("material.specularColor", m.Specular)
	}

	u.SetBool("material.emissionPresent", m.EmissionMap != 0)
	if m.EmissionMap != 0 {
		u.SetInt("material.emissionMap", EmissionUnit)
		bindings = append(bindings, TextureBinding{EmissionUnit, m.EmissionMap})
	}

	return bindings

}

// Sampler ties a sampler uniform to the texture bound on its unit.
type Sampler struct {
	Name string
	TextureBinding
}

// Samplers are the texture inputs of a shader that does not use a Material.
// Sampler uniforms live in the program, so they are applied every frame and
// survive a program rebuilt by a shader reload.
type Samplers []Sampler

// Apply points every sampler at its unit and returns the textures to bind.
func (s Samplers) Apply(u Uniforms) []TextureBinding {
	bindings := make([]TextureBinding, 0, len(s))
	for _, sm := range s {
		u.SetInt(sm.Name, int32(sm.Unit))
		bindings = append(bindings, sm.TextureBinding)
	}
	return bindings
}
