package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightKind identifies the kind of light source.
type LightKind int

const (
	// Point emits in all directions and fades with distance.
	Point LightKind = iota
	// Directional has no position, only a direction (Position.W == 0).
	Directional
	// Spotlight emits in a cone around Spot.Direction.
	Spotlight
)

func (k LightKind) String() string {
	switch k {
	case Point:
		return "point"
	case Directional:
		return "directional"
	case Spotlight:
		return "spotlight"
	}
	return fmt.Sprintf("LightKind(%d)", int(k))
}

// Attenuation holds the constant, linear and quadratic falloff terms.
//
// https://learnopengl.com/Lighting/Light-casters
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultAttenuation covers a distance of about 100 units.
var DefaultAttenuation = Attenuation{Constant: 1, Linear: 0.045, Quadratic: 0.0075}

// Spot is the cone of a spotlight. Cutoffs are stored as cosines of the
// half-angles so shaders compare them against a dot product directly.
type Spot struct {
	Direction   mgl32.Vec4
	CutOffInner float32
	CutOffOuter float32
	// Flashlight spotlights follow the camera every frame.
	Flashlight bool
}

// Light is a light source. Position is homogeneous: W == 0 for directions.
type Light struct {
	Kind        LightKind
	Position    mgl32.Vec4
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	Attenuation Attenuation
	Spot        Spot
}

// ErrSpotCone is returned when a spotlight's inner cone is wider than its outer cone.
var ErrSpotCone = errors.New("spotlight inner angle exceeds outer angle")

// NewPointLight returns a point light at position.
func NewPointLight(position, ambient, diffuse, specular mgl32.Vec3, att Attenuation) Light {
	return Light{
		Kind:        Point,
		Position:    position.Vec4(1),
		Ambient:     ambient,
		Diffuse:     diffuse,
		Specular:    specular,
		Attenuation: att,
	}
}

// NewDirectionalLight returns a light shining along direction.
func NewDirectionalLight(direction, ambient, diffuse, specular mgl32.Vec3) Light {
	return Light{
		Kind:     Directional,
		Position: direction.Vec4(0),
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// NewSpotlight returns a spotlight with a soft edge between innerDeg and
// outerDeg, both half-angles in degrees.
func NewSpotlight(position, direction, ambient, diffuse, specular mgl32.Vec3, att Attenuation, innerDeg, outerDeg float32, flashlight bool) (Light, error) {

	if innerDeg > outerDeg {
		return Light{}, fmt.Errorf("%w (%v > %v)", ErrSpotCone, innerDeg, outerDeg)
	}

	return Light{
		Kind:        Spotlight,
		Position:    position.Vec4(1),
		Ambient:     ambient,
		Diffuse:     diffuse,
		Specular:    specular,
		Attenuation: att,
		Spot: Spot{
			Direction:   direction.Vec4(0),
			CutOffInner: math32.Cos(mgl32.DegToRad(innerDeg)),
			CutOffOuter: math32.Cos(mgl32.DegToRad(outerDeg)),
			Flashlight:  flashlight,
		},
	}, nil

}

// Follow places a flashlight at the viewer, pointing the way it looks.
func (l *Light) Follow(position, front mgl32.Vec3) {
	l.Position = position.Vec4(1)
	l.Spot.Direction = front.Vec4(0)
}
