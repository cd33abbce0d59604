// Package scene holds the lesson-independent scene description: lights,
// materials and an ordered list of drawable elements.
package scene

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/paperboard/learnopengl/camera"
)

// MaxPointLights must match the pointLights array size in the shaders.
const MaxPointLights = 8

// ErrTooManyLights is returned by New when the lights do not fit the shaders.
var ErrTooManyLights = errors.New("too many lights")

// Element is anything the graph can draw.
type Element interface {
	Render(t float32, lights []Light, view, projection mgl32.Mat4)
}

// ElementFunc adapts a function to Element.
type ElementFunc func(t float32, lights []Light, view, projection mgl32.Mat4)

func (f ElementFunc) Render(t float32, lights []Light, view, projection mgl32.Mat4) {
	f(t, lights, view, projection)
}

type entry struct {
	id      uuid.UUID
	element Element
}

// Graph renders its elements in insertion order with a shared camera and
// set of lights.
type Graph struct {
	camera   *camera.Camera
	lights   []Light
	elements []entry

	width, height int
	near, far     float32
	clear         func()
}

// Option configures a Graph.
type Option func(*Graph)

// WithClear sets the function called at the start of every frame, usually
// to clear the color, depth and stencil buffers.
func WithClear(clear func()) Option {
	return func(g *Graph) { g.clear = clear }
}

// WithClipPlanes sets the projection's near and far plane distances.
func WithClipPlanes(near, far float32) Option {
	return func(g *Graph) { g.near, g.far = near, far }
}

// New returns an empty graph for a width x height pixel viewport.
func New(width, height int, cam *camera.Camera, lights []Light, opts ...Option) (*Graph, error) {

	points, directional, spots := 0, 0, 0
	for _, l := range lights {
		switch l.Kind {
		case Point:
			points++
		case Directional:
			directional++
		case Spotlight:
			spots++
		}
	}
	if points > MaxPointLights || directional > 1 || spots > 1 {
		return nil, fmt.Errorf("%w: %d point (max %d), %d directional (max 1), %d spotlight (max 1)",
			ErrTooManyLights, points, MaxPointLights, directional, spots)
	}

	g := &Graph{
		camera: cam,
		lights: slices.Clone(lights),
		width:  width,
		height: height,
		near:   0.1,
		far:    100,
		clear:  func() {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil

}

// Add appends e and returns its id.
func (g *Graph) Add(e Element) uuid.UUID {
	id := uuid.New()
	g.elements = append(g.elements, entry{id: id, element: e})
	return id
}

// Remove drops the element with the given id, reporting whether it was present.
func (g *Graph) Remove(id uuid.UUID) bool {
	i := slices.IndexFunc(g.elements, func(en entry) bool { return en.id == id })
	if i < 0 {
		return false
	}
	g.elements = slices.Delete(g.elements, i, i+1)
	return true
}

func (g *Graph) Len() int { return len(g.elements) }

// Lights returns the graph's lights. Changes to them show in the next frame.
func (g *Graph) Lights() []Light { return g.lights }

func (g *Graph) Camera() *camera.Camera { return g.camera }

// Resize updates the viewport size used for the aspect ratio.
func (g *Graph) Resize(width, height int) {
	g.width, g.height = width, height
}

// Projection is the perspective projection for the camera zoom and the
// current viewport.
func (g *Graph) Projection() mgl32.Mat4 {
	aspect := float32(1)
	if g.height > 0 {
		aspect = float32(g.width) / float32(g.height)
	}
	return mgl32.Perspective(mgl32.DegToRad(g.camera.Zoom()), aspect, g.near, g.far)
}

// RenderFrame moves flashlights to the camera, clears and draws every
// element in insertion order.
func (g *Graph) RenderFrame(t float32) {

	g.updateFlashlights()
	g.clear()

	view := g.camera.ViewMatrix()
	projection := g.Projection()
	for _, en := range g.elements {
		en.element.Render(t, g.lights, view, projection)
	}

}

func (g *Graph) updateFlashlights() {
	for i := range g.lights {
		if g.lights[i].Kind == Spotlight && g.lights[i].Spot.Flashlight {
			g.lights[i].Follow(g.camera.Position(), g.camera.Front())
		}
	}
}

// Close releases elements that hold resources, newest first.
func (g *Graph) Close() error {
	var errs []error
	for i := len(g.elements) - 1; i >= 0; i-- {
		if c, ok := g.elements[i].element.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	g.elements = nil
	return errors.Join(errs...)
}
