package lessons

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/paperboard/learnopengl/gfx"
	"github.com/paperboard/learnopengl/heightmap"
	"github.com/paperboard/learnopengl/scene"
)

func init() {
	register(lesson{id: "heightmap", title: "Heightmap", dir: "heightmap", setup: setupHeightmap})
}

// Terrain is a lit heightmap mesh.
type Terrain struct {
	Shader   *gfx.Shader
	Material scene.Material
	Model    mgl32.Mat4
	va       *gfx.VertexArray
}

// NewTerrain uploads grid, stretched to size x size units horizontally and
// relief units from its lowest to its highest point.
func NewTerrain(shader *gfx.Shader, m scene.Material, grid *heightmap.Grid, size, relief float32) *Terrain {

	lo, hi := grid.HeightRange()
	scaleY := float32(1)
	if hi > lo {
		scaleY = relief / (hi - lo)
	}

	// center the grid on the origin with its lowest point on y = 0
	model := mgl32.Translate3D(-size/2, -lo*scaleY, -size/2).Mul4(mgl32.Scale3D(size, scaleY, size))

	return &Terrain{
		Shader:   shader,
		Material: m,
		Model:    model,
		va:       gfx.NewVertexArray(grid.Interleaved(), []int32{3, 3}, grid.Indices),
	}

}

func (tr *Terrain) Render(_ float32, lights []scene.Light, view, projection mgl32.Mat4) {
	useLit(tr.Shader, tr.Material, lights, view, projection)
	drawLit(tr.Shader, tr.va, view, tr.Model)
}

func (tr *Terrain) Close() error { return tr.va.Close() }

func setupHeightmap(ctx *Context) (FrameFunc, error) {

	lit, err := ctx.Shader(litVert, litFrag)
	if err != nil {
		return nil, err
	}
	axes, err := ctx.Shader(axesVert, axesFrag)
	if err != nil {
		return nil, err
	}

	path := ctx.Asset("heightmaps/hill.png")
	grid, err := heightmap.Load(path, true)
	if err != nil {
		return nil, err
	}
	lo, hi := grid.HeightRange()
	ctx.Log.Info("heightmap loaded",
		zap.String("path", path),
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Float32("lowest", lo),
		zap.Float32("highest", hi),
	)

	ctx.Camera.SetPosition(mgl32.Vec3{0, 40, 120})
	ctx.Camera.SetOrientation(-90, -20)
	ctx.Camera.SetSpeed(ctx.Env.Config.Camera.Speed * 10)

	sun := scene.NewDirectionalLight(mgl32.Vec3{-0.3, -1, -0.2}, mgl32.Vec3{0.15, 0.15, 0.15}, mgl32.Vec3{0.8, 0.8, 0.7}, mgl32.Vec3{0.1, 0.1, 0.1})
	g, err := newGraph(ctx, []scene.Light{sun}, scene.WithClipPlanes(0.1, 1000))
	if err != nil {
		return nil, err
	}

	grass := scene.Material{
		Ambient:   mgl32.Vec3{0.35, 0.5, 0.25},
		Diffuse:   mgl32.Vec3{0.35, 0.5, 0.25},
		Specular:  mgl32.Vec3{0.05, 0.05, 0.05},
		Shininess: 8,
	}
	g.Add(NewTerrain(lit, grass, grid, 200, 30))
	g.Add(NewCoordinateAxes(axes))

	return func(t, _ float32) { g.RenderFrame(t) }, nil

}
