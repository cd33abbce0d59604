package raster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quad = `# unit quad
mtllib quad.mtl
o quad
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vn 0 0 1
usemtl plain
s off
f 1/1/1 2/1/1 3/1/1 4/1/1
f -4//1 -2//1 -1//1
`

func TestParseOBJ(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quad))
	require.NoError(t, err)

	assert.Equal(t, []mgl32.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}, m.Vertices)
	assert.Equal(t, [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 2, 3}}, m.Faces)
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		obj  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 two 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"negative past start", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 1 2\n"},
		{"not a number", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.obj))
			assert.ErrorContains(t, err, "line ")
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quad), 0o644))

	m, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Len(t, m.Faces, 3)

	_, err = LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
