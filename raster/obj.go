package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Model is a triangle mesh. Faces hold zero based indices into Vertices.
type Model struct {
	Vertices []mgl32.Vec3
	Faces    [][3]int
}

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ reads the v and f statements of a Wavefront OBJ stream. Polygons
// are split into a triangle fan. Texture coordinates, normals, groups and
// materials are ignored.
//
// https://paulbourke.net/dataformats/obj/
func ParseOBJ(r io.Reader) (*Model, error) {

	m := &Model{}
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var v mgl32.Vec3
			for i := range v {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				v[i] = float32(f)
			}
			m.Vertices = append(m.Vertices, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs 3 vertices", line)
			}
			refs := make([]int, len(fields)-1)
			for i, tok := range fields[1:] {
				idx, err := vertexRef(tok, len(m.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				refs[i] = idx
			}
			for i := 1; i+1 < len(refs); i++ {
				m.Faces = append(m.Faces, [3]int{refs[0], refs[i], refs[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return m, nil

}

// vertexRef resolves the vertex part of a v, v/vt, v//vn or v/vt/vn
// reference. Positive indices count from 1, negative ones back from the
// last vertex read so far.
func vertexRef(tok string, n int) (int, error) {
	v, _, _ := strings.Cut(tok, "/")
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad vertex reference %q", tok)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += n
	default:
		return 0, fmt.Errorf("vertex index 0 in %q", tok)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("vertex reference %q out of range, %d vertices", tok, n)
	}
	return i, nil
}
