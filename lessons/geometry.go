package lessons

// vertex layouts, in floats per attribute
var (
	layoutPosNormalTex = []int32{3, 3, 2} // x,y,z + nx,ny,nz + s,t
	layoutPosColor     = []int32{3, 3}    // x,y,z + r,g,b
	layoutScreen       = []int32{2, 2}    // x,y + s,t
)

// unit cube centered on the origin, 6 faces x 2 triangles, counter-clockwise
//
//	   v6----- v5
//	  /|      /|
//	 v1------v0|
//	 | |     | |
//	 | v7----|-v4
//	 |/      |/
//	 v2------v3
var cubeVertices = []float32{
	// back face
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	// front face
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	// left face
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, -0.5, -1, 0, 0, 1, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, 0.5, -1, 0, 0, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	// right face
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	// bottom face
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	// top face
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
}

// quadVertices is a unit quad in the XY plane facing +Z, bottom edge on y = 0
var quadVertices = []float32{
	-0.5, 1, 0, 0, 0, 1, 0, 1,
	-0.5, 0, 0, 0, 0, 1, 0, 0,
	0.5, 0, 0, 0, 0, 1, 1, 0,
	-0.5, 1, 0, 0, 0, 1, 0, 1,
	0.5, 0, 0, 0, 0, 1, 1, 0,
	0.5, 1, 0, 0, 0, 1, 1, 1,
}

// planeVertices returns a unit square in the XZ plane facing +Y whose
// texture repeats the given number of times.
func planeVertices(repeat float32) []float32 {
	return []float32{
		0.5, 0, 0.5, 0, 1, 0, repeat, 0,
		-0.5, 0, -0.5, 0, 1, 0, 0, repeat,
		-0.5, 0, 0.5, 0, 1, 0, 0, 0,
		0.5, 0, 0.5, 0, 1, 0, repeat, 0,
		0.5, 0, -0.5, 0, 1, 0, repeat, repeat,
		-0.5, 0, -0.5, 0, 1, 0, 0, repeat,
	}
}

// screenVertices covers the whole viewport in normalized device coordinates
var screenVertices = []float32{
	-1, 1, 0, 1,
	-1, -1, 0, 0,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, -1, 1, 0,
	1, 1, 1, 1,
}
