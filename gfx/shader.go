package gfx

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderSource names the files of a program inside a file system.
// Geometry is optional.
type ShaderSource struct {
	Vertex   string
	Fragment string
	Geometry string
}

// Paths lists the non-empty stage file names.
func (s ShaderSource) Paths() []string {
	paths := []string{s.Vertex, s.Fragment}
	if s.Geometry != "" {
		paths = append(paths, s.Geometry)
	}
	return paths
}

// Shader is a linked program. Its setters implement scene.Uniforms and
// apply to the program bound by Use.
type Shader struct {
	program   uint32
	source    ShaderSource
	locations map[string]int32
}

// NewShader compiles and links the program described by src.
func NewShader(fsys fs.FS, src ShaderSource) (*Shader, error) {
	program, err := buildProgram(fsys, src)
	if err != nil {
		return nil, err
	}
	return &Shader{program: program, source: src, locations: make(map[string]int32)}, nil
}

// Reload rebuilds the program from its files. On failure the current
// program stays in use.
func (s *Shader) Reload(fsys fs.FS) error {
	program, err := buildProgram(fsys, s.source)
	if err != nil {
		return err
	}
	gl.DeleteProgram(s.program)
	s.program = program
	clear(s.locations)
	return nil
}

func (s *Shader) Program() uint32      { return s.program }
func (s *Shader) Source() ShaderSource { return s.source }

// Use binds the program.
func (s *Shader) Use() {
	gl.UseProgram(s.program)
}

// Close deletes the program.
func (s *Shader) Close() error {
	gl.DeleteProgram(s.program)
	s.program = 0
	return nil
}

// location caches uniform lookups; unknown names map to -1, which GL ignores
func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(s.location(name), i)
}

func (s *Shader) SetInt(name string, v int32) {
	gl.Uniform1i(s.location(name), v)
}

func (s *Shader) SetFloat(name string, v float32) {
	gl.Uniform1f(s.location(name), v)
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, &m[0])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func buildProgram(fsys fs.FS, src ShaderSource) (uint32, error) {

	type stage struct {
		path       string
		shaderType uint32
	}
	stages := []stage{
		{src.Vertex, gl.VERTEX_SHADER},
		{src.Fragment, gl.FRAGMENT_SHADER},
	}
	if src.Geometry != "" {
		stages = append(stages, stage{src.Geometry, gl.GEOMETRY_SHADER})
	}

	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, shader := range shaders {
			gl.DeleteShader(shader)
		}
	}()

	for _, st := range stages {
		code, err := fs.ReadFile(fsys, st.path)
		if err != nil {
			return 0, fmt.Errorf("failed to read shader: %w", err)
		}
		shader, err := compileShader(string(code)+"\x00", st.shaderType)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", st.path, err)
		}
		shaders = append(shaders, shader)
	}

	return newProgram(shaders...)

}

func newProgram(shaders ...uint32) (uint32, error) {

	program := gl.CreateProgram()

	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))

	}

	for _, shader := range shaders {
		gl.DetachShader(program, shader)
	}

	return program, nil

}

func compileShader(source string, shaderType uint32) (uint32, error) {

	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %s shader: %v", stageName(shaderType), strings.TrimRight(log, "\x00"))

	}

	return shader, nil

}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	}
	return fmt.Sprintf("0x%x", shaderType)
}
