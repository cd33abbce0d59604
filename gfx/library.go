package gfx

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"go.uber.org/zap"
)

// ShaderLibrary loads programs from one file system and rebuilds the ones
// that use a changed file.
type ShaderLibrary struct {
	fsys    fs.FS
	log     *zap.Logger
	shaders []*Shader
}

func NewShaderLibrary(fsys fs.FS, log *zap.Logger) *ShaderLibrary {
	return &ShaderLibrary{fsys: fsys, log: log}
}

// Load builds a program and keeps it for Reload.
func (l *ShaderLibrary) Load(src ShaderSource) (*Shader, error) {
	s, err := NewShader(l.fsys, src)
	if err != nil {
		return nil, err
	}
	l.log.Debug("shader loaded", zap.Strings("files", src.Paths()), zap.Uint32("program", s.Program()))
	l.shaders = append(l.shaders, s)
	return s, nil
}

// Reload rebuilds every program that includes file, a slash separated path
// relative to the library's file system. Programs that fail keep running
// their previous version.
func (l *ShaderLibrary) Reload(file string) error {
	var errs []error
	for _, s := range l.shaders {
		if !slices.Contains(s.Source().Paths(), file) {
			continue
		}
		if err := s.Reload(l.fsys); err != nil {
			errs = append(errs, fmt.Errorf("reload %s: %w", file, err))
			continue
		}
		l.log.Info("shader reloaded", zap.String("file", file), zap.Uint32("program", s.Program()))
	}
	return errors.Join(errs...)
}

// Close deletes every loaded program.
func (l *ShaderLibrary) Close() error {
	for _, s := range l.shaders {
		s.Close()
	}
	l.shaders = nil
	return nil
}
