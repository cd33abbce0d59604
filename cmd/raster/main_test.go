package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPatternCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern.png")
	out, err := execute("-o", path, "--width", "64", "--height", "32", "--block", "20")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())
}

func TestModelCommand(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(obj, []byte("v -1 -1 0\nv 1 -1 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	for _, args := range [][]string{{}, {"--solid"}} {
		path := filepath.Join(dir, "tri.png")
		_, err := execute(append([]string{obj, "-o", path, "--width", "9", "--height", "9"}, args...)...)
		require.NoError(t, err)

		img, err := imgio.Open(path)
		require.NoError(t, err)
		r, g, b, _ := img.At(4, 8).RGBA()
		assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "%v", args)
		assert.Equal(t, color.Gray16{0}, color.Gray16Model.Convert(img.At(0, 0)), "%v", args)
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(filepath.Join(dir, "missing.obj"), "-o", filepath.Join(dir, "x.png"))
	assert.Error(t, err)

	_, err = execute("-o", filepath.Join(dir, "x.tga"), "--width", "4", "--height", "4")
	assert.Error(t, err)

	_, err = execute("--width", "0", "-o", filepath.Join(dir, "x.png"))
	assert.Error(t, err)

	_, err = execute("a.obj", "b.obj")
	assert.Error(t, err)
}
