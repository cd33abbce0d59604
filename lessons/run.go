// Package lessons contains the runnable Learn OpenGL lessons. Each lesson
// registers itself with the tutorial registry in an init function.
//
// https://learnopengl.com
package lessons

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/paperboard/learnopengl/camera"
	"github.com/paperboard/learnopengl/gfx"
	"github.com/paperboard/learnopengl/internal/watch"
	"github.com/paperboard/learnopengl/tutorial"
)

// FrameFunc draws one frame. t is the time since start, dt the time since
// the previous frame, both in seconds.
type FrameFunc func(t, dt float32)

// lesson is a tutorial whose shaders live in shaders/<dir>.
type lesson struct {
	id    string
	title string
	dir   string
	setup func(*Context) (FrameFunc, error)
}

func register(l lesson) {
	tutorial.Register(tutorial.Tutorial{
		ID:    l.id,
		Title: l.title,
		Run:   func(env tutorial.Env) error { return run(env, l) },
	})
}

// Context is handed to a lesson's setup.
type Context struct {
	Env      tutorial.Env
	Log      *zap.Logger
	Window   *gfx.Window
	Controls *gfx.Controls
	Camera   *camera.Camera
	Shaders  *gfx.ShaderLibrary

	dir     string
	closers []io.Closer
}

// Shader loads a program. Bare file names are looked up in the lesson's own
// shader directory, paths with a slash from the shader root.
func (c *Context) Shader(vertex, fragment string) (*gfx.Shader, error) {
	return c.Shaders.Load(gfx.ShaderSource{
		Vertex:   c.shaderPath(vertex),
		Fragment: c.shaderPath(fragment),
	})
}

func (c *Context) shaderPath(name string) string {
	if strings.Contains(name, "/") {
		return name
	}
	return path.Join(c.dir, name)
}

// Texture loads an image below the assets directory.
func (c *Context) Texture(name string, opts gfx.TextureOptions) (uint32, error) {
	p := c.Asset(name)
	tex, err := gfx.LoadTexture(p, opts)
	if err != nil {
		return 0, err
	}
	c.Log.Debug("texture loaded", zap.String("path", p), zap.Uint32("texture", tex))
	return tex, nil
}

// Asset returns the file system path of an asset.
func (c *Context) Asset(name string) string {
	return filepath.Join(c.Env.Config.Paths.Assets, filepath.FromSlash(name))
}

// Defer closes cl when the lesson ends, in reverse order of registration.
func (c *Context) Defer(cl io.Closer) {
	c.closers = append(c.closers, cl)
}

func (c *Context) close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i].Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func run(env tutorial.Env, l lesson) error {

	cfg := env.Config
	log := env.Log.With(zap.String("lesson", l.id))

	window, err := gfx.OpenWindow(cfg.Window, log)
	if err != nil {
		return err
	}
	defer window.Close()

	cam := camera.Default()
	cam.SetSpeed(cfg.Camera.Speed)
	cam.SetSensitivity(cfg.Camera.Sensitivity)

	shaders := gfx.NewShaderLibrary(os.DirFS(cfg.Paths.Shaders), log)
	defer shaders.Close()

	ctx := &Context{
		Env:      env,
		Log:      log,
		Window:   window,
		Controls: gfx.NewControls(window, cam),
		Camera:   cam,
		Shaders:  shaders,
		dir:      l.dir,
	}

	var watcher *watch.Watcher
	if cfg.Paths.Watch {
		watcher, err = watch.New(cfg.Paths.Shaders, log)
		if err != nil {
			return err
		}
		defer watcher.Close()
		log.Info("watching shaders", zap.String("dir", cfg.Paths.Shaders))
	}

	frame, err := l.setup(ctx)
	if err != nil {
		ctx.close()
		return fmt.Errorf("lesson %s: %w", l.id, err)
	}

	log.Info("running", zap.String("title", l.title))

	window.Run(func(t, dt float32) {

		// pick up edited shaders before drawing
		if watcher != nil {
			for _, file := range watcher.Drain() {
				if err := shaders.Reload(file); err != nil {
					log.Error("shader reload failed", zap.Error(err))
				}
			}
		}

		// move camera for held keys
		ctx.Controls.Poll(dt)

		// draw into buffer
		frame(t, dt)

		// check for accumulated OpenGL errors
		gfx.CheckError()

	})

	return ctx.close()

}
