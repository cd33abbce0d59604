// Package config loads the optional learngl.toml settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "learngl.toml"

type Config struct {
	Window Window `toml:"window"`
	Paths  Paths  `toml:"paths"`
	Camera Camera `toml:"camera"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// Samples > 0 requests a multisampled default framebuffer.
	Samples int  `toml:"samples"`
	VSync   bool `toml:"vsync"`
}

type Paths struct {
	Shaders string `toml:"shaders"`
	Assets  string `toml:"assets"`
	// Watch reloads shaders when their files change.
	Watch bool `toml:"watch"`
}

type Camera struct {
	Speed       float32 `toml:"speed"`       // units per second
	Sensitivity float32 `toml:"sensitivity"` // degrees per pixel
}

type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1024,
			Height: 768,
			Title:  "LearnOpenGL",
			VSync:  true,
		},
		Paths: Paths{
			Shaders: "shaders",
			Assets:  "assets",
		},
		Camera: Camera{
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path on top of the defaults. An empty path means DefaultFile,
// which may be absent; an explicitly named file must exist.
func Load(path string) (Config, error) {

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, cfg.Validate()

}

// Decode parses TOML data into cfg. Unknown keys are an error.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate reports settings no lesson can run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.Samples < 0:
		return fmt.Errorf("window samples must not be negative, got %d", c.Window.Samples)
	case c.Camera.Speed <= 0:
		return fmt.Errorf("camera speed must be positive, got %v", c.Camera.Speed)
	}
	return nil
}
