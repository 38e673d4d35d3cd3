// Settings for the hullviz command. Everything has a default, and a config
// file only needs to mention what it changes.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The file loaded when no path is given, if it exists.
const DefaultPath = "hullviz.yaml"

type Config struct {
	Algorithm string    `yaml:"algorithm"`
	Generator Generator `yaml:"generator"`
	Render    Render    `yaml:"render"`
	Player    Player    `yaml:"player"`
}

type Generator struct {
	Count    int     `yaml:"count"`
	XMax     float64 `yaml:"x_max"`
	YMax     float64 `yaml:"y_max"`
	Decimals int     `yaml:"decimals"`
}

type Render struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

type Player struct {
	// Steps per second while playing
	FPS float64 `yaml:"fps"`
}

func Default() Config {
	return Config{
		Algorithm: "monotone-chain",
		Generator: Generator{Count: 50, XMax: 1000, YMax: 1000, Decimals: 2},
		Render:    Render{Width: 800, Height: 800, Padding: 40},
		Player:    Player{FPS: 4},
	}
}

// Load the config at path over the defaults. With an empty path, DefaultPath is
// used if it exists, and the defaults otherwise.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Player.FPS <= 0 {
		return errors.Errorf("player fps must be positive, got %g", c.Player.FPS)
	}
	if c.Generator.XMax < 0 || c.Generator.YMax < 0 {
		return errors.New("generator bounds must be non-negative")
	}
	return nil
}
