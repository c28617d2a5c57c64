// Package config holds the tunable settings of a conversion and loads them
// from a YAML defaults file.
package config

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is looked for next to the input drawing.
const FileName = "svg2svx.yaml"

type Colors struct {
	Path   string `yaml:"path"`
	Orient string `yaml:"orient"`
	Scale  string `yaml:"scale"`
}

// Config is everything a user can set, either in a defaults file or on the
// command line.
type Config struct {
	// Length of the scale bar in metres
	Scale float64 `yaml:"scale"`
	// Bearing of the orientation line in degrees
	North float64 `yaml:"north"`
	// Stations closer than this many metres are equated
	Tolerance float64 `yaml:"tolerance"`
	Layer     string  `yaml:"layer"`
	Name      string  `yaml:"name"`
	Extra     bool    `yaml:"extra"`
	Colors    Colors  `yaml:"colors"`
}

// Default matches the original tool's option defaults.
func Default() Config {
	return Config{
		Scale:     100,
		North:     0,
		Tolerance: 0.2,
		Colors: Colors{
			Path:   "#ff0000",
			Orient: "#00ff00",
			Scale:  "#0000ff",
		},
	}
}

// Decode overlays the YAML document in r onto base. Keys missing from the
// document keep base's values.
func Decode(r io.Reader, base Config) (Config, error) {
	cfg := base
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return base, errors.Wrap(err, "decoding defaults")
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// LoadFile overlays the named file onto base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrap(err, "reading defaults")
	}
	cfg, err := Decode(bytes.NewReader(data), base)
	if err != nil {
		return base, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// Beside returns the defaults file that applies to a drawing, if there is one.
func Beside(drawing string) (string, bool) {
	candidate := filepath.Join(filepath.Dir(drawing), FileName)
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", false
	}
	return candidate, true
}

func (c Config) Validate() error {
	for _, setting := range []struct {
		name  string
		value float64
	}{{"scale", c.Scale}, {"north", c.North}, {"tolerance", c.Tolerance}} {
		if math.IsNaN(setting.value) || math.IsInf(setting.value, 0) {
			return errors.Errorf("%s must be a finite number, got %g", setting.name, setting.value)
		}
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.Tolerance < 0 {
		return errors.Errorf("tolerance must not be negative, got %g", c.Tolerance)
	}
	return nil
}
