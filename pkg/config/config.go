// Package config holds the settings of a snakegrid run.
//
// Every path and visual constant lives in [Config] and is passed explicitly
// into the injector. Settings can be loaded from a TOML file:
//
//	dates = "dates.json"
//	window_days = 365
//
//	[[targets]]
//	template = "snake-light.svg"
//	output = "dist/snake-light.svg"
//
//	[[targets]]
//	template = "snake-dark.svg"
//	output = "dist/snake-dark.svg"
//
//	[marker]
//	width = 10
//	height = 10
//	pitch = 14
//	origin = 13
//	fill = "#0e4429"
//
// Keys missing from the file keep their [Default] values.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/snakegrid/pkg/errors"
	"github.com/matzehuels/snakegrid/pkg/grid"
	"github.com/matzehuels/snakegrid/pkg/marker"
)

// Defaults.
const (
	DefaultDates      = "dates.json"
	DefaultTemplate   = "template.svg"
	DefaultOutput     = "output.svg"
	DefaultWindowDays = 365
	DefaultSize       = 10
	DefaultPitch      = 14
	DefaultOrigin     = 13
	DefaultFill       = "#0e4429"
)

// FileName is the config file looked up in the working directory.
const FileName = "snakegrid.toml"

// Config is the full set of run settings.
type Config struct {
	Dates      string   `toml:"dates"`
	WindowDays int      `toml:"window_days"`
	Targets    []Target `toml:"targets"`
	Marker     Marker   `toml:"marker"`
}

// Target pairs a template with the output written from it.
type Target struct {
	Template string `toml:"template"`
	Output   string `toml:"output"`
}

// Marker is the marker geometry and color.
type Marker struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Pitch  int    `toml:"pitch"`
	Origin int    `toml:"origin"`
	Fill   string `toml:"fill"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dates:      DefaultDates,
		WindowDays: DefaultWindowDays,
		Targets:    []Target{{Template: DefaultTemplate, Output: DefaultOutput}},
		Marker: Marker{
			Width:  DefaultSize,
			Height: DefaultSize,
			Pitch:  DefaultPitch,
			Origin: DefaultOrigin,
			Fill:   DefaultFill,
		},
	}
}

// Load reads a TOML config file on top of [Default] and validates it.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.Targets = nil

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "read config %s", path)
		}
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Targets == nil {
		cfg.Targets = Default().Targets
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that c describes a runnable configuration.
func (c Config) Validate() error {
	if err := errs.ValidatePath(c.Dates); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "dates")
	}
	if c.WindowDays <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "window_days must be positive, got %d", c.WindowDays)
	}
	if len(c.Targets) == 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "at least one target is required")
	}
	outputs := make(map[string]int, len(c.Targets))
	for i, t := range c.Targets {
		if err := errs.ValidatePath(t.Template); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "targets[%d].template", i)
		}
		if err := errs.ValidatePath(t.Output); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "targets[%d].output", i)
		}
		if j, dup := outputs[t.Output]; dup {
			return errs.New(errs.ErrCodeInvalidConfig, "targets[%d] and targets[%d] share output %s", j, i, t.Output)
		}
		outputs[t.Output] = i
	}
	return c.Marker.Validate()
}

// Validate checks the marker geometry and fill.
func (m Marker) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "marker size must be positive, got %dx%d", m.Width, m.Height)
	}
	if m.Pitch <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "marker pitch must be positive, got %d", m.Pitch)
	}
	if m.Origin < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "marker origin cannot be negative, got %d", m.Origin)
	}
	return errs.ValidateFill(m.Fill)
}

// Geometry returns the cell-to-pixel mapping.
func (m Marker) Geometry() grid.Geometry {
	return grid.Geometry{Origin: m.Origin, Pitch: m.Pitch}
}

// Style returns the marker appearance.
func (m Marker) Style() marker.Style {
	return marker.Style{Width: m.Width, Height: m.Height, Fill: m.Fill}
}
