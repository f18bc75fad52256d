// Package config holds the settings a board is constructed with.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"SketchBoard/internal/colorx"
	"SketchBoard/internal/state"
)

// Config is the construction-time configuration of a board and its host.
type Config struct {
	Color        string                  `toml:"color"`
	Thickness    float64                 `toml:"thickness"`
	Opacity      float64                 `toml:"opacity"`
	Tool         string                  `toml:"tool"`
	EraserRadius float64                 `toml:"eraser_radius"`
	Combine      bool                    `toml:"combine"`
	Simplify     state.SimplifyOverrides `toml:"simplify"`
	PathsFile    string                  `toml:"paths_file"`
	Width        float64                 `toml:"width"`
	Height       float64                 `toml:"height"`
	Enabled      bool                    `toml:"enabled"`
	Listen       string                  `toml:"listen"`
	Advertise    bool                    `toml:"advertise"`
}

// Default returns the documented defaults.
func Default() Config {
	d := state.DefaultOptions()
	return Config{
		Color:        d.Style.Color,
		Thickness:    d.Style.Thickness,
		Opacity:      d.Style.Opacity,
		Tool:         d.Tool.String(),
		EraserRadius: d.EraserRadius,
		Combine:      d.Combine,
		Width:        d.Width,
		Height:       d.Height,
		Enabled:      d.Enabled,
		Listen:       ":8888",
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// SimplifyOptions merges the configured overrides over the defaults.
func (c Config) SimplifyOptions() state.SimplifyOptions {
	return state.DefaultSimplifyOptions.Merge(c.Simplify)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Color == "" {
		errs = append(errs, errors.New("color must not be empty"))
	} else if _, err := colorx.Parse(c.Color); err != nil {
		errs = append(errs, err)
	}
	if !(c.Thickness > 0) {
		errs = append(errs, fmt.Errorf("thickness %v must be positive", c.Thickness))
	}
	if !(c.Opacity >= 0 && c.Opacity <= 1) {
		errs = append(errs, fmt.Errorf("opacity %v outside [0,1]", c.Opacity))
	}
	if c.EraserRadius < 0 {
		errs = append(errs, fmt.Errorf("eraser radius %v must not be negative", c.EraserRadius))
	}
	if _, err := state.ParseTool(c.Tool, c.EraserRadius); err != nil {
		errs = append(errs, err)
	}
	if c.SimplifyOptions().Amount < 0 {
		errs = append(errs, fmt.Errorf("simplify amount %v must not be negative", c.SimplifyOptions().Amount))
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		errs = append(errs, fmt.Errorf("canvas size %vx%v must be positive", c.Width, c.Height))
	}
	if len(errs) != 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// BoardOptions builds board options, reading the initial strokes from
// PathsFile when it is set. The color is normalized to "#rrggbb".
func (c Config) BoardOptions(onChange state.ChangeFunc) (state.Options, error) {
	if err := c.Validate(); err != nil {
		return state.Options{}, err
	}
	tool, _ := state.ParseTool(c.Tool, c.EraserRadius)
	rgb, _ := colorx.Parse(c.Color)

	var initial []state.Stroke
	if c.PathsFile != "" {
		f, err := os.Open(c.PathsFile)
		if err != nil {
			return state.Options{}, fmt.Errorf("open paths: %w", err)
		}
		defer f.Close()
		if initial, err = state.Load(f); err != nil {
			return state.Options{}, fmt.Errorf("load %s: %w", c.PathsFile, err)
		}
	}

	return state.Options{
		Style:        state.Style{Color: colorx.Hex(rgb), Thickness: c.Thickness, Opacity: c.Opacity},
		Combine:      c.Combine,
		Tool:         tool,
		EraserRadius: c.EraserRadius,
		Simplify:     c.SimplifyOptions(),
		Initial:      initial,
		Width:        c.Width,
		Height:       c.Height,
		Enabled:      c.Enabled,
		OnChange:     onChange,
	}, nil
}
