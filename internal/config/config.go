// Package config loads editor settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds editor settings.
type Config struct {
	// DragThreshold is the pointer travel in pixels before a press becomes
	// a drag.
	DragThreshold int `toml:"drag_threshold" yaml:"drag_threshold"`

	// Zoom is the presentation zoom factor applied to rendered output.
	Zoom float64 `toml:"zoom" yaml:"zoom"`

	// JPEGQuality is used when saving JPEG files, 1-100.
	JPEGQuality int `toml:"jpeg_quality" yaml:"jpeg_quality"`

	// Frame holds selection frame colours as "#rrggbb" strings.
	Frame FrameConfig `toml:"frame" yaml:"frame"`
}

// FrameConfig holds selection frame colours.
type FrameConfig struct {
	Floating string `toml:"floating" yaml:"floating"`
	Selected string `toml:"selected" yaml:"selected"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DragThreshold: 2,
		Zoom:          1,
		JPEGQuality:   90,
		Frame: FrameConfig{
			Floating: "#ffff00",
			Selected: "#ff00ff",
		},
	}
}

// Load reads path, decoding TOML for .toml files and YAML for .yaml/.yml.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unknown file type %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.DragThreshold < 0 {
		return fmt.Errorf("%w: drag_threshold %d is negative", ErrInvalidConfig, c.DragThreshold)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %g must be positive", ErrInvalidConfig, c.Zoom)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg_quality %d out of range 1-100", ErrInvalidConfig, c.JPEGQuality)
	}
	for name, s := range map[string]string{"frame.floating": c.Frame.Floating, "frame.selected": c.Frame.Selected} {
		if _, err := ParseHex(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// ParseHex parses a "#rrggbb" colour into its components.
func ParseHex(s string) ([3]uint8, error) {
	var rgb [3]uint8
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rgb, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	for i := range rgb {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return rgb, fmt.Errorf("colour %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}
