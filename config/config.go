// Package config provides configuration loading and access for the demos.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Ticker       TickerConfig       `yaml:"ticker"`
	Pond         PondConfig         `yaml:"pond"`
	Overlay      OverlayConfig      `yaml:"overlay"`
	Displacement DisplacementConfig `yaml:"displacement"`
	Bunny        BunnyConfig        `yaml:"bunny"`
	Assets       AssetsConfig       `yaml:"assets"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Background string `yaml:"background"` // clear colour, "#rrggbb"
	Title      string `yaml:"title"`
}

// TickerConfig controls how wall-clock frame time maps to scene deltas.
type TickerConfig struct {
	ReferenceFPS float64 `yaml:"reference_fps"` // delta 1.0 == one frame at this rate
	MaxDelta     float64 `yaml:"max_delta"`     // upper clamp for a single frame's delta
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PondConfig holds the fish pond scene parameters.
type PondConfig struct {
	FishCount       int      `yaml:"fish_count"`
	Padding         float64  `yaml:"padding"`     // wrap margin outside the viewport
	TurnFactor      float64  `yaml:"turn_factor"` // effective heading = heading + turnRate*this
	Background      string   `yaml:"background"`  // texture alias
	BackgroundCover float64  `yaml:"background_cover"`
	Anchor          float64  `yaml:"anchor"` // fish sprite anchor, 0 = top-left
	Variants        []string `yaml:"variants"`
	Heading         Range    `yaml:"heading"`
	Speed           Range    `yaml:"speed"`
	TurnRate        Range    `yaml:"turn_rate"`
	Scale           Range    `yaml:"scale"`
}

// OverlayConfig holds the tiling water overlay settings.
type OverlayConfig struct {
	Enabled bool   `yaml:"enabled"`
	Texture string `yaml:"texture"`
}

// DisplacementConfig holds the ripple filter settings.
type DisplacementConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale"` // maximum offset in pixels
	Texture string  `yaml:"texture"`
}

// BunnyConfig holds the spinning sprite scene parameters.
type BunnyConfig struct {
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per unit delta
	Texture       string  `yaml:"texture"`
}

// Asset is a single texture entry of the manifest.
type Asset struct {
	Alias string `yaml:"alias"`
	File  string `yaml:"file"`
	URL   string `yaml:"url"` // upstream source, informational only
}

// AssetsConfig lists textures available to the renderers.
type AssetsConfig struct {
	Dir  string  `yaml:"dir"`
	List []Asset `yaml:"list"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds of reference time
	PerfWindow  int     `yaml:"perf_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32     float32
	ScreenH32     float32
	Padding32     float32
	TurnFactor32  float32
	BackgroundRGB [3]uint8
	AssetIndex    map[string]Asset // alias -> asset
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first inconsistency found in the configuration.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Ticker.ReferenceFPS <= 0 {
		return fmt.Errorf("%w: ticker.reference_fps must be positive", ErrInvalid)
	}
	if c.Ticker.MaxDelta <= 0 {
		return fmt.Errorf("%w: ticker.max_delta must be positive", ErrInvalid)
	}
	if c.Pond.FishCount < 0 {
		return fmt.Errorf("%w: pond.fish_count %d", ErrInvalid, c.Pond.FishCount)
	}
	if c.Pond.FishCount > 0 && len(c.Pond.Variants) == 0 {
		return fmt.Errorf("%w: pond.variants is empty", ErrInvalid)
	}
	if c.Pond.Padding < 0 {
		return fmt.Errorf("%w: pond.padding %v", ErrInvalid, c.Pond.Padding)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"pond.heading", c.Pond.Heading},
		{"pond.speed", c.Pond.Speed},
		{"pond.turn_rate", c.Pond.TurnRate},
		{"pond.scale", c.Pond.Scale},
	}
	for _, r := range ranges {
		if r.r.Max <= r.r.Min {
			return fmt.Errorf("%w: %s range [%v, %v) is empty", ErrInvalid, r.name, r.r.Min, r.r.Max)
		}
	}

	seen := make(map[string]bool, len(c.Assets.List))
	for _, a := range c.Assets.List {
		if a.Alias == "" || a.File == "" {
			return fmt.Errorf("%w: asset entry %+v needs alias and file", ErrInvalid, a)
		}
		if seen[a.Alias] {
			return fmt.Errorf("%w: duplicate asset alias %q", ErrInvalid, a.Alias)
		}
		seen[a.Alias] = true
	}
	refs := append([]string{c.Pond.Background, c.Overlay.Texture, c.Displacement.Texture, c.Bunny.Texture}, c.Pond.Variants...)
	for _, alias := range refs {
		if alias != "" && !seen[alias] {
			return fmt.Errorf("%w: texture %q is not in the asset list", ErrInvalid, alias)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.Padding32 = float32(c.Pond.Padding)
	c.Derived.TurnFactor32 = float32(c.Pond.TurnFactor)

	rgb, err := ParseHexColor(c.Screen.Background)
	if err != nil {
		return fmt.Errorf("screen.background: %w", err)
	}
	c.Derived.BackgroundRGB = rgb

	c.Derived.AssetIndex = make(map[string]Asset, len(c.Assets.List))
	for _, a := range c.Assets.List {
		c.Derived.AssetIndex[a.Alias] = a
	}
	return nil
}

// ParseHexColor parses "#rrggbb" (the leading # is optional).
func ParseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return rgb, fmt.Errorf("%w: colour %q is not #rrggbb", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rgb, fmt.Errorf("%w: colour %q: %v", ErrInvalid, s, err)
	}
	rgb[0] = uint8(v >> 16)
	rgb[1] = uint8(v >> 8)
	rgb[2] = uint8(v)
	return rgb, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
