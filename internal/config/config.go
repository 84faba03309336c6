// Package config holds the program settings. A config file may be JSON, YAML or TOML,
// chosen by extension. Missing files mean defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"periodic-table/internal/card"
	"periodic-table/internal/layout"
	"periodic-table/internal/table"
	"periodic-table/internal/tween"
)

// DefaultPath is the config file used when none is given, relative to the working directory.
const DefaultPath = "config/periodictable.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// ErrFormat is returned for a file extension with no known format.
var ErrFormat = errors.New("unknown config format")

type Window struct {
	Title     string `json:"title" yaml:"title" toml:"title"`
	Width     int    `json:"width" yaml:"width" toml:"width"`
	Height    int    `json:"height" yaml:"height" toml:"height"`
	TargetFPS int    `json:"target_fps" yaml:"target_fps" toml:"target_fps"`
}

type Card struct {
	Width        float32 `json:"width" yaml:"width" toml:"width"`
	Height       float32 `json:"height" yaml:"height" toml:"height"`
	Spacing      float32 `json:"spacing" yaml:"spacing" toml:"spacing"`
	Color        string  `json:"color" yaml:"color" toml:"color"`
	PanelOpacity float32 `json:"panel_opacity" yaml:"panel_opacity" toml:"panel_opacity"`
	TextOpacity  float32 `json:"text_opacity" yaml:"text_opacity" toml:"text_opacity"`
}

type Layout struct {
	GridZ             float32 `json:"grid_z" yaml:"grid_z" toml:"grid_z"`
	BlockWidth        int     `json:"block_width" yaml:"block_width" toml:"block_width"`
	BlockHeight       int     `json:"block_height" yaml:"block_height" toml:"block_height"`
	BlockDepth        int     `json:"block_depth" yaml:"block_depth" toml:"block_depth"`
	SphereCardsAround int     `json:"sphere_cards_around" yaml:"sphere_cards_around" toml:"sphere_cards_around"`
}

// Animation durations are in milliseconds.
type Animation struct {
	MoveMS   int    `json:"move_ms" yaml:"move_ms" toml:"move_ms"`
	LookMS   int    `json:"look_ms" yaml:"look_ms" toml:"look_ms"`
	FlipMS   int    `json:"flip_ms" yaml:"flip_ms" toml:"flip_ms"`
	FlightMS int    `json:"flight_ms" yaml:"flight_ms" toml:"flight_ms"`
	Ease     string `json:"ease" yaml:"ease" toml:"ease"`
}

type Camera struct {
	FOV           float32 `json:"fov" yaml:"fov" toml:"fov"`
	Near          float32 `json:"near" yaml:"near" toml:"near"`
	Far           float32 `json:"far" yaml:"far" toml:"far"`
	FocusDistance float32 `json:"focus_distance" yaml:"focus_distance" toml:"focus_distance"`
	FrameMargin   float32 `json:"frame_margin" yaml:"frame_margin" toml:"frame_margin"`
	Damping       float32 `json:"damping" yaml:"damping" toml:"damping"`
}

// Debug toggles the overlays shown at startup.
type Debug struct {
	ShowFPS      bool `json:"show_fps" yaml:"show_fps" toml:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc" yaml:"show_memalloc" toml:"show_memalloc"`
}

// Config is everything a run can be tuned with.
type Config struct {
	Window    Window    `json:"window" yaml:"window" toml:"window"`
	Card      Card      `json:"card" yaml:"card" toml:"card"`
	Layout    Layout    `json:"layout" yaml:"layout" toml:"layout"`
	Animation Animation `json:"animation" yaml:"animation" toml:"animation"`
	Camera    Camera    `json:"camera" yaml:"camera" toml:"camera"`
	Debug     Debug     `json:"debug" yaml:"debug" toml:"debug"`

	// Dataset is an element JSON file. Empty means the embedded table.
	Dataset     string `json:"dataset" yaml:"dataset" toml:"dataset"`
	InitialMode string `json:"initial_mode" yaml:"initial_mode" toml:"initial_mode"`
	// Font is a TTF path or a font name looked up in the system font directories.
	Font       string `json:"font" yaml:"font" toml:"font"`
	Background string `json:"background" yaml:"background" toml:"background"`
	// Stylesheet is a CSS file for the toolbar and panels. Empty means the built-in style.
	Stylesheet string `json:"stylesheet" yaml:"stylesheet" toml:"stylesheet"`
	LogFile    string `json:"log_file" yaml:"log_file" toml:"log_file"`
	LogLevel   string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Default returns the stock settings.
func Default() Config {
	p := layout.DefaultParams()
	return Config{
		Window: Window{Title: "Periodic Table", Width: 1280, Height: 720, TargetFPS: 60},
		Card: Card{
			Width:        p.CardWidth,
			Height:       p.CardHeight,
			Spacing:      p.Spacing,
			Color:        "#006699",
			PanelOpacity: 0.3,
			TextOpacity:  0.4,
		},
		Layout: Layout{
			GridZ:             p.GridZ,
			BlockWidth:        p.BlockWidth,
			BlockHeight:       p.BlockHeight,
			BlockDepth:        p.BlockDepth,
			SphereCardsAround: p.SphereCardsAround,
		},
		Animation: Animation{MoveMS: 1000, LookMS: 1000, FlipMS: 1000, FlightMS: 1000, Ease: "linear"},
		Camera: Camera{
			FOV:           45,
			Near:          1,
			Far:           100000,
			FocusDistance: 500,
			FrameMargin:   1.5,
			Damping:       0.1,
		},
		InitialMode: string(layout.ModeGrid),
		Background:  "#f0f0f0",
		LogLevel:    "info",
	}
}

// Load reads path on top of the defaults. A missing file returns the defaults and no
// error; unreadable, malformed or invalid files return an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(path, data, &c); err != nil {
		return Default(), err
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode unmarshals data into c using the format named by the extension of path.
func Decode(path string, data []byte, c *Config) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Encode marshals c in the format named by the extension of path.
func Encode(path string, c Config) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.MarshalIndent(c, "", "\t")
	case ".yaml", ".yml":
		return yaml.Marshal(c)
	case ".toml":
		return toml.Marshal(c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

// Save writes c to path in the format named by its extension, creating the directory
// if needed.
func Save(path string, c Config) error {
	data, err := Encode(path, c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects sizes and durations that are not positive, unknown modes, easings
// and colors.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return bad("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return bad("target fps %d", c.Window.TargetFPS)
	case c.Animation.MoveMS <= 0 || c.Animation.LookMS <= 0 || c.Animation.FlipMS <= 0 || c.Animation.FlightMS <= 0:
		return bad("animation durations must be positive")
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return bad("fov %g", c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return bad("clip range %g..%g", c.Camera.Near, c.Camera.Far)
	case c.Camera.FocusDistance <= 0 || c.Camera.FrameMargin <= 0:
		return bad("focus distance %g, frame margin %g", c.Camera.FocusDistance, c.Camera.FrameMargin)
	case c.Camera.Damping < 0 || c.Camera.Damping > 1:
		return bad("damping %g not in [0,1]", c.Camera.Damping)
	case c.Card.PanelOpacity < 0 || c.Card.PanelOpacity > 1 || c.Card.TextOpacity < 0 || c.Card.TextOpacity > 1:
		return bad("opacity not in [0,1]")
	}
	if err := c.Params().Validate(); err != nil {
		return bad("%v", err)
	}
	if c.InitialMode != "" {
		if _, err := layout.ParseMode(c.InitialMode); err != nil {
			return bad("%v", err)
		}
	}
	if _, err := tween.ByName(c.Animation.Ease); err != nil {
		return bad("%v", err)
	}
	for _, hex := range []string{c.Card.Color, c.Background} {
		if _, err := ParseColor(hex); err != nil {
			return bad("%v", err)
		}
	}
	return nil
}

// Params converts the card and layout sections.
func (c Config) Params() layout.Params {
	return layout.Params{
		CardWidth:         c.Card.Width,
		CardHeight:        c.Card.Height,
		Spacing:           c.Card.Spacing,
		GridZ:             c.Layout.GridZ,
		BlockWidth:        c.Layout.BlockWidth,
		BlockHeight:       c.Layout.BlockHeight,
		BlockDepth:        c.Layout.BlockDepth,
		SphereCardsAround: c.Layout.SphereCardsAround,
	}
}

// TableOptions converts the card, animation, camera and window sections.
func (c Config) TableOptions() table.Options {
	ease, err := tween.ByName(c.Animation.Ease)
	if err != nil {
		ease = tween.Linear
	}
	return table.Options{
		Card:           card.Size{Width: c.Card.Width, Height: c.Card.Height},
		MoveDuration:   ms(c.Animation.MoveMS),
		LookDuration:   ms(c.Animation.LookMS),
		FlipDuration:   ms(c.Animation.FlipMS),
		FlightDuration: ms(c.Animation.FlightMS),
		Ease:           ease,
		FOV:            c.Camera.FOV,
		Near:           c.Camera.Near,
		Far:            c.Camera.Far,
		FocusDistance:  c.Camera.FocusDistance,
		FrameMargin:    c.Camera.FrameMargin,
		Damping:        c.Camera.Damping,
		Width:          c.Window.Width,
		Height:         c.Window.Height,
	}
}

// Mode returns the initial mode, grid when unset.
func (c Config) Mode() layout.Mode {
	m, err := layout.ParseMode(c.InitialMode)
	if err != nil {
		return layout.ModeGrid
	}
	return m
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ParseColor reads "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
