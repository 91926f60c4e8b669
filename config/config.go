// Package config loads the watchface configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"analogface.dev/face"
	"github.com/BurntSushi/toml"
)

// Display names.
const (
	DisplayPNG    = "png"
	DisplayST7789 = "st7789"
	DisplayFBDev  = "fbdev"
)

type Config struct {
	ColorMode string `toml:"color_mode"`
	Display   string `toml:"display"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	// Output is the PNG file written by the png display.
	Output string `toml:"output"`
	// Device is the framebuffer device of the fbdev display.
	Device  string  `toml:"device"`
	Palette Palette `toml:"palette"`
}

// Palette overrides colors of the default palette. Empty entries
// keep the default.
type Palette struct {
	Background string `toml:"background"`
	Hour       string `toml:"hour"`
	Minute     string `toml:"minute"`
	Second     string `toml:"second"`
	Outline    string `toml:"outline"`
	Center     string `toml:"center"`
}

var ErrUnknownKey = errors.New("config: unknown key")

// Default is a color face on a 144x168 watch screen, rendered
// to a PNG file.
func Default() Config {
	return Config{
		ColorMode: face.Color.String(),
		Display:   DisplayPNG,
		Width:     144,
		Height:    168,
		Output:    "face.png",
		Device:    "/dev/fb0",
	}
}

// Load reads the file at path over the defaults. Only syntax and
// unknown keys are checked; call Validate once overrides from other
// sources are applied.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML text over the defaults. Like Load, it does not
// validate the values.
func Parse(data string) (Config, error) {
	c := Default()
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return c, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks the values of c.
func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	switch c.Display {
	case DisplayPNG:
		if c.Output == "" {
			return errors.New("config: png display without output")
		}
	case DisplayFBDev:
		if c.Device == "" {
			return errors.New("config: fbdev display without device")
		}
	case DisplayST7789:
	default:
		return fmt.Errorf("config: unknown display %q", c.Display)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if _, err := c.FacePalette(); err != nil {
		return err
	}
	return nil
}

func (c Config) Mode() (face.ColorMode, error) {
	m, err := face.ParseColorMode(c.ColorMode)
	if err != nil {
		return 0, fmt.Errorf("config: color_mode: %w", err)
	}
	return m, nil
}

func (c Config) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// FacePalette returns the default palette of the color mode with
// the overrides of c applied.
func (c Config) FacePalette() (face.Palette, error) {
	m, err := c.Mode()
	if err != nil {
		return face.Palette{}, err
	}
	p := face.DefaultPalette(m)
	for _, o := range []struct {
		name string
		val  string
		dst  *color.NRGBA
	}{
		{"background", c.Palette.Background, &p.Background},
		{"hour", c.Palette.Hour, &p.Hour},
		{"minute", c.Palette.Minute, &p.Minute},
		{"second", c.Palette.Second, &p.Second},
		{"outline", c.Palette.Outline, &p.Outline},
		{"center", c.Palette.Center, &p.Center},
	} {
		if o.val == "" {
			continue
		}
		col, err := ParseColor(o.val)
		if err != nil {
			return face.Palette{}, fmt.Errorf("config: palette.%s: %w", o.name, err)
		}
		*o.dst = col
	}
	return p, nil
}

// ParseColor parses an opaque color in #rrggbb notation.
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
