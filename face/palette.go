package face

import (
	"fmt"
	"image/color"
)

// ColorMode selects the palette and whether hands are outlined.
type ColorMode int

const (
	// Color displays draw hands without outlines.
	Color ColorMode = iota
	// Mono displays outline the hour and minute hands for contrast.
	Mono
)

func (m ColorMode) String() string {
	switch m {
	case Color:
		return "color"
	case Mono:
		return "mono"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode parses the names returned by String.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "color":
		return Color, nil
	case "mono":
		return Mono, nil
	}
	return 0, fmt.Errorf("face: unknown color mode %q", s)
}

// Outlined reports whether the hour and minute hands get an
// outline in this mode.
func (m ColorMode) Outlined() bool {
	return m == Mono
}

// Palette holds the colors of the face.
type Palette struct {
	Background color.NRGBA
	Hour       color.NRGBA
	Minute     color.NRGBA
	Second     color.NRGBA
	// Outline strokes the hour and minute hands in Mono mode.
	Outline color.NRGBA
	Center  color.NRGBA
}

func rgb(c uint32) color.NRGBA {
	return color.NRGBA{A: 0xff, R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

var (
	ColorPalette = Palette{
		Background: rgb(0xffffff),
		Hour:       rgb(0x005555), // Midnight green.
		Minute:     rgb(0xaa0000), // Dark candy apple red.
		Second:     rgb(0xaaaa00), // Limerick.
		Outline:    rgb(0x000000),
		Center:     rgb(0x000000),
	}
	MonoPalette = Palette{
		Background: rgb(0xffffff),
		Hour:       rgb(0xffffff),
		Minute:     rgb(0xffffff),
		Second:     rgb(0x000000),
		Outline:    rgb(0x000000),
		Center:     rgb(0xffffff),
	}
)

// DefaultPalette returns the built-in palette for m.
func DefaultPalette(m ColorMode) Palette {
	if m == Mono {
		return MonoPalette
	}
	return ColorPalette
}
