// Package mono implements a 1 bit per pixel black and white image,
// the framebuffer format of monochrome watch displays.
package mono

import (
	"image"
	"image/color"
)

// Image stores pixels 8 to a byte, most significant bit first.
// A set bit is white.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

var (
	Black = color.Gray{Y: 0x00}
	White = color.Gray{Y: 0xff}
)

// Model snaps colors to black or white by luminance.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if IsWhite(c) {
		return White
	}
	return Black
})

func New(r image.Rectangle) *Image {
	stride := (r.Dx() + 7) / 8
	return &Image{
		Pix:    make([]byte, stride*r.Dy()),
		Stride: stride,
		Rect:   r,
	}
}

// IsWhite reports whether c is at least half bright. Transparent
// colors are black.
func IsWhite(c color.Color) bool {
	y := color.Gray16Model.Convert(c).(color.Gray16).Y
	return y >= 0x8000
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) ColorModel() color.Model {
	return Model
}

// bit returns the byte offset and mask of the pixel at (x, y).
func (p *Image) bit(x, y int) (int, byte) {
	off := image.Pt(x, y).Sub(p.Rect.Min)
	return off.Y*p.Stride + off.X/8, 0x80 >> (off.X % 8)
}

func (p *Image) At(x, y int) color.Color {
	return p.GrayAt(x, y)
}

func (p *Image) GrayAt(x, y int) color.Gray {
	if !(image.Point{x, y}).In(p.Rect) {
		return Black
	}
	i, mask := p.bit(x, y)
	if p.Pix[i]&mask != 0 {
		return White
	}
	return Black
}

func (p *Image) RGBA64At(x, y int) color.RGBA64 {
	g := uint16(p.GrayAt(x, y).Y)
	g |= g << 8
	return color.RGBA64{R: g, G: g, B: g, A: 0xffff}
}

func (p *Image) Set(x, y int, c color.Color) {
	p.SetWhite(x, y, IsWhite(c))
}

func (p *Image) SetRGBA64(x, y int, c color.RGBA64) {
	p.SetWhite(x, y, IsWhite(c))
}

// SetWhite sets the pixel at (x, y) to white or black.
func (p *Image) SetWhite(x, y int, white bool) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	i, mask := p.bit(x, y)
	if white {
		p.Pix[i] |= mask
	} else {
		p.Pix[i] &^= mask
	}
}
