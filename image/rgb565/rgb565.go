// Package rgb565 contains an [image.RGBA64Image] implementation of a 16-bit
// RGB565 image, stored in the byte order displays expect on the wire.
package rgb565

import (
	"image"
	"image/color"
	"image/draw"
)

type Image struct {
	Pix    []Color
	Stride int
	Rect   image.Rectangle
}

// Color is a big-endian RGB565 pixel.
type Color struct {
	B0, B1 byte
}

func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Color, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Image) PixOffset(x, y int) int {
	off := image.Pt(x, y).Sub(p.Rect.Min)
	return off.Y*p.Stride + off.X
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = FromColor(c)
}

func (p *Image) At(x, y int) color.Color {
	return p.RGBA64At(x, y)
}

func (p *Image) SetRGBA64(x, y int, c color.RGBA64) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = RGB888ToRGB565(uint8(c.R>>8), uint8(c.G>>8), uint8(c.B>>8))
}

func (p *Image) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.RGBA64{}
	}
	r, g, b := RGB565ToRGB888(p.Pix[p.PixOffset(x, y)])
	return color.RGBA64{
		R: uint16(r) | uint16(r)<<8,
		G: uint16(g) | uint16(g)<<8,
		B: uint16(b) | uint16(b)<<8,
		A: 0xffff,
	}
}

// Fill sets every pixel of r to c.
func (p *Image) Fill(r image.Rectangle, c color.Color) {
	r = r.Intersect(p.Rect)
	rgb := FromColor(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.Pix[p.PixOffset(r.Min.X, y):p.PixOffset(r.Max.X, y)]
		for x := range row {
			row[x] = rgb
		}
	}
}

func (p *Image) Draw(dr image.Rectangle, src image.Image, sp image.Point, op draw.Op) {
	dr = dr.Intersect(p.Rect)
	// Optimize special cases.
	if src, ok := src.(*image.Uniform); ok {
		if src.Opaque() || op == draw.Src {
			p.Fill(dr, src.C)
			return
		}
	}
	// General case.
	draw.Draw(p, dr, src, sp, op)
}

// FromColor converts c to RGB565, ignoring alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB888ToRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func RGB888ToRGB565(r, g, b uint8) Color {
	u16 := uint16(b)>>3 | uint16(g&0xFC)<<3 | uint16(r&0xF8)<<8
	return Color{B0: byte(u16 >> 8), B1: byte(u16)}
}

func RGB565ToRGB888(rgb Color) (r, g, b uint8) {
	c := uint16(rgb.B0)<<8 | uint16(rgb.B1)
	r = uint8(c>>8) & 0xf8
	r |= r >> 5
	g = uint8(c>>3) & 0xfc
	g |= g >> 6
	b = uint8(c << 3)
	b |= b >> 5
	return
}
