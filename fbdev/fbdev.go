// Package fbdev implements a display on a Linux framebuffer device.
package fbdev

import (
	"errors"
	"fmt"
	"image"

	"analogface.dev/image/rgb565"
	"golang.org/x/image/draw"
)

// Format is the pixel layout of the device memory.
type Format int

const (
	// RGB565 is 16 bits per pixel, little endian.
	RGB565 Format = iota
	// XRGB8888 is 32 bits per pixel stored as B, G, R, X.
	XRGB8888
)

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case XRGB8888:
		return "XRGB8888"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (f Format) bytesPerPixel() int {
	if f == RGB565 {
		return 2
	}
	return 4
}

var ErrUnsupported = errors.New("fbdev: unsupported framebuffer")

// Display renders into a shadow image and copies dirty areas to the
// device memory.
type Display struct {
	fb     *image.RGBA
	mem    []byte
	stride int
	format Format
	close  func() error
}

func newDisplay(mem []byte, size image.Point, stride int, format Format) (*Display, error) {
	if stride < size.X*format.bytesPerPixel() || len(mem) < stride*size.Y {
		return nil, fmt.Errorf("%w: %dx%d with stride %d in %d bytes", ErrUnsupported, size.X, size.Y, stride, len(mem))
	}
	return &Display{
		fb:     image.NewRGBA(image.Rectangle{Max: size}),
		mem:    mem,
		stride: stride,
		format: format,
	}, nil
}

func (d *Display) Framebuffer() draw.Image {
	return d.fb
}

func (d *Display) Format() Format {
	return d.format
}

// Dirty converts the area r of the framebuffer to the device format.
func (d *Display) Dirty(r image.Rectangle) error {
	r = r.Intersect(d.fb.Rect)
	bpp := d.format.bytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		src := d.fb.Pix[d.fb.PixOffset(r.Min.X, y):]
		dst := d.mem[y*d.stride+r.Min.X*bpp:]
		for x := 0; x < r.Dx(); x++ {
			p := src[x*4 : x*4+4]
			switch d.format {
			case RGB565:
				c := rgb565.RGB888ToRGB565(p[0], p[1], p[2])
				dst[x*2], dst[x*2+1] = c.B1, c.B0
			case XRGB8888:
				q := dst[x*4 : x*4+4]
				q[0], q[1], q[2], q[3] = p[2], p[1], p[0], 0xff
			}
		}
	}
	return nil
}

// Close releases the device.
func (d *Display) Close() error {
	if d.close == nil {
		return nil
	}
	err := d.close()
	d.close = nil
	d.mem = nil
	return err
}
