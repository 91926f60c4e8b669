// Package golden compares rendered images and saves them for
// inspection when they differ.
package golden

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Dump writes img as a PNG named name in dir, creating dir. It is
// a no-op for an empty dir.
func Dump(dir, name string, img image.Image) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o640)
}

// Equal reports whether a and b have the same bounds and pixels.
func Equal(a, b image.Image) bool {
	return a.Bounds() == b.Bounds() && Mismatches(a, b) == 0
}

// Mismatches counts the pixels of a that differ from the pixel at
// the same position in b, after conversion to RGBA.
func Mismatches(a, b image.Image) int {
	ra, rb := toRGBA(a), toRGBA(b)
	n := 0
	r := a.Bounds().Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i, j := ra.PixOffset(x, y), rb.PixOffset(x, y)
			if !bytes.Equal(ra.Pix[i:i+4], rb.Pix[j:j+4]) {
				n++
			}
		}
	}
	return n
}

// toRGBA returns img, converted to RGBA unless it already is.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
