package fbdev

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDirty(t *testing.T) {
	tests := []struct {
		format Format
		stride int
		want   []byte
	}{
		{RGB565, 8, []byte{
			0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0x00, 0xf8, 0xe0, 0x07, 0, 0,
		}},
		{XRGB8888, 12, []byte{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0xff, 0xff, 0, 0xff, 0, 0xff,
		}},
	}
	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			mem := make([]byte, len(test.want))
			d, err := newDisplay(mem, image.Pt(3, 2), test.stride, test.format)
			if err != nil {
				t.Fatal(err)
			}
			fb := d.Framebuffer()
			fb.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
			fb.Set(2, 1, color.RGBA{G: 0xff, A: 0xff})
			// Pixels outside the dirty area stay in the shadow buffer.
			fb.Set(0, 0, color.RGBA{B: 0xff, A: 0xff})
			if err := d.Dirty(image.Rect(1, 1, 5, 5)); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, mem); diff != "" {
				t.Errorf("device memory (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewDisplayTooSmall(t *testing.T) {
	_, err := newDisplay(make([]byte, 10), image.Pt(4, 4), 8, RGB565)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want %v", err, ErrUnsupported)
	}
	_, err = newDisplay(make([]byte, 64), image.Pt(4, 4), 4, XRGB8888)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("short stride: got %v, want %v", err, ErrUnsupported)
	}
}

func TestCloseWithoutDevice(t *testing.T) {
	d, err := newDisplay(make([]byte, 8), image.Pt(2, 2), 4, RGB565)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Error(err)
	}
}
