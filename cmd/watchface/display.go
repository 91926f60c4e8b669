package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"analogface.dev/app"
	"analogface.dev/config"
	"analogface.dev/face"
	"analogface.dev/fbdev"
	"analogface.dev/image/mono"
	"analogface.dev/lcd"
	"golang.org/x/image/draw"
)

// pngDisplay writes the framebuffer to a PNG file on every flush.
type pngDisplay struct {
	fb   draw.Image
	path string
}

func newPNGDisplay(bounds image.Rectangle, mode face.ColorMode, path string) *pngDisplay {
	var fb draw.Image
	if mode == face.Mono {
		fb = mono.New(bounds)
	} else {
		fb = image.NewRGBA(bounds)
	}
	return &pngDisplay{fb: fb, path: path}
}

func (d *pngDisplay) Framebuffer() draw.Image {
	return d.fb
}

// Dirty replaces the file with the complete frame, so that readers
// never see a partial image.
func (d *pngDisplay) Dirty(r image.Rectangle) error {
	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".watchface-*.png")
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := png.Encode(tmp, d.fb); err != nil {
		tmp.Close()
		return fmt.Errorf("png: %s: %w", d.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}

// openDisplay opens the display named by the configuration and
// returns it with a function that closes it.
func openDisplay(cfg config.Config) (app.Display, func() error, error) {
	switch cfg.Display {
	case config.DisplayPNG:
		mode, err := cfg.Mode()
		if err != nil {
			return nil, nil, err
		}
		d := newPNGDisplay(cfg.Bounds(), mode, cfg.Output)
		return d, func() error { return nil }, nil
	case config.DisplayST7789:
		l, err := lcd.Open()
		if err != nil {
			return nil, nil, err
		}
		return l, func() error { l.Close(); return nil }, nil
	case config.DisplayFBDev:
		d, err := fbdev.Open(cfg.Device)
		if err != nil {
			return nil, nil, err
		}
		return d, d.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown display %q", cfg.Display)
}
