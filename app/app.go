// Package app runs a window on a display, redrawing it on every
// tick until the context is canceled.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"analogface.dev/layer"
	"analogface.dev/tick"
	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

// Display is a screen backed by a framebuffer in memory.
type Display interface {
	// Framebuffer returns the image that windows render into.
	Framebuffer() draw.Image
	// Dirty copies the framebuffer area r to the screen.
	Dirty(r image.Rectangle) error
}

type Options struct {
	// Logger receives frame timings at debug level. A nil Logger
	// discards them.
	Logger *log.Logger
}

// Run renders w to d once, then waits for ticks and re-renders the
// window after delivering each one. Run returns the context error
// after canceling the subscription of ticks, or the first error
// from d.
func Run(ctx context.Context, w *layer.Window, d Display, ticks *tick.Service, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defer ticks.Unsubscribe()
	if err := frame(w, d, logger); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticks.Next():
			ticks.Fire(now)
			if err := frame(w, d, logger); err != nil {
				return err
			}
		}
	}
}

func frame(w *layer.Window, d Display, logger *log.Logger) error {
	start := time.Now()
	r := w.Render(d.Framebuffer())
	if r.Empty() {
		return nil
	}
	rendered := time.Since(start)
	if err := d.Dirty(r); err != nil {
		return fmt.Errorf("app: flush %v: %w", r, err)
	}
	logger.Debug("frame", "rect", r, "render", rendered, "total", time.Since(start))
	return nil
}
