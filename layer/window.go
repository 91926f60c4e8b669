package layer

import (
	"errors"
	"image"

	"analogface.dev/canvas"
	"golang.org/x/image/draw"
)

// Handlers are the window lifecycle callbacks.
type Handlers struct {
	// Load creates the window's layers.
	Load func(w *Window) error
	// Unload destroys what Load created.
	Unload func(w *Window)
}

// Window owns a root layer covering the display.
type Window struct {
	root     *Layer
	handlers Handlers
	loaded   bool
}

var ErrLoaded = errors.New("layer: window already loaded")

func NewWindow(bounds image.Rectangle) *Window {
	return &Window{
		root: New(bounds, nil),
	}
}

func (w *Window) SetHandlers(h Handlers) {
	w.handlers = h
}

// Root returns the layer that every other layer of the window is
// a descendant of.
func (w *Window) Root() *Layer {
	return w.root
}

func (w *Window) Bounds() image.Rectangle {
	return w.root.bounds
}

func (w *Window) Loaded() bool {
	return w.loaded
}

// Push shows the window, running the Load handler.
func (w *Window) Push() error {
	if w.loaded {
		return ErrLoaded
	}
	if h := w.handlers.Load; h != nil {
		if err := h(w); err != nil {
			return err
		}
	}
	w.loaded = true
	w.root.MarkDirty()
	return nil
}

// Pop hides the window, running the Unload handler. It is a no-op
// for a window that is not loaded.
func (w *Window) Pop() {
	if !w.loaded {
		return
	}
	w.loaded = false
	if h := w.handlers.Unload; h != nil {
		h(w)
	}
}

// Render redraws the dirty parts of the window into dst and
// returns the rectangle that changed.
func (w *Window) Render(dst draw.Image) image.Rectangle {
	if !w.loaded {
		return image.Rectangle{}
	}
	clip := w.root.dirtyRect().Intersect(dst.Bounds())
	if clip.Empty() {
		return image.Rectangle{}
	}
	w.root.draw(canvas.NewRaster(dst), clip)
	return clip
}
