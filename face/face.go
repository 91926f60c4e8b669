// Package face implements an analog watchface: a dial bitmap over a
// solid background and hour, minute and second hands redrawn every
// second.
package face

import (
	"fmt"
	"image"
	"time"

	"analogface.dev/assets"
	"analogface.dev/canvas"
	"analogface.dev/layer"
	"analogface.dev/polygon"
	"analogface.dev/tick"
	"golang.org/x/image/draw"
)

// Options configure a Face.
type Options struct {
	Mode ColorMode
	// Palette overrides the default palette of Mode.
	Palette *Palette
	// Bounds is the display rectangle.
	Bounds image.Rectangle
	// Now returns the current local time. It defaults to
	// time.Now.
	Now func() time.Time
}

// Face owns the window, layers and hand paths of the watchface.
type Face struct {
	mode    ColorMode
	palette Palette
	now     func() time.Time

	hour, minute, second *polygon.Path

	window *layer.Window
	solid  *layer.Layer
	dial   *layer.Bitmap
	hands  *layer.Layer

	background image.Image
	release    func()

	drawing bool
}

// New creates the face, loads its window and places the hands at
// the center of the display.
func New(opts Options) (*Face, error) {
	f := &Face{
		mode:    opts.Mode,
		palette: DefaultPalette(opts.Mode),
		now:     opts.Now,
		hour:    polygon.New(HourHand),
		minute:  polygon.New(MinuteHand),
		second:  polygon.New(SecondHand),
		window:  layer.NewWindow(opts.Bounds),
	}
	if opts.Palette != nil {
		f.palette = *opts.Palette
	}
	if f.now == nil {
		f.now = time.Now
	}
	f.window.SetHandlers(layer.Handlers{
		Load:   f.load,
		Unload: f.unload,
	})
	if err := f.window.Push(); err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	c := center(opts.Bounds)
	f.hour.MoveTo(c)
	f.minute.MoveTo(c)
	f.second.MoveTo(c)
	return f, nil
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

func (f *Face) load(w *layer.Window) error {
	bounds := w.Bounds()
	root := w.Root()

	f.solid = layer.New(bounds, f.drawBackground)
	root.AddChild(f.solid)

	img, release, err := assets.Load(assets.Background)
	if err != nil {
		f.solid.Destroy()
		f.solid = nil
		return err
	}
	f.background, f.release = img, release
	f.dial = layer.NewBitmap(bounds)
	f.dial.SetBitmap(img)
	if f.mode == Color {
		f.dial.SetCompositing(draw.Over)
	}
	root.AddChild(&f.dial.Layer)

	f.hands = layer.New(bounds, f.drawHandsLayer)
	root.AddChild(f.hands)
	return nil
}

func (f *Face) unload(w *layer.Window) {
	f.solid.Destroy()
	f.dial.Destroy()
	f.release()
	f.background, f.release = nil, nil
	f.hands.Destroy()
	f.solid, f.dial, f.hands = nil, nil, nil
}

// Window returns the face's window.
func (f *Face) Window() *layer.Window {
	return f.window
}

func (f *Face) Mode() ColorMode {
	return f.mode
}

func (f *Face) Palette() Palette {
	return f.palette
}

// Tick is the tick handler: it schedules the hands for redrawing.
func (f *Face) Tick(now time.Time, changed tick.Units) {
	if f.hands != nil {
		f.hands.MarkDirty()
	}
}

// Drawing reports whether a redraw is in progress.
func (f *Face) Drawing() bool {
	return f.drawing
}

// Close unloads the window and drops the hand paths.
func (f *Face) Close() {
	f.window.Pop()
	f.hour, f.minute, f.second = nil, nil, nil
}

func (f *Face) drawBackground(ctx canvas.Context, bounds image.Rectangle) {
	ctx.SetFillColor(f.palette.Background)
	ctx.FillRect(bounds)
}

func (f *Face) drawHandsLayer(ctx canvas.Context, bounds image.Rectangle) {
	f.DrawHands(ctx, bounds, TimeOf(f.now()))
}
