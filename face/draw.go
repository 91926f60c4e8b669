package face

import (
	"image"
	"image/color"

	"analogface.dev/canvas"
)

// DrawHands draws the hands for t into ctx, hour first and the
// center dot last, so that later hands cover earlier ones.
func (f *Face) DrawHands(ctx canvas.Context, bounds image.Rectangle, t Time) {
	f.drawing = true
	defer func() { f.drawing = false }()

	a := HandAngles(t)
	f.hour.RotateTo(a.Hour.Turns())
	f.minute.RotateTo(a.Minute.Turns())
	f.second.RotateTo(a.Second.Turns())

	p := &f.palette
	outline := f.mode.Outlined()
	s := drawState{ctx: ctx}

	s.fill(p.Hour)
	if outline {
		ctx.SetStrokeColor(p.Outline)
	}
	ctx.FillPolygon(f.hour.Points())
	if outline {
		ctx.DrawPolygon(f.hour.Points())
	}

	s.fill(p.Minute)
	ctx.FillPolygon(f.minute.Points())
	if outline {
		ctx.DrawPolygon(f.minute.Points())
	}

	// The second hand is thin enough to go without an outline.
	s.fill(p.Second)
	ctx.FillPolygon(f.second.Points())

	s.fill(p.Center)
	c := center(bounds)
	ctx.FillRect(image.Rect(c.X-1, c.Y-1, c.X-1+centerDot, c.Y-1+centerDot))
}

// drawState elides fill color directives that repeat the current
// color.
type drawState struct {
	ctx     canvas.Context
	current color.NRGBA
	set     bool
}

func (s *drawState) fill(c color.NRGBA) {
	if s.set && s.current == c {
		return
	}
	s.current, s.set = c, true
	s.ctx.SetFillColor(c)
}
