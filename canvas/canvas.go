// Package canvas implements drawing contexts: the set of fill and
// outline directives a layer issues during one redraw pass.
package canvas

import (
	"image"
	"image/color"

	"analogface.dev/bresenham"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Context receives drawing directives. Coordinates are device
// pixels with the origin at the top left of the surface.
type Context interface {
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	// FillRect fills r with the fill color.
	FillRect(r image.Rectangle)
	// FillPolygon fills the closed polygon through pts with the
	// fill color.
	FillPolygon(pts []image.Point)
	// DrawPolygon draws the one pixel outline of the closed
	// polygon through pts with the stroke color.
	DrawPolygon(pts []image.Point)
	// DrawBitmap draws img centered in r.
	DrawBitmap(img image.Image, r image.Rectangle, op draw.Op)
}

// Raster is a Context that draws into an image.
type Raster struct {
	dst    draw.Image
	clip   image.Rectangle
	fill   color.Color
	stroke color.Color

	filler *rasterx.Filler
}

// NewRaster returns a context drawing into dst. The fill and
// stroke colors start out black.
func NewRaster(dst draw.Image) *Raster {
	return &Raster{
		dst:    dst,
		clip:   dst.Bounds(),
		fill:   color.Black,
		stroke: color.Black,
	}
}

// Clip restricts drawing to r, intersected with the destination
// bounds.
func (r *Raster) Clip(clip image.Rectangle) {
	r.clip = clip.Intersect(r.dst.Bounds())
	r.filler = nil
}

func (r *Raster) SetFillColor(c color.Color) {
	r.fill = c
}

func (r *Raster) SetStrokeColor(c color.Color) {
	r.stroke = c
}

func (r *Raster) FillRect(rect image.Rectangle) {
	rect = rect.Intersect(r.clip)
	if rect.Empty() {
		return
	}
	r.draw(rect, image.NewUniform(r.fill), image.Point{}, draw.Src)
}

func (r *Raster) FillPolygon(pts []image.Point) {
	if len(pts) < 3 {
		return
	}
	f := r.rasterizer()
	f.Clear()
	f.SetColor(r.fill)
	// Vertices name pixels; sample at their centers.
	off := r.dst.Bounds().Min
	for i, p := range pts {
		fp := rasterx.ToFixedP(float64(p.X-off.X)+.5, float64(p.Y-off.Y)+.5)
		if i == 0 {
			f.Start(fp)
		} else {
			f.Line(fp)
		}
	}
	f.Stop(true)
	f.Draw()
}

func (r *Raster) rasterizer() *rasterx.Filler {
	if r.filler == nil {
		b := r.dst.Bounds()
		dst := &clipImage{Image: r.dst, clip: r.clip}
		scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
		r.filler = rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	}
	return r.filler
}

func (r *Raster) DrawPolygon(pts []image.Point) {
	bresenham.Polygon(pts, func(p image.Point) {
		if p.In(r.clip) {
			r.dst.Set(p.X, p.Y, r.stroke)
		}
	})
}

func (r *Raster) DrawBitmap(img image.Image, rect image.Rectangle, op draw.Op) {
	sz := img.Bounds().Size()
	// Center the bitmap in rect.
	origin := rect.Min.Add(rect.Size().Sub(sz).Div(2))
	dr := image.Rectangle{Min: origin, Max: origin.Add(sz)}.Intersect(rect)
	sp := img.Bounds().Min.Add(dr.Min.Sub(origin))
	dr2 := dr.Intersect(r.clip)
	if dr2.Empty() {
		return
	}
	sp = sp.Add(dr2.Min.Sub(dr.Min))
	r.draw(dr2, img, sp, op)
}

// drawer is implemented by framebuffers with their own fast paths.
type drawer interface {
	Draw(dr image.Rectangle, src image.Image, sp image.Point, op draw.Op)
}

func (r *Raster) draw(dr image.Rectangle, src image.Image, sp image.Point, op draw.Op) {
	if d, ok := r.dst.(drawer); ok {
		d.Draw(dr, src, sp, op)
		return
	}
	draw.Draw(r.dst, dr, src, sp, op)
}

// clipImage discards writes outside clip.
type clipImage struct {
	draw.Image
	clip image.Rectangle
}

func (c *clipImage) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.clip) {
		c.Image.Set(x, y, col)
	}
}
