// Package layer implements a window of stacked drawing layers that
// are redrawn when marked dirty.
package layer

import (
	"image"
	"slices"

	"analogface.dev/canvas"
	"golang.org/x/image/draw"
)

// UpdateFunc draws a layer. bounds is the layer's rectangle in
// window coordinates.
type UpdateFunc func(ctx canvas.Context, bounds image.Rectangle)

// Layer is a node in a window's layer tree. Children draw on top
// of their parent, later children on top of earlier ones.
type Layer struct {
	bounds   image.Rectangle
	update   UpdateFunc
	parent   *Layer
	children []*Layer
	hidden   bool
	dirty    bool

	// damage is the area uncovered by removed children.
	damage image.Rectangle
}

// New returns a dirty layer covering bounds. update may be nil.
func New(bounds image.Rectangle, update UpdateFunc) *Layer {
	return &Layer{
		bounds: bounds,
		update: update,
		dirty:  true,
	}
}

func (l *Layer) Bounds() image.Rectangle {
	return l.bounds
}

func (l *Layer) Children() []*Layer {
	return l.children
}

// MarkDirty schedules the layer for redrawing.
func (l *Layer) MarkDirty() {
	l.dirty = true
}

func (l *Layer) Dirty() bool {
	return l.dirty
}

func (l *Layer) SetHidden(hidden bool) {
	if l.hidden != hidden {
		l.hidden = hidden
		l.dirty = true
	}
}

// AddChild adds c on top of the existing children, removing it
// from its previous parent.
func (l *Layer) AddChild(c *Layer) {
	c.RemoveFromParent()
	c.parent = l
	c.dirty = true
	l.children = append(l.children, c)
}

// RemoveFromParent detaches l and marks the area it covered for
// redrawing.
func (l *Layer) RemoveFromParent() {
	p := l.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, l); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	root := p
	for root.parent != nil {
		root = root.parent
	}
	root.damage = root.damage.Union(l.bounds)
	l.parent = nil
}

// Destroy detaches the layer and its children. The layer must not
// be used afterwards.
func (l *Layer) Destroy() {
	l.RemoveFromParent()
	for _, c := range l.children {
		c.parent = nil
	}
	l.children = nil
	l.update = nil
}

// dirtyRect returns the union of the areas to redraw in the tree
// rooted at l.
func (l *Layer) dirtyRect() image.Rectangle {
	r := l.damage
	if l.dirty {
		r = r.Union(l.bounds)
	}
	for _, c := range l.children {
		r = r.Union(c.dirtyRect())
	}
	return r
}

// draw redraws the parts of the tree within clip, back to front.
func (l *Layer) draw(r *canvas.Raster, clip image.Rectangle) {
	if l.hidden {
		l.clean()
		return
	}
	l.dirty = false
	l.damage = image.Rectangle{}
	if l.update != nil && l.bounds.Overlaps(clip) {
		r.Clip(clip.Intersect(l.bounds))
		l.update(r, l.bounds)
	}
	for _, c := range l.children {
		c.draw(r, clip)
	}
}

func (l *Layer) clean() {
	l.dirty = false
	l.damage = image.Rectangle{}
	for _, c := range l.children {
		c.clean()
	}
}

// Bitmap is a layer that draws an image centered in its bounds.
type Bitmap struct {
	Layer
	img image.Image
	op  draw.Op
}

// NewBitmap returns a bitmap layer without an image. The image is
// composited with draw.Src until SetCompositing is called.
func NewBitmap(bounds image.Rectangle) *Bitmap {
	b := &Bitmap{op: draw.Src}
	b.Layer = *New(bounds, b.drawBitmap)
	return b
}

func (b *Bitmap) drawBitmap(ctx canvas.Context, bounds image.Rectangle) {
	if b.img != nil {
		ctx.DrawBitmap(b.img, bounds, b.op)
	}
}

// SetBitmap sets the image to draw. The layer does not own img.
func (b *Bitmap) SetBitmap(img image.Image) {
	b.img = img
	b.MarkDirty()
}

// SetCompositing selects how the image is combined with the layers
// below: draw.Src replaces them, draw.Over blends by alpha.
func (b *Bitmap) SetCompositing(op draw.Op) {
	b.op = op
	b.MarkDirty()
}

// Destroy detaches the layer and forgets its image.
func (b *Bitmap) Destroy() {
	b.Layer.Destroy()
	b.img = nil
}
