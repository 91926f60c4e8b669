// Package polygon implements closed paths that are placed once and
// rotated about their origin, the shape model of watch hands.
package polygon

import (
	"image"
	"math"

	"analogface.dev/affine"
)

// Path is a polygon defined in a local coordinate space. Rotation
// is applied about the local origin before the offset.
type Path struct {
	points []image.Point
	offset image.Point
	// turns is the rotation as a fraction of a full turn.
	turns float64

	// transformed caches the placed points.
	transformed []image.Point
	valid       bool
}

// New returns a path with a copy of points.
func New(points []image.Point) *Path {
	return &Path{
		points:      append([]image.Point(nil), points...),
		transformed: make([]image.Point, len(points)),
	}
}

// MoveTo sets the translation of the path.
func (p *Path) MoveTo(off image.Point) {
	if p.offset != off {
		p.offset = off
		p.valid = false
	}
}

// RotateTo sets the absolute rotation in fractions of a full
// clockwise turn.
func (p *Path) RotateTo(turns float64) {
	if p.turns != turns {
		p.turns = turns
		p.valid = false
	}
}

// Points returns the rotated and translated vertices. The
// returned slice is owned by the path and valid until the next
// call to MoveTo or RotateTo.
func (p *Path) Points() []image.Point {
	if p.valid {
		return p.transformed
	}
	m := affine.Mul(
		affine.Offsetting(affine.Pointf(p.offset)),
		affine.Rotating(float32(2*math.Pi*p.turns)),
	)
	for i, pt := range p.points {
		p.transformed[i] = affine.Round(affine.Transform(m, affine.Pointf(pt)))
	}
	p.valid = true
	return p.transformed
}

// Bounds returns the smallest rectangle containing every pixel
// touched by the placed path.
func (p *Path) Bounds() image.Rectangle {
	var r image.Rectangle
	for i, pt := range p.Points() {
		px := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
		if i == 0 {
			r = px
			continue
		}
		r = r.Union(px)
	}
	return r
}
