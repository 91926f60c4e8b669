// Package bresenham rasterizes one pixel wide lines with the
// Bresenham algorithm.
package bresenham

import "image"

// Line steps along a line one pixel at a time.
type Line struct {
	// d is the minor axis error, doubled.
	d int
	// dmajor, dminor is the line vector.
	dmajor, dminor int
	// swap is 0 if the major axis is x, 1 otherwise.
	swap uint8
	// sx, sy are the step directions, 1 or -1.
	sx, sy int
}

// Reset the line with a signed distance and return the
// number of steps.
func (l *Line) Reset(dist image.Point) int {
	l.sx, l.sy = 1, 1
	if dist.X < 0 {
		l.sx = -1
		dist.X = -dist.X
	}
	if dist.Y < 0 {
		l.sy = -1
		dist.Y = -dist.Y
	}
	l.swap = 0
	if dist.Y > dist.X {
		l.swap = 1
		dist.X, dist.Y = dist.Y, dist.X
	}
	l.dmajor, l.dminor = dist.X, dist.Y
	l.d = 2*l.dminor - l.dmajor
	return l.dmajor
}

// Step returns the offset to the next pixel. Each component
// is -1, 0 or 1.
func (l *Line) Step() image.Point {
	var maj, min int = 1, 0
	if l.d > 0 {
		min = 1
	}
	l.d -= 2 * l.dmajor * min
	l.d += 2 * l.dminor
	if l.swap == 1 {
		maj, min = min, maj
	}
	return image.Pt(maj*l.sx, min*l.sy)
}

// Draw calls plot for every pixel of the line from p0 to p1,
// both ends included.
func Draw(p0, p1 image.Point, plot func(p image.Point)) {
	var l Line
	steps := l.Reset(p1.Sub(p0))
	p := p0
	plot(p)
	for range steps {
		p = p.Add(l.Step())
		plot(p)
	}
}

// Polygon draws the closed outline through pts.
func Polygon(pts []image.Point, plot func(p image.Point)) {
	if len(pts) == 0 {
		return
	}
	prev := pts[len(pts)-1]
	for _, p := range pts {
		Draw(prev, p, plot)
		prev = p
	}
}
