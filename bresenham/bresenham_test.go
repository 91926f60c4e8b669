package bresenham

import (
	"image"
	"testing"
)

func TestBresenham(t *testing.T) {
	tests := []image.Point{
		image.Pt(0, 0),
		image.Pt(0, 1),
		image.Pt(1, 0),
		image.Pt(1, 1),
		image.Pt(1, 100),
		image.Pt(100, 1),
		image.Pt(100, 0),
		image.Pt(1000, 50),
		image.Pt(20, 50),
	}
	dirs := []image.Point{
		image.Pt(1, 1),
		image.Pt(-1, 1),
		image.Pt(1, -1),
		image.Pt(-1, -1),
	}
	l := new(Line)
	for _, dir := range dirs {
		for _, dist := range tests {
			dist = image.Pt(dist.X*dir.X, dist.Y*dir.Y)
			steps := l.Reset(dist)
			p := image.Pt(0, 0)
			for range steps {
				d := l.Step()
				if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
					t.Fatalf("%v: step %v is not to a neighbour", dist, d)
				}
				p = p.Add(d)
			}
			dabs := dist
			if dabs.X < 0 {
				dabs.X = -dabs.X
			}
			if dabs.Y < 0 {
				dabs.Y = -dabs.Y
			}
			if want := max(dabs.X, dabs.Y); steps != want {
				t.Errorf("%v stepped %d times, expected %d", dist, steps, want)
			}
			if p != dist {
				t.Errorf("stepped to %v, expected %v", p, dist)
			}
		}
	}
}

func TestPolygon(t *testing.T) {
	square := []image.Point{
		image.Pt(0, 0),
		image.Pt(3, 0),
		image.Pt(3, 3),
		image.Pt(0, 3),
	}
	plotted := make(map[image.Point]bool)
	Polygon(square, func(p image.Point) {
		plotted[p] = true
	})
	// The border of a 4x4 pixel square.
	if got, want := len(plotted), 12; got != want {
		t.Errorf("plotted %d distinct pixels, expected %d", got, want)
	}
	for p := range plotted {
		if p.X != 0 && p.X != 3 && p.Y != 0 && p.Y != 3 {
			t.Errorf("pixel %v is inside the outline", p)
		}
	}
}

func TestDrawSinglePixel(t *testing.T) {
	n := 0
	Draw(image.Pt(5, 5), image.Pt(5, 5), func(p image.Point) {
		if p != image.Pt(5, 5) {
			t.Errorf("plotted %v", p)
		}
		n++
	})
	if n != 1 {
		t.Errorf("plotted %d pixels, expected 1", n)
	}
}
