package affine

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func eq(p1, p2 f32.Vec2) bool {
	tol := 1e-5
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	return math.Abs(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestMulOrder(t *testing.T) {
	// The rotation applies first, then the offset.
	m := Mul(Offsetting(f32.Vec2{72, 84}), Rotating(math.Pi/2))
	got := Transform(m, f32.Vec2{0, -45})
	if want := (f32.Vec2{117, 84}); !eq(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotatingClockwise(t *testing.T) {
	// A point at 12 o'clock ends up at 3 o'clock after a quarter turn.
	up := f32.Vec2{0, -45}
	got := Transform(Rotating(math.Pi/2), up)
	if want := (f32.Vec2{45, 0}); !eq(got, want) {
		t.Errorf("quarter turn of %v: got %v, want %v", up, got, want)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   f32.Vec2
		want image.Point
	}{
		{f32.Vec2{0.4, -0.4}, image.Pt(0, 0)},
		{f32.Vec2{1.5, -1.5}, image.Pt(2, -2)},
		{f32.Vec2{71.9, 84.2}, image.Pt(72, 84)},
	}
	for _, test := range tests {
		if got := Round(test.in); got != test.want {
			t.Errorf("Round(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}
