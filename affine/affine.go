// package affine implements the 2D transforms used to place
// watch hands, on top of the golang.org/x/image/math/f32 types.
package affine

import (
	"image"
	"math"

	"golang.org/x/image/math/f32"
)

func mul(A, B f32.Aff3) (r f32.Aff3) {
	r[0] = A[0]*B[0] + A[1]*B[3]
	r[1] = A[0]*B[1] + A[1]*B[4]
	r[2] = A[0]*B[2] + A[1]*B[5] + A[2]
	r[3] = A[3]*B[0] + A[4]*B[3]
	r[4] = A[3]*B[1] + A[4]*B[4]
	r[5] = A[3]*B[2] + A[4]*B[5] + A[5]
	return r
}

// Mul composes the transforms so that the last one is
// applied first.
func Mul(M ...f32.Aff3) f32.Aff3 {
	r := M[0]
	for i := 1; i < len(M); i++ {
		r = mul(r, M[i])
	}
	return r
}

func Offsetting(p f32.Vec2) f32.Aff3 {
	return f32.Aff3{
		1, 0, p[0],
		0, 1, p[1],
	}
}

// Rotating returns a rotation by radians. With the y axis
// pointing down, positive angles turn clockwise on screen.
func Rotating(radians float32) f32.Aff3 {
	sin, cos := math.Sincos(float64(radians))
	s, c := float32(sin), float32(cos)
	return f32.Aff3{
		c, -s, 0,
		s, c, 0,
	}
}

func Transform(m f32.Aff3, p f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		p[0]*m[0] + p[1]*m[1] + m[2],
		p[0]*m[3] + p[1]*m[4] + m[5],
	}
}

func Pointf(p image.Point) f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

// Round returns the pixel nearest to p.
func Round(p f32.Vec2) image.Point {
	return image.Pt(int(math.Round(float64(p[0]))), int(math.Round(float64(p[1]))))
}
