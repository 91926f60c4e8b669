package canvas

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"analogface.dev/image/mono"
	"analogface.dev/image/rgb565"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/draw"
)

var (
	red  = color.NRGBA{R: 0xaa, A: 0xff}
	teal = color.NRGBA{G: 0x55, B: 0x55, A: 0xff}
)

var triangle = []image.Point{
	{87, 84},
	{57, 84},
	{72, 39},
}

func TestFillRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := NewRaster(img)
	r.SetFillColor(red)
	r.FillRect(image.Rect(9, 9, 12, 12))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 9 && x < 12 && y >= 9 && y < 12
			got := img.RGBAAt(x, y)
			if inside && got != (color.RGBA{R: 0xaa, A: 0xff}) {
				t.Errorf("(%d,%d) = %v inside the rectangle", x, y, got)
			}
			if !inside && got != (color.RGBA{}) {
				t.Errorf("(%d,%d) = %v outside the rectangle", x, y, got)
			}
		}
	}
}

// drawCounter is a framebuffer with its own Draw method.
type drawCounter struct {
	*image.RGBA
	calls int
}

func (d *drawCounter) Draw(dr image.Rectangle, src image.Image, sp image.Point, op draw.Op) {
	d.calls++
	draw.Draw(d.RGBA, dr, src, sp, op)
}

func TestFramebufferDraw(t *testing.T) {
	fb := &drawCounter{RGBA: image.NewRGBA(image.Rect(0, 0, 20, 20))}
	r := NewRaster(fb)
	r.SetFillColor(red)
	r.FillRect(image.Rect(2, 2, 5, 5))
	r.DrawBitmap(image.NewUniform(teal), image.Rect(10, 10, 12, 12), draw.Src)
	if fb.calls != 2 {
		t.Errorf("framebuffer Draw called %d times, want 2", fb.calls)
	}
	if got := fb.RGBAAt(3, 3); got != (color.RGBA{R: 0xaa, A: 0xff}) {
		t.Errorf("rectangle pixel %v", got)
	}
}

func TestRGB565(t *testing.T) {
	img := rgb565.New(image.Rect(0, 0, 20, 20))
	r := NewRaster(img)
	r.Clip(image.Rect(0, 0, 10, 20))
	r.SetFillColor(teal)
	r.FillRect(image.Rect(5, 5, 15, 8))

	bitmap := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(bitmap, bitmap.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)
	r.Clip(img.Bounds())
	r.DrawBitmap(bitmap, image.Rect(0, 10, 20, 20), draw.Over)

	want := map[image.Point]rgb565.Color{
		{5, 5}:   rgb565.FromColor(teal),
		{9, 7}:   rgb565.FromColor(teal),
		{10, 7}:  {}, // clipped
		{5, 8}:   {},
		{9, 14}:  rgb565.FromColor(red),
		{10, 15}: rgb565.FromColor(red),
		{8, 14}:  {},
	}
	for p, c := range want {
		if got := img.Pix[img.PixOffset(p.X, p.Y)]; got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 144, 168))
	r := NewRaster(img)
	r.Clip(image.Rect(0, 0, 72, 168))
	r.SetFillColor(teal)
	r.FillPolygon(triangle)
	r.FillRect(img.Bounds())
	if got := img.RGBAAt(100, 10); got != (color.RGBA{}) {
		t.Errorf("drew %v outside the clip", got)
	}
	if got := img.RGBAAt(10, 10); got.G != 0x55 {
		t.Errorf("did not draw inside the clip: %v", got)
	}
}

func TestFillPolygon(t *testing.T) {
	img := mono.New(image.Rect(0, 0, 144, 168))
	r := NewRaster(img)
	r.SetFillColor(color.White)
	r.FillPolygon(triangle)
	tests := []struct {
		p     image.Point
		white bool
	}{
		{image.Pt(72, 70), true},
		{image.Pt(72, 50), true},
		{image.Pt(65, 80), true},
		{image.Pt(72, 30), false},
		{image.Pt(57, 50), false},
		{image.Pt(90, 84), false},
		{image.Pt(72, 90), false},
	}
	for _, test := range tests {
		if got := img.GrayAt(test.p.X, test.p.Y) == mono.White; got != test.white {
			t.Errorf("%v: white %v, want %v", test.p, got, test.white)
		}
	}
}

func TestDrawPolygon(t *testing.T) {
	img := mono.New(image.Rect(0, 0, 144, 168))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	r := NewRaster(img)
	r.SetStrokeColor(color.Black)
	r.DrawPolygon(triangle)
	for _, p := range triangle {
		if img.GrayAt(p.X, p.Y) != mono.Black {
			t.Errorf("vertex %v not stroked", p)
		}
	}
	// The base of the triangle is a horizontal line.
	for x := 57; x <= 87; x++ {
		if img.GrayAt(x, 84) != mono.Black {
			t.Errorf("(%d,84) not stroked", x)
		}
	}
	if img.GrayAt(72, 70) != mono.White {
		t.Error("outline filled the interior")
	}
}

func TestDrawBitmapCentered(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	draw.Draw(src, src.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)
	NewRaster(dst).DrawBitmap(src, dst.Bounds(), draw.Over)
	got := dst.Bounds()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			painted := dst.RGBAAt(x, y).A != 0
			want := x >= 3 && x < 7 && y >= 4 && y < 6
			if painted != want {
				t.Errorf("(%d,%d) painted %v, want %v in %v", x, y, painted, want, got)
			}
		}
	}
}

func TestReplay(t *testing.T) {
	rec := new(Recorder)
	rec.SetFillColor(teal)
	rec.SetStrokeColor(color.Black)
	rec.FillPolygon(triangle)
	rec.DrawPolygon(triangle)
	rec.FillRect(image.Rect(71, 83, 74, 86))

	want := image.NewRGBA(image.Rect(0, 0, 144, 168))
	r := NewRaster(want)
	r.SetFillColor(teal)
	r.SetStrokeColor(color.Black)
	r.FillPolygon(triangle)
	r.DrawPolygon(triangle)
	r.FillRect(image.Rect(71, 83, 74, 86))

	got := image.NewRGBA(want.Bounds())
	Replay(NewRaster(got), rec.Ops)
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("replayed directives rendered differently")
	}
}

func TestTraceRoundTrip(t *testing.T) {
	rec := new(Recorder)
	rec.SetFillColor(color.White)
	rec.SetStrokeColor(color.Black)
	rec.FillPolygon(triangle)
	rec.DrawPolygon(triangle)
	rec.DrawBitmap(image.NewRGBA(image.Rect(0, 0, 1, 1)), image.Rect(0, 0, 144, 168), draw.Over)
	rec.FillRect(image.Rect(71, 83, 74, 86))

	buf := new(bytes.Buffer)
	if err := EncodeTrace(buf, rec.Ops); err != nil {
		t.Fatal(err)
	}
	ops, err := DecodeTrace(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rec.Ops, ops, cmpopts.IgnoreUnexported(Op{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("trace round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTraceInvalid(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := EncodeTrace(buf, []Op{{Kind: 99}}); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeTrace(buf); err == nil {
		t.Error("decoded an invalid directive")
	}
}

func TestWriteText(t *testing.T) {
	ops := []Op{
		{Kind: SetFillColor, Color: teal},
		{Kind: FillPolygon, Points: triangle},
		{Kind: FillRect, Rect: image.Rect(71, 83, 74, 86)},
	}
	buf := new(strings.Builder)
	if err := WriteText(buf, ops); err != nil {
		t.Fatal(err)
	}
	want := "fill-color #005555\nfill-polygon 3 points\nfill-rect (71,83)-(74,86)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
