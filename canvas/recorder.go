package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/image/draw"
)

// Kind is the type of a recorded directive.
type Kind uint8

const (
	SetFillColor Kind = iota + 1
	SetStrokeColor
	FillRect
	FillPolygon
	DrawPolygon
	DrawBitmap
)

func (k Kind) String() string {
	switch k {
	case SetFillColor:
		return "fill-color"
	case SetStrokeColor:
		return "stroke-color"
	case FillRect:
		return "fill-rect"
	case FillPolygon:
		return "fill-polygon"
	case DrawPolygon:
		return "draw-polygon"
	case DrawBitmap:
		return "draw-bitmap"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Op is a recorded directive. Only the fields relevant to its
// Kind are set.
type Op struct {
	Kind   Kind            `cbor:"1,keyasint"`
	Color  color.NRGBA     `cbor:"2,keyasint,omitempty"`
	Rect   image.Rectangle `cbor:"3,keyasint,omitempty"`
	Points []image.Point   `cbor:"4,keyasint,omitempty"`
	// Over is set for bitmaps composited with alpha.
	Over bool `cbor:"5,keyasint,omitempty"`

	// Bitmaps are not encoded in traces.
	bitmap image.Image
}

func (o Op) String() string {
	switch o.Kind {
	case SetFillColor, SetStrokeColor:
		return fmt.Sprintf("%v #%.2x%.2x%.2x", o.Kind, o.Color.R, o.Color.G, o.Color.B)
	case FillRect:
		return fmt.Sprintf("%v %v", o.Kind, o.Rect)
	case FillPolygon, DrawPolygon:
		return fmt.Sprintf("%v %d points", o.Kind, len(o.Points))
	case DrawBitmap:
		op := "src"
		if o.Over {
			op = "over"
		}
		return fmt.Sprintf("%v %v %s", o.Kind, o.Rect, op)
	default:
		return o.Kind.String()
	}
}

// Recorder is a Context that records the directives it receives.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) add(op Op) {
	r.Ops = append(r.Ops, op)
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.add(Op{Kind: SetFillColor, Color: nrgba(c)})
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.add(Op{Kind: SetStrokeColor, Color: nrgba(c)})
}

func (r *Recorder) FillRect(rect image.Rectangle) {
	r.add(Op{Kind: FillRect, Rect: rect})
}

func (r *Recorder) FillPolygon(pts []image.Point) {
	r.add(Op{Kind: FillPolygon, Points: slices.Clone(pts)})
}

func (r *Recorder) DrawPolygon(pts []image.Point) {
	r.add(Op{Kind: DrawPolygon, Points: slices.Clone(pts)})
}

func (r *Recorder) DrawBitmap(img image.Image, rect image.Rectangle, op draw.Op) {
	r.add(Op{Kind: DrawBitmap, Rect: rect, Over: op == draw.Over, bitmap: img})
}

// Reset discards the recorded directives.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Kinds returns the kinds of the recorded directives in order.
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Replay issues ops to ctx. Bitmap directives decoded from a
// trace carry no image and are skipped.
func Replay(ctx Context, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case SetFillColor:
			ctx.SetFillColor(op.Color)
		case SetStrokeColor:
			ctx.SetStrokeColor(op.Color)
		case FillRect:
			ctx.FillRect(op.Rect)
		case FillPolygon:
			ctx.FillPolygon(op.Points)
		case DrawPolygon:
			ctx.DrawPolygon(op.Points)
		case DrawBitmap:
			if op.bitmap == nil {
				continue
			}
			cop := draw.Src
			if op.Over {
				cop = draw.Over
			}
			ctx.DrawBitmap(op.bitmap, op.Rect, cop)
		}
	}
}

// EncodeTrace writes ops in CBOR form.
func EncodeTrace(w io.Writer, ops []Op) error {
	if err := cbor.NewEncoder(w).Encode(ops); err != nil {
		return fmt.Errorf("canvas: encode trace: %w", err)
	}
	return nil
}

// DecodeTrace reads ops written by EncodeTrace.
func DecodeTrace(r io.Reader) ([]Op, error) {
	var ops []Op
	if err := cbor.NewDecoder(r).Decode(&ops); err != nil {
		return nil, fmt.Errorf("canvas: decode trace: %w", err)
	}
	for _, op := range ops {
		if op.Kind < SetFillColor || op.Kind > DrawBitmap {
			return nil, fmt.Errorf("canvas: decode trace: invalid directive %v", op.Kind)
		}
	}
	return ops, nil
}

// WriteText writes ops one per line in human readable form.
func WriteText(w io.Writer, ops []Op) error {
	var b strings.Builder
	for _, op := range ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
