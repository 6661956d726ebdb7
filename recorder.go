package chartarea

import (
	"image"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PrimitiveKind is the type of a recorded drawing primitive.
type PrimitiveKind int

const (
	LinePrimitive PrimitiveKind = iota
	RectanglePrimitive
	PolygonPrimitive
	EllipsePrimitive
	MarkerPrimitive
	ImagePrimitive
	TextPrimitive
)

func (k PrimitiveKind) String() string {
	return []string{"line", "rectangle", "polygon", "ellipse", "marker", "image", "text"}[k]
}

// Primitive is one recorded drawing call. Coordinates are relative.
type Primitive struct {
	Kind   PrimitiveKind
	Points []vg.Point
	Rect   vg.Rectangle
	Fill   color.Color
	Line   draw.LineStyle
	Marker Marker
	Text   string
}

// Recorder is a Graphics which records all primitives instead of drawing
// them. Text is measured with a fixed-pitch approximation.
type Recorder struct {
	Width, Height vg.Length
	Resolution    float64
	Primitives    []Primitive
}

// NewRecorder returns a recorder for a surface of the given absolute size
// at 72 DPI.
func NewRecorder(width, height vg.Length) *Recorder {
	return &Recorder{Width: width, Height: height, Resolution: 72}
}

// Count returns the number of recorded primitives of kind k.
func (r *Recorder) Count(k PrimitiveKind) int {
	n := 0
	for _, p := range r.Primitives {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded primitives of kind k.
func (r *Recorder) Filter(k PrimitiveKind) []Primitive {
	var out []Primitive
	for _, p := range r.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// Reset drops all recorded primitives.
func (r *Recorder) Reset() { r.Primitives = r.Primitives[:0] }

func (r *Recorder) Size() vg.Point { return vg.Point{X: r.Width, Y: r.Height} }

func (r *Recorder) DPI() float64 {
	if r.Resolution == 0 {
		return 72
	}
	return r.Resolution
}

func (r *Recorder) ToAbsolute(p vg.Point) vg.Point {
	return vg.Point{X: p.X * r.Width / 100, Y: p.Y * r.Height / 100}
}

func (r *Recorder) ToRelative(p vg.Point) vg.Point {
	return vg.Point{X: p.X * 100 / r.Width, Y: p.Y * 100 / r.Height}
}

func (r *Recorder) AbsoluteSize(s vg.Point) vg.Point { return r.ToAbsolute(s) }

func (r *Recorder) RelativeSize(s vg.Point) vg.Point { return r.ToRelative(s) }

func (r *Recorder) StrokeLine(sty draw.LineStyle, pts ...vg.Point) {
	r.Primitives = append(r.Primitives, Primitive{Kind: LinePrimitive,
		Points: append([]vg.Point(nil), pts...), Line: sty})
}

func (r *Recorder) FillRectangle(rect vg.Rectangle, fill color.Color, border draw.LineStyle) {
	r.Primitives = append(r.Primitives, Primitive{Kind: RectanglePrimitive,
		Rect: CanonicRectangle(rect), Fill: fill, Line: border})
}

func (r *Recorder) FillPolygon(pts []vg.Point, fill color.Color, border draw.LineStyle) {
	r.Primitives = append(r.Primitives, Primitive{Kind: PolygonPrimitive,
		Points: append([]vg.Point(nil), pts...), Rect: BoundingBox(pts), Fill: fill, Line: border})
}

func (r *Recorder) FillEllipse(rect vg.Rectangle, fill color.Color, border draw.LineStyle) {
	r.Primitives = append(r.Primitives, Primitive{Kind: EllipsePrimitive,
		Rect: CanonicRectangle(rect), Fill: fill, Line: border})
}

func (r *Recorder) DrawMarker(m Marker, center vg.Point) {
	r.Primitives = append(r.Primitives, Primitive{Kind: MarkerPrimitive,
		Points: []vg.Point{center}, Marker: m, Fill: m.Fill})
}

func (r *Recorder) DrawImage(img image.Image, rect vg.Rectangle) {
	r.Primitives = append(r.Primitives, Primitive{Kind: ImagePrimitive, Rect: CanonicRectangle(rect)})
}

func (r *Recorder) DrawText(sty draw.TextStyle, at vg.Point, text string) {
	r.Primitives = append(r.Primitives, Primitive{Kind: TextPrimitive,
		Points: []vg.Point{at}, Fill: sty.Color, Text: text})
}

// MeasureText assumes glyphs 0.6 font sizes wide and 1.2 font sizes high.
// A zero font size counts as 10.
func (r *Recorder) MeasureText(sty draw.TextStyle, text string) vg.Point {
	size := sty.Font.Size
	if size == 0 {
		size = 10
	}
	return vg.Point{X: 0.6 * size * vg.Length(len([]rune(text))), Y: 1.2 * size}
}
