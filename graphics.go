package chartarea

import (
	"image"
	"image/color"
	"math"

	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Graphics is the drawing surface renderers emit primitives to. All
// coordinates passed to the drawing methods are relative: percent of the
// surface with the origin in the lower left corner. Sizes of markers and
// text are absolute (vg.Length).
type Graphics interface {
	// Size returns the absolute size of the surface.
	Size() vg.Point

	// DPI returns the resolution of the surface in dots per inch.
	DPI() float64

	ToAbsolute(p vg.Point) vg.Point
	ToRelative(p vg.Point) vg.Point
	AbsoluteSize(s vg.Point) vg.Point
	RelativeSize(s vg.Point) vg.Point

	StrokeLine(sty draw.LineStyle, pts ...vg.Point)
	FillRectangle(r vg.Rectangle, fill color.Color, border draw.LineStyle)
	FillPolygon(pts []vg.Point, fill color.Color, border draw.LineStyle)
	FillEllipse(r vg.Rectangle, fill color.Color, border draw.LineStyle)
	DrawMarker(m Marker, center vg.Point)
	DrawImage(img image.Image, r vg.Rectangle)
	DrawText(sty draw.TextStyle, at vg.Point, text string)

	// MeasureText returns the absolute size of text.
	MeasureText(sty draw.TextStyle, text string) vg.Point
}

// Marker describes a marker symbol. Size is the absolute diameter.
type Marker struct {
	Style  data.MarkerStyle
	Size   vg.Length
	Fill   color.Color
	Border draw.LineStyle
}

// MarkerPolygon returns the outline of marker style m centered at the
// absolute point c with diameter size. Circles are approximated.
func MarkerPolygon(m data.MarkerStyle, c vg.Point, size vg.Length) []vg.Point {
	r := size / 2
	switch m {
	case data.MarkerSquare:
		return []vg.Point{{X: c.X - r, Y: c.Y - r}, {X: c.X + r, Y: c.Y - r},
			{X: c.X + r, Y: c.Y + r}, {X: c.X - r, Y: c.Y + r}}
	case data.MarkerDiamond:
		return []vg.Point{{X: c.X, Y: c.Y - r}, {X: c.X + r, Y: c.Y},
			{X: c.X, Y: c.Y + r}, {X: c.X - r, Y: c.Y}}
	case data.MarkerTriangle:
		return []vg.Point{{X: c.X - r, Y: c.Y - r}, {X: c.X + r, Y: c.Y - r},
			{X: c.X, Y: c.Y + r}}
	case data.MarkerCross:
		t := r / 3
		return []vg.Point{
			{X: c.X - t, Y: c.Y + r}, {X: c.X + t, Y: c.Y + r}, {X: c.X + t, Y: c.Y + t},
			{X: c.X + r, Y: c.Y + t}, {X: c.X + r, Y: c.Y - t}, {X: c.X + t, Y: c.Y - t},
			{X: c.X + t, Y: c.Y - r}, {X: c.X - t, Y: c.Y - r}, {X: c.X - t, Y: c.Y - t},
			{X: c.X - r, Y: c.Y - t}, {X: c.X - r, Y: c.Y + t}, {X: c.X - t, Y: c.Y + t},
		}
	case data.MarkerStar4:
		return star(c, r, 4)
	case data.MarkerStar5:
		return star(c, r, 5)
	case data.MarkerStar6:
		return star(c, r, 6)
	case data.MarkerStar10:
		return star(c, r, 10)
	case data.MarkerCircle:
		return EllipsePolygon(vg.Rectangle{Min: vg.Point{X: c.X - r, Y: c.Y - r},
			Max: vg.Point{X: c.X + r, Y: c.Y + r}}, 36)
	}
	return nil
}

func star(c vg.Point, r vg.Length, spikes int) []vg.Point {
	inner := r * 0.4
	pts := make([]vg.Point, 0, 2*spikes)
	for i := 0; i < 2*spikes; i++ {
		rad := r
		if i%2 == 1 {
			rad = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/float64(spikes)
		pts = append(pts, vg.Point{
			X: c.X + rad*vg.Length(math.Cos(a)),
			Y: c.Y + rad*vg.Length(math.Sin(a)),
		})
	}
	return pts
}

// EllipsePolygon approximates the ellipse inscribed into r by n points.
func EllipsePolygon(r vg.Rectangle, n int) []vg.Point {
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	rx, ry := (r.Max.X-r.Min.X)/2, (r.Max.Y-r.Min.Y)/2
	pts := make([]vg.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vg.Point{X: cx + rx*vg.Length(math.Cos(a)), Y: cy + ry*vg.Length(math.Sin(a))}
	}
	return pts
}

// RectanglePoints returns the corners of r counterclockwise.
func RectanglePoints(r vg.Rectangle) []vg.Point {
	return []vg.Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}}
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// BoundingBox returns the smallest rectangle containing pts.
func BoundingBox(pts []vg.Point) vg.Rectangle {
	if len(pts) == 0 {
		return vg.Rectangle{}
	}
	r := vg.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X, r.Max.X = minLength(r.Min.X, p.X), maxLength(r.Max.X, p.X)
		r.Min.Y, r.Max.Y = minLength(r.Min.Y, p.Y), maxLength(r.Max.Y, p.Y)
	}
	return r
}

// Overlaps reports whether the canonical rectangles a and b intersect.
func Overlaps(a, b vg.Rectangle) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// Contains reports whether the canonical rectangle outer contains inner.
func Contains(outer, inner vg.Rectangle) bool {
	return inner.Min.X >= outer.Min.X && inner.Max.X <= outer.Max.X &&
		inner.Min.Y >= outer.Min.Y && inner.Max.Y <= outer.Max.Y
}

func minLength(a, b vg.Length) vg.Length {
	if a < b {
		return a
	}
	return b
}

func maxLength(a, b vg.Length) vg.Length {
	if a > b {
		return a
	}
	return b
}
