package chartarea

import (
	"image"
	"image/color"

	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CanvasGraphics implements Graphics on top of a gonum/plot draw.Canvas.
type CanvasGraphics struct {
	draw.Canvas
}

// NewCanvasGraphics returns a Graphics drawing into c.
func NewCanvasGraphics(c draw.Canvas) *CanvasGraphics {
	return &CanvasGraphics{Canvas: c}
}

func (cg *CanvasGraphics) Size() vg.Point { return cg.Canvas.Size() }

// DPI returns the resolution of the underlying canvas if it reports one
// and 72 otherwise.
func (cg *CanvasGraphics) DPI() float64 {
	if d, ok := cg.Canvas.Canvas.(interface{ DPI() float64 }); ok {
		return d.DPI()
	}
	return 72
}

func (cg *CanvasGraphics) ToAbsolute(p vg.Point) vg.Point {
	s := cg.Size()
	return vg.Point{X: cg.Min.X + p.X*s.X/100, Y: cg.Min.Y + p.Y*s.Y/100}
}

func (cg *CanvasGraphics) ToRelative(p vg.Point) vg.Point {
	s := cg.Size()
	return vg.Point{X: (p.X - cg.Min.X) * 100 / s.X, Y: (p.Y - cg.Min.Y) * 100 / s.Y}
}

func (cg *CanvasGraphics) AbsoluteSize(r vg.Point) vg.Point {
	s := cg.Size()
	return vg.Point{X: r.X * s.X / 100, Y: r.Y * s.Y / 100}
}

func (cg *CanvasGraphics) RelativeSize(a vg.Point) vg.Point {
	s := cg.Size()
	return vg.Point{X: a.X * 100 / s.X, Y: a.Y * 100 / s.Y}
}

func (cg *CanvasGraphics) abs(pts []vg.Point) []vg.Point {
	out := make([]vg.Point, len(pts))
	for i, p := range pts {
		out[i] = cg.ToAbsolute(p)
	}
	return out
}

func (cg *CanvasGraphics) StrokeLine(sty draw.LineStyle, pts ...vg.Point) {
	if sty.Color == nil || sty.Width <= 0 || len(pts) < 2 {
		return
	}
	cg.StrokeLines(sty, cg.ClipLinesXY(cg.abs(pts))...)
}

func (cg *CanvasGraphics) FillRectangle(r vg.Rectangle, fill color.Color, border draw.LineStyle) {
	cg.fillAbs(cg.abs(RectanglePoints(CanonicRectangle(r))), fill, border)
}

func (cg *CanvasGraphics) FillPolygon(pts []vg.Point, fill color.Color, border draw.LineStyle) {
	cg.fillAbs(cg.abs(pts), fill, border)
}

func (cg *CanvasGraphics) FillEllipse(r vg.Rectangle, fill color.Color, border draw.LineStyle) {
	a := vg.Rectangle{Min: cg.ToAbsolute(r.Min), Max: cg.ToAbsolute(r.Max)}
	cg.fillAbs(EllipsePolygon(CanonicRectangle(a), 72), fill, border)
}

func (cg *CanvasGraphics) fillAbs(pts []vg.Point, fill color.Color, border draw.LineStyle) {
	if len(pts) < 3 {
		return
	}
	if fill != nil {
		cg.Canvas.FillPolygon(fill, cg.ClipPolygonXY(pts))
	}
	if border.Color != nil && border.Width > 0 {
		closed := append(pts[:len(pts):len(pts)], pts[0])
		cg.StrokeLines(border, closed)
	}
}

// DrawMarker draws circles as glyphs and all other shapes as polygons.
func (cg *CanvasGraphics) DrawMarker(m Marker, center vg.Point) {
	c := cg.ToAbsolute(center)
	if m.Style == data.MarkerCircle {
		if m.Fill != nil {
			cg.DrawGlyph(draw.GlyphStyle{Color: m.Fill, Radius: m.Size / 2, Shape: draw.CircleGlyph{}}, c)
		}
		if m.Border.Color != nil && m.Border.Width > 0 {
			cg.DrawGlyph(draw.GlyphStyle{Color: m.Border.Color, Radius: m.Size / 2, Shape: draw.RingGlyph{}}, c)
		}
		return
	}
	cg.fillAbs(MarkerPolygon(m.Style, c, m.Size), m.Fill, m.Border)
}

func (cg *CanvasGraphics) DrawImage(img image.Image, r vg.Rectangle) {
	a := vg.Rectangle{Min: cg.ToAbsolute(r.Min), Max: cg.ToAbsolute(r.Max)}
	cg.Canvas.DrawImage(CanonicRectangle(a), img)
}

func (cg *CanvasGraphics) DrawText(sty draw.TextStyle, at vg.Point, text string) {
	cg.FillText(sty, cg.ToAbsolute(at), text)
}

func (cg *CanvasGraphics) MeasureText(sty draw.TextStyle, text string) vg.Point {
	return vg.Point{X: sty.Width(text), Y: sty.Height(text)}
}
