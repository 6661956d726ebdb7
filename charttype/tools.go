package charttype

import (
	"image/color"
	"math"

	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// seriesOf returns the visible series of area drawn with the chart type
// name in collection order. A non-nil filter selects only itself.
func seriesOf(common *chartarea.Common, area *chartarea.Area, name string, filter *data.Series) []*data.Series {
	var r []*data.Series
	for _, s := range common.AreaSeries(area) {
		if !s.IsChartType(name) {
			continue
		}
		if filter != nil && s != filter {
			continue
		}
		r = append(r, s)
	}
	return r
}

// axisSeries returns the visible series of area whose chart type uses
// axes. These share the Z slots of a 3D area.
func axisSeries(common *chartarea.Common, area *chartarea.Area) []*data.Series {
	var r []*data.Series
	for _, s := range common.AreaSeries(area) {
		ct, err := common.TypeOf(s)
		if err == nil && !ct.Capabilities().RequireAxes {
			continue
		}
		r = append(r, s)
	}
	return r
}

// checkArity returns an error if point i of s has less Y values than
// chart type ct needs.
func checkArity(s *data.Series, i int, ct chartarea.ChartType) error {
	n := ct.Capabilities().YValuesPerPoint
	if got := len(s.Points[i].YValues); got < n {
		return chartarea.ErrInsufficientYValues.
			WithValue("series", s.Name).
			WithValue("point", i).
			WithMessagef("point %d of series %q has %d Y values, chart type %s needs %d",
				i, s.Name, got, s.ChartType, n)
	}
	return nil
}

// visible reports whether a point at x with the Y extent ys is shown:
// x must lie in the view of h and the Y extent must touch the view of v.
// Comparisons are done in the space of ToLogValue.
func visible(h, v *chartarea.Axis, x float64, ys ...float64) bool {
	if !h.InLogView(h.ToLogValue(x)) {
		return false
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		ly := v.ToLogValue(y)
		if math.IsNaN(ly) {
			continue
		}
		lo, hi = math.Min(lo, ly), math.Max(hi, ly)
	}
	if math.IsInf(lo, 1) {
		return false
	}
	view := v.LogView()
	return hi >= view.Min && lo <= view.Max
}

// styleOf returns the style of point p of s with unset fields taken from
// the chart style.
func styleOf(common *chartarea.Common, s *data.Series, p *data.Point) data.Style {
	st := s.Style
	if p != nil {
		st = st.Merge(p.Style)
	}
	if st.Color == nil {
		st.Color = common.Style.SeriesColor(common.SeriesIndex(s))
	}
	if st.MarkerSize == 0 {
		st.MarkerSize = common.Style.MarkerSize
	}
	if st.ShadowColor == nil {
		st.ShadowColor = common.Style.Shadow
	}
	return st
}

// borderStyle returns def modified by the border settings of st.
func borderStyle(st data.Style, def draw.LineStyle) draw.LineStyle {
	ls := def
	if st.BorderColor != nil {
		ls.Color = st.BorderColor
	}
	if st.BorderWidth > 0 {
		ls.Width = st.BorderWidth
	}
	if st.BorderDashes != nil {
		ls.Dashes = st.BorderDashes
	}
	return ls
}

// lineStyle is like borderStyle but lines default to the series color.
func lineStyle(st data.Style, def draw.LineStyle) draw.LineStyle {
	ls := borderStyle(st, def)
	if st.BorderColor == nil {
		ls.Color = st.Color
	}
	if ls.Width <= 0 {
		ls.Width = 1
	}
	return ls
}

// markerOf returns the marker of st. Markers without an explicit color
// use the series color.
func markerOf(st data.Style, def draw.LineStyle) chartarea.Marker {
	m := chartarea.Marker{
		Style: st.MarkerStyle,
		Size:  st.MarkerSize,
		Fill:  st.MarkerColor,
	}
	if m.Fill == nil {
		m.Fill = st.Color
	}
	if st.MarkerBorderColor != nil {
		m.Border = def
		m.Border.Color = st.MarkerBorderColor
		if m.Border.Width <= 0 {
			m.Border.Width = 1
		}
	}
	return m
}

// BoxStyle combines a line style for the border with a fill color for
// the interior of a box.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

func boxStyleOf(common *chartarea.Common, st data.Style) BoxStyle {
	bs := BoxStyle{Fill: st.Color}
	if st.BorderColor != nil || st.BorderWidth > 0 {
		bs.Border = borderStyle(st, common.Style.Line)
	}
	return bs
}

// clipRect clips rect to limit. The returned rectangle is in the canonical
// form.
func clipRect(rect, limit vg.Rectangle) vg.Rectangle {
	rect = chartarea.CanonicRectangle(rect)
	limit = chartarea.CanonicRectangle(limit)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect
}

// shade darkens c by the factor f in [0,1].
func shade(c color.Color, f float64) color.Color {
	if c == nil {
		return nil
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(a),
	}
}

// drawShadow draws the shadow of the relative rectangle r if st has one.
func drawShadow(g chartarea.Graphics, st data.Style, r vg.Rectangle) {
	if st.ShadowOffset <= 0 || st.ShadowColor == nil {
		return
	}
	off := g.RelativeSize(vg.Point{X: st.ShadowOffset, Y: st.ShadowOffset})
	r.Min.X += off.X
	r.Max.X += off.X
	r.Min.Y -= off.Y
	r.Max.Y -= off.Y
	g.FillRectangle(r, st.ShadowColor, draw.LineStyle{})
}

// relativeMarkerSize converts an absolute marker size to a relative one.
func relativeMarkerSize(g chartarea.Graphics, size vg.Length) vg.Point {
	return g.RelativeSize(vg.Point{X: size, Y: size})
}

// ----------------------------------------------------------------------------
// surface

// A surface draws relative geometry of one series. In 3D areas points are
// placed on a plane of the area box and projected by the area matrix.
type surface struct {
	g    chartarea.Graphics
	area *chartarea.Area
	is3D bool

	// z and depth are the front plane and the depth of the series slot.
	z, depth float64
}

func newSurface(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s *data.Series) (surface, error) {
	sf := surface{g: g, area: area}
	if !area.Area3D.Enable3D {
		return sf, nil
	}
	z, depth, err := area.SeriesZPositionAndDepth(axisSeries(common, area), s)
	if err != nil {
		return sf, err
	}
	sf.is3D, sf.z, sf.depth = true, z, depth
	return sf, nil
}

// at projects pts lying on the plane z.
func (sf surface) at(z float64, pts ...vg.Point) []vg.Point {
	if !sf.is3D {
		return pts
	}
	p3 := make([]chartarea.Point3D, len(pts))
	for i, p := range pts {
		p3[i] = chartarea.Point3D{X: float64(p.X), Y: float64(p.Y), Z: z}
	}
	return sf.area.Matrix.Project(p3...)
}

// middle projects pts lying on the middle plane of the series slot.
func (sf surface) middle(pts ...vg.Point) []vg.Point {
	return sf.at(sf.z+sf.depth/2, pts...)
}

// point projects a single point to the middle plane.
func (sf surface) point(p vg.Point) vg.Point { return sf.middle(p)[0] }

func (sf surface) line(sty draw.LineStyle, pts ...vg.Point) {
	if len(pts) < 2 || sty.Color == nil || sty.Width <= 0 {
		return
	}
	sf.g.StrokeLine(sty, sf.middle(pts...)...)
}

func (sf surface) polygon(pts []vg.Point, fill color.Color, border draw.LineStyle) vg.Rectangle {
	pp := sf.middle(pts...)
	sf.g.FillPolygon(pp, fill, border)
	return chartarea.BoundingBox(pp)
}

func (sf surface) marker(m chartarea.Marker, center vg.Point) vg.Point {
	c := sf.point(center)
	if m.Style != data.MarkerNone {
		sf.g.DrawMarker(m, c)
	}
	return c
}

// box draws the rectangle r. In 3D it becomes a cuboid spanning the series
// slot with the faces facing the viewer drawn. The bounding box of the
// drawn shape is returned.
func (sf surface) box(r vg.Rectangle, bs BoxStyle) vg.Rectangle {
	r = chartarea.CanonicRectangle(r)
	if !sf.is3D {
		sf.g.FillRectangle(r, bs.Fill, bs.Border)
		return r
	}

	corners := chartarea.RectanglePoints(r)
	front := sf.at(sf.z, corners...)
	back := sf.at(sf.z+sf.depth, corners...)

	st := sf.area.Area3D
	if st.Rotation >= 0 {
		sf.g.FillPolygon([]vg.Point{front[1], back[1], back[2], front[2]}, shade(bs.Fill, 0.7), bs.Border)
	} else {
		sf.g.FillPolygon([]vg.Point{front[0], front[3], back[3], back[0]}, shade(bs.Fill, 0.7), bs.Border)
	}
	if st.Inclination >= 0 {
		sf.g.FillPolygon([]vg.Point{front[3], front[2], back[2], back[3]}, shade(bs.Fill, 0.85), bs.Border)
	} else {
		sf.g.FillPolygon([]vg.Point{front[0], front[1], back[1], back[0]}, shade(bs.Fill, 0.85), bs.Border)
	}
	sf.g.FillPolygon(front, bs.Fill, bs.Border)

	return chartarea.BoundingBox(append(front, back...))
}

// pointMarker draws the marker of st at the relative center, projected
// to the middle plane of sf. It returns the projected center and the
// relative size of the marker. A marker image replaces the marker shape.
func pointMarker(g chartarea.Graphics, common *chartarea.Common, sf surface, st data.Style, center vg.Point) (vg.Point, vg.Point, error) {
	c := sf.point(center)
	if st.MarkerImage != "" && common.Images != nil {
		var size vg.Point
		if err := common.Images.AdjustedImageSize(st.MarkerImage, g, &size); err != nil {
			return c, vg.Point{}, err
		}
		img, err := common.Images.Load(st.MarkerImage)
		if err != nil {
			return c, vg.Point{}, err
		}
		rel := g.RelativeSize(size)
		g.DrawImage(img, vg.Rectangle{
			Min: vg.Point{X: c.X - rel.X/2, Y: c.Y - rel.Y/2},
			Max: vg.Point{X: c.X + rel.X/2, Y: c.Y + rel.Y/2},
		})
		return c, rel, nil
	}
	if st.MarkerStyle == data.MarkerNone {
		return c, vg.Point{}, nil
	}
	m := markerOf(st, common.Style.Line)
	g.DrawMarker(m, c)
	return c, relativeMarkerSize(g, m.Size), nil
}

// addMarkerRegion records the hot region of a marker at c with relative
// size rel. Circle markers get circular regions.
func addMarkerRegion(common *chartarea.Common, s *data.Series, i int, st data.Style, c, rel vg.Point) {
	if st.MarkerStyle == data.MarkerCircle && st.MarkerImage == "" {
		common.HotRegions.AddCircle(c, st.MarkerSize/2, s.Name, i)
		return
	}
	common.HotRegions.AddRectangle(vg.Rectangle{
		Min: vg.Point{X: c.X - rel.X/2, Y: c.Y - rel.Y/2},
		Max: vg.Point{X: c.X + rel.X/2, Y: c.Y + rel.Y/2},
	}, s.Name, i)
}
