package charttype

import (
	"image/color"
	"math"

	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pie draws the first Y value of the points of one series as slices of a
// circle. The first slice starts at PieStartAngle degrees, measured
// clockwise from twelve o'clock. Pies ignore the axes of their area and
// draw only the first pie series of an area.
type Pie struct {
	name     string
	doughnut bool
}

// NewPie returns the Pie chart type.
func NewPie() *Pie { return &Pie{name: PieName} }

func (pc *Pie) Name() string { return pc.name }

func (pc *Pie) Capabilities() chartarea.Capabilities {
	return chartarea.Capabilities{
		YValuesPerPoint: 1,
		Circular:        true,
		LegendImage:     chartarea.LegendRectangle,
	}
}

// A slice is one drawn pie slice. Collected slices have index -1.
type slice struct {
	index int
	value float64
	label string
	start float64 // degrees clockwise from twelve o'clock
	sweep float64
}

// slices computes the slices of s. Points whose share is below
// CollectedThreshold percent are merged into one slice if there are at
// least two of them.
func (pc *Pie) slices(s *data.Series, start float64) ([]slice, error) {
	props := chartarea.Properties(s, nil)
	threshold, err := props.Float(chartarea.PropCollectedThreshold, 0)
	if err != nil {
		return nil, err
	}
	collectedLabel := props.String(chartarea.PropCollectedLabel, "Other")

	total := 0.0
	for i := range s.Points {
		if err := checkArity(s, i, pc); err != nil {
			return nil, err
		}
		if p := s.Points[i]; !p.IsEmpty && !math.IsNaN(p.YValues[0]) {
			total += math.Abs(p.YValues[0])
		}
	}
	if total == 0 {
		return nil, nil
	}

	var slices []slice
	var small []int
	for i, p := range s.Points {
		if p.IsEmpty || math.IsNaN(p.YValues[0]) {
			continue
		}
		v := math.Abs(p.YValues[0])
		if threshold > 0 && v/total*100 < threshold {
			small = append(small, i)
			continue
		}
		slices = append(slices, slice{index: i, value: v})
	}
	switch {
	case len(small) == 1:
		i := small[0]
		slices = append(slices, slice{index: i, value: math.Abs(s.Points[i].YValues[0])})
	case len(small) > 1:
		sum := 0.0
		for _, i := range small {
			sum += math.Abs(s.Points[i].YValues[0])
		}
		slices = append(slices, slice{index: -1, value: sum, label: collectedLabel})
	}

	angle := start
	for k := range slices {
		slices[k].start = angle
		slices[k].sweep = slices[k].value / total * 360
		angle += slices[k].sweep
	}
	return slices, nil
}

// pieGeometry converts between pie angles and relative coordinates.
type pieGeometry struct {
	g      chartarea.Graphics
	center vg.Point  // absolute
	radius vg.Length // absolute
	inner  vg.Length // absolute, zero for pies
}

// at returns the relative point at the absolute distance r from the
// center in direction angle.
func (pg pieGeometry) at(angle float64, r vg.Length, shift vg.Point) vg.Point {
	rad := angle * math.Pi / 180
	return pg.g.ToRelative(vg.Point{
		X: pg.center.X + shift.X + r*vg.Length(math.Sin(rad)),
		Y: pg.center.Y + shift.Y + r*vg.Length(math.Cos(rad)),
	})
}

// outline returns the relative outline of sl.
func (pg pieGeometry) outline(sl slice, shift vg.Point) []vg.Point {
	steps := int(math.Ceil(sl.sweep/3)) + 1
	pts := make([]vg.Point, 0, 2*steps+2)
	for k := 0; k <= steps; k++ {
		pts = append(pts, pg.at(sl.start+sl.sweep*float64(k)/float64(steps), pg.radius, shift))
	}
	if pg.inner <= 0 {
		return append(pts, pg.at(0, 0, shift))
	}
	for k := steps; k >= 0; k-- {
		pts = append(pts, pg.at(sl.start+sl.sweep*float64(k)/float64(steps), pg.inner, shift))
	}
	return pts
}

func (pc *Pie) Paint(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, filter *data.Series) error {
	log := Logger().With(zap.String("type", pc.name), zap.String("area", area.Name))
	series := seriesOf(common, area, pc.name, filter)
	if len(series) == 0 {
		return nil
	}
	for _, s := range series[1:] {
		log.Debug("additional pie series not drawn", zap.String("series", s.Name))
	}
	s := series[0]

	props := chartarea.Properties(s, nil)
	start, err := props.Float(chartarea.PropPieStartAngle, 0)
	if err != nil {
		return err
	}
	slices, err := pc.slices(s, start)
	if err != nil {
		return err
	}

	pg, err := pc.geometry(g, area, s, slices)
	if err != nil {
		return err
	}
	border := common.Style.Pie.Border
	if c, err := props.Color(chartarea.PropPieLineColor, nil); err != nil {
		return err
	} else if c != nil {
		border.Color = c
	}

	var labels []label
	var leaders [][]vg.Point
	for _, sl := range slices {
		var p *data.Point
		if sl.index >= 0 {
			p = &s.Points[sl.index]
		}
		pprops := chartarea.Properties(s, p)
		exploded, err := pprops.Bool(chartarea.PropExploded, false)
		if err != nil {
			return err
		}
		labelStyle, err := pprops.Enum(chartarea.PropPieLabelStyle, "Inside")
		if err != nil {
			return err
		}

		var shift vg.Point
		mid := sl.start + sl.sweep/2
		if exploded {
			d := pg.radius * vg.Length(common.Style.Pie.Explode/100)
			rad := mid * math.Pi / 180
			shift = vg.Point{X: d * vg.Length(math.Sin(rad)), Y: d * vg.Length(math.Cos(rad))}
		}

		st := pieSliceStyle(common, s, p, sl)
		sb := border
		if p != nil && p.Style.BorderColor != nil {
			sb = borderStyle(st, border)
		}
		outline := pg.outline(sl, shift)
		pc.drawSlice(g, area, outline, st.Color, sb)
		if area.Area3D.Enable3D {
			outline = area.Matrix.Project(toPoints3D(outline, 0)...)
		}
		common.HotRegions.AddPolygon(outline, s.Name, sl.index)

		inside := pg.radius * 0.65
		if pg.inner > 0 {
			inside = (pg.radius + pg.inner) / 2
		}
		anchor := pg.at(mid, inside, shift)
		if area.Area3D.Enable3D {
			anchor = area.Matrix.Project(toPoints3D([]vg.Point{anchor}, 0)...)[0]
		}
		if p != nil {
			p.PositionRel = anchor
		}

		if labelStyle == "Disabled" {
			continue
		}
		text := sl.label
		if p != nil {
			if text, err = LabelText(s, sl.index, 0, st); err != nil {
				return err
			}
		}
		if text == "" {
			continue
		}
		l := label{text: text, style: st, anchor: anchor, preferred: chartarea.AlignCenter}
		if labelStyle == "Outside" {
			from := pg.at(mid, pg.radius, shift)
			to := pg.at(mid, pg.radius*1.1, shift)
			leaders = append(leaders, []vg.Point{from, to})
			l.anchor = to
			l.preferred = chartarea.AlignRight
			if math.Mod(mid, 360) > 180 {
				l.preferred = chartarea.AlignLeft
			}
		}
		labels = append(labels, l)
	}

	for _, ll := range leaders {
		g.StrokeLine(common.Style.Pie.LeaderLine, ll...)
	}
	drawLabels(g, common, labels)
	log.Debug("series painted", zap.String("series", s.Name), zap.Int("slices", len(slices)))
	return nil
}

// geometry fits the pie into the plot rectangle of area. Room for the
// labels is left if any label is drawn outside.
func (pc *Pie) geometry(g chartarea.Graphics, area *chartarea.Area, s *data.Series, slices []slice) (pieGeometry, error) {
	min := g.ToAbsolute(area.Position.Min)
	max := g.ToAbsolute(area.Position.Max)
	pg := pieGeometry{
		g:      g,
		center: vg.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2},
		radius: 0.45 * minLength(max.X-min.X, max.Y-min.Y),
	}
	for _, sl := range slices {
		var p *data.Point
		if sl.index >= 0 {
			p = &s.Points[sl.index]
		}
		ls, err := chartarea.Properties(s, p).Enum(chartarea.PropPieLabelStyle, "Inside")
		if err != nil {
			return pg, err
		}
		if ls == "Outside" {
			pg.radius *= 0.75
			break
		}
	}
	if pc.doughnut {
		f, err := chartarea.Properties(s, nil).Float(chartarea.PropDoughnutRadius, 60)
		if err != nil {
			return pg, err
		}
		pg.inner = pg.radius * vg.Length(f/100)
	}
	return pg, nil
}

// drawSlice draws the relative outline. In 3D areas the slice is drawn on
// the back plane of the area box first, then on the front plane.
func (pc *Pie) drawSlice(g chartarea.Graphics, area *chartarea.Area, outline []vg.Point, fill color.Color, border draw.LineStyle) {
	if !area.Area3D.Enable3D {
		g.FillPolygon(outline, fill, border)
		return
	}
	depth := area.Area3D.Depth * area.Area3D.PointDepth / 100
	back := area.Matrix.Project(toPoints3D(outline, depth)...)
	front := area.Matrix.Project(toPoints3D(outline, 0)...)
	g.FillPolygon(back, shade(fill, 0.7), border)
	for k := 0; k+1 < len(front); k++ {
		g.FillPolygon([]vg.Point{front[k], front[k+1], back[k+1], back[k]}, shade(fill, 0.8), draw.LineStyle{})
	}
	g.FillPolygon(front, fill, border)
}

func toPoints3D(pts []vg.Point, z float64) []chartarea.Point3D {
	p3 := make([]chartarea.Point3D, len(pts))
	for i, p := range pts {
		p3[i] = chartarea.Point3D{X: float64(p.X), Y: float64(p.Y), Z: z}
	}
	return p3
}

// pieSliceStyle colors the slices by point index. Collected slices use
// the palette color after the last point.
func pieSliceStyle(common *chartarea.Common, s *data.Series, p *data.Point, sl slice) data.Style {
	st := s.Style
	if p != nil {
		st = st.Merge(p.Style)
	}
	if p == nil || p.Style.Color == nil {
		i := sl.index
		if i < 0 {
			i = len(s.Points)
		}
		st.Color = common.Style.SeriesColor(i)
	}
	return st
}

func minLength(a, b vg.Length) vg.Length {
	if a < b {
		return a
	}
	return b
}

// Doughnut is a Pie with a hole of DoughnutRadius percent of the radius.
type Doughnut struct {
	Pie
}

// NewDoughnut returns the Doughnut chart type.
func NewDoughnut() *Doughnut {
	return &Doughnut{Pie{name: DoughnutName, doughnut: true}}
}
