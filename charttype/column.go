package charttype

import (
	"math"

	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// Column draws bars standing on (or hanging from) zero. Peer column,
// stock and box plot series are drawn side by side.
type Column struct{}

func (Column) Name() string { return ColumnName }

func (Column) Capabilities() chartarea.Capabilities {
	return chartarea.Capabilities{
		YValuesPerPoint:        1,
		SideBySide:             true,
		SupportLogarithmicAxes: true,
		RequireAxes:            true,
		LegendImage:            chartarea.LegendRectangle,
	}
}

// SeriesRange implements chartarea.SeriesRanger: the range includes zero
// and half a category on both sides.
func (c Column) SeriesRange(common *chartarea.Common, area *chartarea.Area, s *data.Series) (xmin, xmax, ymin, ymax float64, err error) {
	xmin, xmax, ymin, ymax = data.Range(s)
	h, v := area.Axes(s)
	if !v.IsLogarithmic() && !math.IsNaN(ymin) {
		ymin, ymax = math.Min(ymin, 0), math.Max(ymax, 0)
	}
	xmin, xmax = padCategories(h, s, xmin, xmax)
	return xmin, xmax, ymin, ymax, nil
}

// padCategories widens [xmin,xmax] by half a point interval of s.
func padCategories(h *chartarea.Axis, s *data.Series, xmin, xmax float64) (float64, float64) {
	if math.IsNaN(xmin) {
		return xmin, xmax
	}
	half := pointsInterval(h, []*data.Series{s}) / 2
	return h.FromLogValue(h.ToLogValue(xmin) - half), h.FromLogValue(h.ToLogValue(xmax) + half)
}

func (c Column) Paint(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, filter *data.Series) error {
	log := Logger().With(zap.String("type", ColumnName), zap.String("area", area.Name))
	var labels []label
	for _, s := range seriesOf(common, area, ColumnName, filter) {
		ls, skipped, err := c.paintSeries(g, common, area, s)
		if err != nil {
			return err
		}
		log.Debug("series painted", zap.String("series", s.Name), zap.Int("skipped", skipped))
		labels = append(labels, ls...)
	}
	drawLabels(g, common, labels)
	return nil
}

func (c Column) paintSeries(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s *data.Series) ([]label, int, error) {
	h, v := area.Axes(s)
	sf, err := newSurface(g, common, area, s)
	if err != nil {
		return nil, 0, err
	}
	bl, err := newBoxLayout(g, common, area, s)
	if err != nil {
		return nil, 0, err
	}

	base := 0.0
	if v.IsLogarithmic() {
		base = v.ViewMinimum
	}
	base = v.Clamp(base)

	var labels []label
	skipped := 0
	for i := range s.Points {
		if err := checkArity(s, i, c); err != nil {
			return nil, 0, err
		}
		p := &s.Points[i]
		if p.IsEmpty {
			continue
		}
		x, y := s.XValue(i), p.YValues[0]
		if !visible(h, v, x, base, y) {
			skipped++
			continue
		}
		width, offset, err := bl.place(s, p)
		if err != nil {
			return nil, 0, err
		}

		xc := area.MapX(h, x) + offset
		top, bottom := area.MapY(v, y), area.MapY(v, base)
		r := vg.Rectangle{
			Min: vg.Point{X: xc - width/2, Y: bottom},
			Max: vg.Point{X: xc + width/2, Y: top},
		}
		r = clipRect(r, area.Position)

		st := styleOf(common, s, p)
		if !sf.is3D {
			drawShadow(g, st, r)
		}
		hot := sf.box(r, boxStyleOf(common, st))
		common.HotRegions.AddRectangle(hot, s.Name, i)

		anchor := vg.Point{X: xc, Y: top}
		if sf.is3D {
			anchor = sf.at(sf.z, anchor)[0]
		}
		p.PositionRel = anchor

		text, err := LabelText(s, i, 0, st)
		if err != nil {
			return nil, 0, err
		}
		if text == "" {
			continue
		}
		ls, err := chartarea.Properties(s, p).Enum(chartarea.PropBarLabelStyle, "Outside")
		if err != nil {
			return nil, 0, err
		}
		l := label{text: text, style: st, anchor: anchor, preferred: chartarea.AlignTop}
		if y < base {
			l.preferred = chartarea.AlignBottom
		}
		switch ls {
		case "Center":
			l.anchor.Y = (r.Min.Y + r.Max.Y) / 2
			l.preferred = chartarea.AlignCenter
		case "Top":
			l.preferred = chartarea.AlignBottom
		case "Bottom":
			l.anchor.Y = bottom
			l.preferred = chartarea.AlignTop
		}
		labels = append(labels, l)
	}
	return labels, skipped, nil
}
