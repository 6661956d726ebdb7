package charttype

import (
	"math"

	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// FastPoint draws a marker per point and drops points which lie within
// the permitted pixel error of the previously evaluated point. This keeps
// the number of primitives of large series low.
type FastPoint struct{}

func (FastPoint) Name() string { return FastPointName }

func (FastPoint) Capabilities() chartarea.Capabilities {
	return chartarea.Capabilities{
		YValuesPerPoint:        1,
		SupportLogarithmicAxes: true,
		RequireAxes:            true,
		LegendImage:            chartarea.LegendMarker,
	}
}

// A decimator decides which points of a series are drawn. Coordinates
// are in the space of the axes' ToLogValue.
type decimator struct {
	dx, dy       float64
	prevX, prevY float64
	havePrev     bool
}

// skip reports whether a point at (x,y) is closer than the permitted
// error to the last evaluated point in both directions.
func (d *decimator) skip(x, y float64) bool {
	return d.havePrev &&
		math.Abs(x-d.prevX) < d.dx &&
		math.Abs(y-d.prevY) < d.dy
}

// evaluated records (x,y) as the last evaluated point. Drawn and out of
// view points are evaluated, decimated ones are not.
func (d *decimator) evaluated(x, y float64) {
	d.prevX, d.prevY, d.havePrev = x, y, true
}

// permittedError returns the absolute size of the permitted pixel error
// of s: PermittedPixelError pixels or a third of the marker size.
func permittedError(g chartarea.Graphics, s *data.Series, markerSize vg.Length) (vg.Length, error) {
	px, err := chartarea.Properties(s, nil).Float(chartarea.PropPermittedPixelError, -1)
	if err != nil {
		return 0, err
	}
	if px < 0 {
		return markerSize / 3, nil
	}
	dpi := g.DPI()
	if dpi <= 0 {
		dpi = 72
	}
	return vg.Length(px * float64(vg.Inch) / dpi), nil
}

func (fp FastPoint) Paint(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, filter *data.Series) error {
	log := Logger().With(zap.String("type", FastPointName), zap.String("area", area.Name))
	var labels []label
	for _, s := range seriesOf(common, area, FastPointName, filter) {
		ls, stats, err := fp.paintSeries(g, common, area, s)
		if err != nil {
			return err
		}
		log.Debug("series painted",
			zap.String("series", s.Name),
			zap.Int("drawn", stats.drawn),
			zap.Int("decimated", stats.decimated),
			zap.Int("outOfView", stats.outOfView),
		)
		labels = append(labels, ls...)
	}
	drawLabels(g, common, labels)
	return nil
}

type fastPointStats struct {
	drawn, decimated, outOfView int
}

func (fp FastPoint) paintSeries(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s *data.Series) ([]label, fastPointStats, error) {
	var stats fastPointStats
	h, v := area.Axes(s)
	sf, err := newSurface(g, common, area, s)
	if err != nil {
		return nil, stats, err
	}

	base := styleOf(common, s, nil)
	if base.MarkerStyle == data.MarkerNone {
		base.MarkerStyle = data.MarkerCircle
	}
	pe, err := permittedError(g, s, base.MarkerSize)
	if err != nil {
		return nil, stats, err
	}
	rel := g.RelativeSize(vg.Point{X: pe, Y: pe})
	dec := decimator{
		dx: math.Abs(h.LogSpan(float64(rel.X / area.Width()))),
		dy: math.Abs(v.LogSpan(float64(rel.Y / area.Height()))),
	}

	// The last point in view is always drawn.
	last := -1
	for i := range s.Points {
		p := &s.Points[i]
		if !p.IsEmpty && len(p.YValues) > 0 && visible(h, v, s.XValue(i), p.YValues[0]) {
			last = i
		}
	}

	var labels []label
	for i := range s.Points {
		if err := checkArity(s, i, fp); err != nil {
			return nil, stats, err
		}
		p := &s.Points[i]
		if p.IsEmpty {
			continue
		}
		x, y := s.XValue(i), p.YValues[0]
		lx, ly := h.ToLogValue(x), v.ToLogValue(y)
		if !visible(h, v, x, y) {
			dec.evaluated(lx, ly)
			stats.outOfView++
			continue
		}
		if i != last && dec.skip(lx, ly) {
			stats.decimated++
			continue
		}
		dec.evaluated(lx, ly)
		stats.drawn++

		st := styleOf(common, s, p)
		if st.MarkerStyle == data.MarkerNone {
			st.MarkerStyle = data.MarkerCircle
		}
		c, size, err := pointMarker(g, common, sf, st, area.MapXY(h, v, x, y))
		if err != nil {
			return nil, stats, err
		}
		p.PositionRel = c
		addMarkerRegion(common, s, i, st, c, size)
		common.SmartLabels.AddMarker(vg.Rectangle{
			Min: vg.Point{X: c.X - size.X/2, Y: c.Y - size.Y/2},
			Max: vg.Point{X: c.X + size.X/2, Y: c.Y + size.Y/2},
		})

		text, err := LabelText(s, i, 0, st)
		if err != nil {
			return nil, stats, err
		}
		if text != "" {
			labels = append(labels, label{text: text, style: st, anchor: c, marker: size,
				preferred: chartarea.AlignTop})
		}
	}
	return labels, stats, nil
}
