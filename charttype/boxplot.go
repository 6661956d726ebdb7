package charttype

import (
	"strings"

	"github.com/ansel1/merry"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// Y value indices of box plot points. Values from index 6 on are unusual
// values drawn as markers.
const (
	LowerWhiskerIndex = iota
	UpperWhiskerIndex
	LowerBoxIndex
	UpperBoxIndex
	AverageIndex
	MedianIndex
)

// BoxPlot draws a box from the lower to the upper box value with whiskers
// to the whisker values and lines at the median and the average.
//
// The values are given as Y values or computed before painting from the
// series named by BoxPlotSeries. Set on the series, the semicolon
// separated names yield one box per name. Set on a point, the values of
// the named series are merged into that point's box.
type BoxPlot struct{}

func (BoxPlot) Name() string { return BoxPlotName }

func (BoxPlot) Capabilities() chartarea.Capabilities {
	return chartarea.Capabilities{
		YValuesPerPoint:        6,
		SideBySide:             true,
		SupportLogarithmicAxes: true,
		RequireAxes:            true,
		LegendImage:            chartarea.LegendRectangle,
	}
}

// boxOptions are the series wide box plot settings.
type boxOptions struct {
	whisker, box float64
	unusual      bool
}

func boxOptionsOf(s *data.Series) (boxOptions, error) {
	props := chartarea.Properties(s, nil)
	var bo boxOptions
	var err error
	if bo.whisker, err = props.Float(chartarea.PropBoxPlotWhiskerPercentile, 10); err != nil {
		return bo, err
	}
	if bo.box, err = props.Float(chartarea.PropBoxPlotPercentile, 25); err != nil {
		return bo, err
	}
	if bo.unusual, err = props.Bool(chartarea.PropBoxPlotShowUnusualValues, false); err != nil {
		return bo, err
	}
	return bo, nil
}

// Prepare computes the values of all linked box plot points.
func (bp BoxPlot) Prepare(common *chartarea.Common, area *chartarea.Area) error {
	for _, s := range seriesOf(common, area, BoxPlotName, nil) {
		if err := bp.prepareSeries(common, s); err != nil {
			return err
		}
	}
	return nil
}

// collectValues returns the values referenced by the semicolon separated
// list of series references refs.
func collectValues(common *chartarea.Common, s *data.Series, refs string) ([]float64, error) {
	var values []float64
	for _, ref := range strings.Split(refs, ";") {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		name, index, err := ParseSeriesRef(ref)
		if err != nil {
			return nil, merry.WithValue(err, "series", s.Name)
		}
		src, ok := common.Series.Lookup(name)
		if !ok {
			return nil, chartarea.ErrUnknownSeries.
				WithValue("series", name).
				WithMessagef("series %q: %s refers to unknown series %q", s.Name, chartarea.PropBoxPlotSeries, name)
		}
		for _, p := range src.Points {
			if !p.IsEmpty && index < len(p.YValues) {
				values = append(values, p.YValues[index])
			}
		}
	}
	return values, nil
}

func (bp BoxPlot) prepareSeries(common *chartarea.Common, s *data.Series) error {
	bo, err := boxOptionsOf(s)
	if err != nil {
		return err
	}

	if refs, ok := s.Props.Get(chartarea.PropBoxPlotSeries); ok && strings.TrimSpace(refs) != "" {
		var names []string
		for _, ref := range strings.Split(refs, ";") {
			if strings.TrimSpace(ref) != "" {
				names = append(names, strings.TrimSpace(ref))
			}
		}
		points := make([]data.Point, len(names))
		for i, ref := range names {
			values, err := collectValues(common, s, ref)
			if err != nil {
				return err
			}
			bs := ComputeBoxStats(values, bo.whisker, bo.box)
			name, _, _ := ParseSeriesRef(ref)
			points[i] = data.Point{
				XValue:    float64(i + 1),
				YValues:   bs.YValues(bo.unusual),
				AxisLabel: name,
				Series:    s.ID(),
			}
			if i < len(s.Points) {
				points[i].Label = s.Points[i].Label
				points[i].Props = s.Points[i].Props
				points[i].Style = s.Points[i].Style
			}
			logBoxStats(s, name, bs)
		}
		s.Points = points
		s.IsXValueIndexed = true
		return nil
	}

	for i := range s.Points {
		p := &s.Points[i]
		refs, ok := p.Props.Get(chartarea.PropBoxPlotSeries)
		if !ok || strings.TrimSpace(refs) == "" {
			continue
		}
		values, err := collectValues(common, s, refs)
		if err != nil {
			return err
		}
		bs := ComputeBoxStats(values, bo.whisker, bo.box)
		p.YValues = bs.YValues(bo.unusual)
		logBoxStats(s, refs, bs)
	}
	return nil
}

func logBoxStats(s *data.Series, from string, bs BoxStats) {
	Logger().Debug("box plot computed",
		zap.String("series", s.Name),
		zap.String("from", from),
		zap.Float64("median", bs.Median),
		zap.Float64("average", bs.Average),
		zap.Int("unusual", len(bs.Unusual)),
	)
}

// SeriesRange implements chartarea.SeriesRanger.
func (bp BoxPlot) SeriesRange(common *chartarea.Common, area *chartarea.Area, s *data.Series) (xmin, xmax, ymin, ymax float64, err error) {
	xmin, xmax, ymin, ymax = data.Range(s)
	h, _ := area.Axes(s)
	xmin, xmax = padCategories(h, s, xmin, xmax)
	return xmin, xmax, ymin, ymax, nil
}

func (bp BoxPlot) Paint(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, filter *data.Series) error {
	log := Logger().With(zap.String("type", BoxPlotName), zap.String("area", area.Name))
	var labels []label
	for _, s := range seriesOf(common, area, BoxPlotName, filter) {
		if err := bp.prepareSeries(common, s); err != nil {
			return err
		}
		ls, skipped, err := bp.paintSeries(g, common, area, s)
		if err != nil {
			return err
		}
		log.Debug("series painted", zap.String("series", s.Name), zap.Int("skipped", skipped))
		labels = append(labels, ls...)
	}
	drawLabels(g, common, labels)
	return nil
}

func (bp BoxPlot) paintSeries(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s *data.Series) ([]label, int, error) {
	h, v := area.Axes(s)
	sf, err := newSurface(g, common, area, s)
	if err != nil {
		return nil, 0, err
	}
	bl, err := newBoxLayout(g, common, area, s)
	if err != nil {
		return nil, 0, err
	}

	var labels []label
	skipped := 0
	for i := range s.Points {
		if err := checkArity(s, i, bp); err != nil {
			return nil, 0, err
		}
		p := &s.Points[i]
		if p.IsEmpty {
			continue
		}
		props := chartarea.Properties(s, p)
		showAverage, err := props.Bool(chartarea.PropBoxPlotShowAverage, true)
		if err != nil {
			return nil, 0, err
		}
		showMedian, err := props.Bool(chartarea.PropBoxPlotShowMedian, true)
		if err != nil {
			return nil, 0, err
		}

		x, ys := s.XValue(i), p.YValues
		if !visible(h, v, x, ys[:6]...) {
			skipped++
			continue
		}
		width, offset, err := bl.place(s, p)
		if err != nil {
			return nil, 0, err
		}
		xc := area.MapX(h, x) + offset
		left, right := xc-width/2, xc+width/2
		y := func(k int) vg.Length { return area.MapY(v, ys[k]) }

		st := styleOf(common, s, p)
		ls := lineStyle(st, common.Style.Line)

		// Whiskers.
		sf.line(ls, vg.Point{X: xc, Y: y(LowerWhiskerIndex)}, vg.Point{X: xc, Y: y(LowerBoxIndex)})
		sf.line(ls, vg.Point{X: xc, Y: y(UpperBoxIndex)}, vg.Point{X: xc, Y: y(UpperWhiskerIndex)})
		for _, k := range []int{LowerWhiskerIndex, UpperWhiskerIndex} {
			if v.InView(ys[k]) {
				sf.line(ls, vg.Point{X: xc - width/4, Y: y(k)}, vg.Point{X: xc + width/4, Y: y(k)})
			}
		}

		// Box.
		box := vg.Rectangle{
			Min: vg.Point{X: left, Y: y(LowerBoxIndex)},
			Max: vg.Point{X: right, Y: y(UpperBoxIndex)},
		}
		if !sf.is3D {
			drawShadow(g, st, box)
		}
		bs := boxStyleOf(common, st)
		if bs.Border.Color == nil {
			bs.Border = ls
		}
		sf.box(box, bs)

		if showMedian && v.InView(ys[MedianIndex]) {
			sf.line(ls, vg.Point{X: left, Y: y(MedianIndex)}, vg.Point{X: right, Y: y(MedianIndex)})
		}
		if showAverage && v.InView(ys[AverageIndex]) {
			dashed := ls
			dashed.Dashes = []vg.Length{2, 2}
			sf.line(dashed, vg.Point{X: left, Y: y(AverageIndex)}, vg.Point{X: right, Y: y(AverageIndex)})
		}

		// Unusual values.
		if len(ys) > 6 {
			mst := st
			if mst.MarkerStyle == data.MarkerNone {
				mst.MarkerStyle = data.MarkerCircle
			}
			for _, u := range ys[6:] {
				if !v.InView(u) {
					continue
				}
				if _, _, err := pointMarker(g, common, sf, mst, vg.Point{X: xc, Y: area.MapY(v, u)}); err != nil {
					return nil, 0, err
				}
			}
		}

		hot := chartarea.BoundingBox(sf.middle(
			vg.Point{X: left, Y: y(LowerWhiskerIndex)}, vg.Point{X: right, Y: y(LowerWhiskerIndex)},
			vg.Point{X: right, Y: y(UpperWhiskerIndex)}, vg.Point{X: left, Y: y(UpperWhiskerIndex)}))
		common.HotRegions.AddRectangle(hot, s.Name, i)

		anchor := sf.point(vg.Point{X: xc, Y: y(UpperWhiskerIndex)})
		p.PositionRel = anchor

		text, err := LabelText(s, i, MedianIndex, st)
		if err != nil {
			return nil, 0, err
		}
		if text != "" {
			labels = append(labels, label{text: text, style: st, anchor: anchor, preferred: chartarea.AlignTop})
		}
	}
	return labels, skipped, nil
}
