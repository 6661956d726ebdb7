package charttype

import (
	"math"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// Y value indices of error bar points.
const (
	CenterIndex = iota
	LowerErrorIndex
	UpperErrorIndex
)

// ErrorBar draws a vertical bar from the lower to the upper error of every
// point with whiskers at both ends and a center mark.
//
// The errors are either given as Y values or computed before painting
// from ErrorBarType. With ErrorBarSeries the center values are copied
// from a linked series and the bars are aligned with the boxes of that
// series.
type ErrorBar struct{}

func (ErrorBar) Name() string { return ErrorBarName }

func (ErrorBar) Capabilities() chartarea.Capabilities {
	return chartarea.Capabilities{
		YValuesPerPoint:        3,
		SideBySide:             true,
		SupportLogarithmicAxes: true,
		RequireAxes:            true,
		LegendImage:            chartarea.LegendLine,
	}
}

// ParseErrorBarType parses values like "StandardDeviation" or
// "Percentage(10)". A missing parameter is replaced by the default
// parameter of the type.
func ParseErrorBarType(s string) (ErrorBarType, float64, error) {
	invalid := func() error {
		return chartarea.ErrInvalidCustomProperty.
			WithValue("property", chartarea.PropErrorBarType).
			WithValue("value", s).
			WithMessagef("invalid %s %q, want one of %s with optional (param)",
				chartarea.PropErrorBarType, s, strings.Join(errorBarTypeNames, ", "))
	}

	name, param := strings.TrimSpace(s), ""
	if k := strings.IndexByte(name, '('); k >= 0 {
		if !strings.HasSuffix(name, ")") {
			return 0, 0, invalid()
		}
		param = strings.TrimSpace(name[k+1 : len(name)-1])
		name = strings.TrimSpace(name[:k])
	}
	t := ErrorBarType(-1)
	for i, n := range errorBarTypeNames {
		if strings.EqualFold(n, name) {
			t = ErrorBarType(i)
		}
	}
	if t < 0 {
		return 0, 0, invalid()
	}
	if param == "" {
		return t, t.DefaultParam(), nil
	}
	v, err := strconv.ParseFloat(param, 64)
	if err != nil || v < 0 {
		return 0, 0, invalid()
	}
	return t, v, nil
}

// ParseSeriesRef splits a reference "Name" or "Name:Yn" into the series
// name and the zero based Y value index. "Name:Y" selects the first value.
func ParseSeriesRef(ref string) (string, int, error) {
	ref = strings.TrimSpace(ref)
	k := strings.LastIndexByte(ref, ':')
	if k < 0 {
		return ref, 0, nil
	}
	name, value := strings.TrimSpace(ref[:k]), strings.ToUpper(strings.TrimSpace(ref[k+1:]))
	if !strings.HasPrefix(value, "Y") {
		return "", 0, chartarea.ErrInvalidCustomProperty.
			WithValue("value", ref).
			WithMessagef("invalid value name in series reference %q, want Y or Yn", ref)
	}
	if value == "Y" {
		return name, 0, nil
	}
	n, err := strconv.Atoi(value[1:])
	if err != nil || n < 1 {
		return "", 0, chartarea.ErrInvalidCustomProperty.
			WithValue("value", ref).
			WithMessagef("invalid value name in series reference %q, want Y or Yn", ref)
	}
	return name, n - 1, nil
}

// linkedSeries returns the series s is linked to through ErrorBarSeries
// and the Y index to take the center values from. A nil series means s is
// not linked.
func linkedSeries(common *chartarea.Common, s *data.Series) (*data.Series, int, error) {
	ref, ok := chartarea.Properties(s, nil).Lookup(chartarea.PropErrorBarSeries)
	if !ok || ref == "" {
		return nil, 0, nil
	}
	name, index, err := ParseSeriesRef(ref)
	if err != nil {
		return nil, 0, merry.WithValue(err, "series", s.Name)
	}
	linked, ok := common.Series.Lookup(name)
	if !ok {
		return nil, 0, chartarea.ErrUnknownSeries.
			WithValue("series", name).
			WithMessagef("series %q: %s refers to unknown series %q", s.Name, chartarea.PropErrorBarSeries, name)
	}
	return linked, index, nil
}

// Prepare copies the centers of linked error bar series and computes the
// errors from ErrorBarType.
func (eb ErrorBar) Prepare(common *chartarea.Common, area *chartarea.Area) error {
	for _, s := range seriesOf(common, area, ErrorBarName, nil) {
		if err := eb.prepareSeries(common, s); err != nil {
			return err
		}
	}
	return nil
}

func (eb ErrorBar) prepareSeries(common *chartarea.Common, s *data.Series) error {
	linked, index, err := linkedSeries(common, s)
	if err != nil {
		return err
	}
	props := chartarea.Properties(s, nil)
	raw, hasType := props.Lookup(chartarea.PropErrorBarType)
	if !hasType && linked == nil {
		// Errors are given explicitly.
		return nil
	}
	if !hasType {
		raw = "FixedValue"
	}
	typ, param, err := ParseErrorBarType(raw)
	if err != nil {
		return merry.WithValue(err, "series", s.Name)
	}

	if linked != nil {
		copyCenters(s, linked, index)
	}

	var centers []float64
	for i := range s.Points {
		if err := checkArity(s, i, eb); err != nil {
			return err
		}
		if p := s.Points[i]; !p.IsEmpty {
			centers = append(centers, p.YValues[CenterIndex])
		}
	}
	if typ == ErrorNone {
		return nil
	}
	for i := range s.Points {
		p := &s.Points[i]
		c := p.YValues[CenterIndex]
		e := typ.ErrorAmount(param, c, centers)
		p.YValues[LowerErrorIndex] = c - e
		p.YValues[UpperErrorIndex] = c + e
	}
	Logger().Debug("error bars computed",
		zap.String("series", s.Name),
		zap.Stringer("type", typ),
		zap.Float64("param", param),
		zap.Int("n", len(centers)),
	)
	return nil
}

// copyCenters makes s a copy of linked with the index'th Y value of
// linked as center. Existing errors of s are kept.
func copyCenters(s, linked *data.Series, index int) {
	if len(s.Points) > len(linked.Points) {
		s.Points = s.Points[:len(linked.Points)]
	}
	for len(s.Points) < len(linked.Points) {
		s.Points = append(s.Points, data.Point{Series: s.ID()})
	}
	s.IsXValueIndexed = linked.IsXValueIndexed
	for i := range linked.Points {
		lp, p := &linked.Points[i], &s.Points[i]
		p.XValue = lp.XValue
		p.AxisLabel = lp.AxisLabel
		p.IsEmpty = lp.IsEmpty || index >= len(lp.YValues)
		for len(p.YValues) < 3 {
			p.YValues = append(p.YValues, math.NaN())
		}
		c := math.NaN()
		if index < len(lp.YValues) {
			c = lp.YValues[index]
		}
		p.YValues[CenterIndex] = c
		if math.IsNaN(p.YValues[LowerErrorIndex]) {
			p.YValues[LowerErrorIndex] = c
		}
		if math.IsNaN(p.YValues[UpperErrorIndex]) {
			p.YValues[UpperErrorIndex] = c
		}
	}
}

// SeriesRange implements chartarea.SeriesRanger.
func (eb ErrorBar) SeriesRange(common *chartarea.Common, area *chartarea.Area, s *data.Series) (xmin, xmax, ymin, ymax float64, err error) {
	xmin, xmax, ymin, ymax = data.Range(s)
	h, _ := area.Axes(s)
	xmin, xmax = padCategories(h, s, xmin, xmax)
	return xmin, xmax, ymin, ymax, nil
}

// errorBarLayout places the bars of s. Linked series take the center
// offset from the box of the linked series and are PointWidth times as
// wide as that box.
type errorBarLayout struct {
	own, linked boxLayout
	isLinked    bool
	fraction    float64
}

func newErrorBarLayout(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s, linked *data.Series) (errorBarLayout, error) {
	if linked == nil || linked.ChartArea != area.Name {
		own, err := newBoxLayout(g, common, area, s)
		return errorBarLayout{own: own}, err
	}
	lbl, err := newBoxLayout(g, common, area, linked)
	if err != nil {
		return errorBarLayout{}, err
	}
	f, err := chartarea.Properties(s, nil).Float(chartarea.PropPointWidth, defaultPointWidth(ErrorBarName))
	if err != nil {
		return errorBarLayout{}, err
	}
	return errorBarLayout{linked: lbl, isLinked: true, fraction: f}, nil
}

func (el errorBarLayout) place(s, linked *data.Series, i int) (width, offset vg.Length, err error) {
	if !el.isLinked {
		return el.own.place(s, &s.Points[i])
	}
	var lp *data.Point
	if i < len(linked.Points) {
		lp = &linked.Points[i]
	}
	width, offset, err = el.linked.place(linked, lp)
	return width * vg.Length(el.fraction), offset, err
}

// centerMark is the resolved ErrorBarCenterMarkerStyle.
type centerMark struct {
	none   bool
	line   bool
	marker data.MarkerStyle
}

func centerMarkOf(s *data.Series, p *data.Point) (centerMark, error) {
	v := chartarea.Properties(s, p).String(chartarea.PropErrorBarCenterMarkerStyle, "Line")
	switch strings.ToLower(v) {
	case "none":
		return centerMark{none: true}, nil
	case "line":
		return centerMark{line: true}, nil
	}
	m, err := data.ParseMarkerStyle(v)
	if err != nil {
		return centerMark{}, chartarea.ErrInvalidCustomProperty.
			WithValue("property", chartarea.PropErrorBarCenterMarkerStyle).
			WithValue("value", v).
			WithMessagef("series %q: invalid %s %q, want None, Line or a marker style",
				s.Name, chartarea.PropErrorBarCenterMarkerStyle, v)
	}
	return centerMark{marker: m, none: m == data.MarkerNone}, nil
}

func (eb ErrorBar) Paint(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, filter *data.Series) error {
	log := Logger().With(zap.String("type", ErrorBarName), zap.String("area", area.Name))
	var labels []label
	for _, s := range seriesOf(common, area, ErrorBarName, filter) {
		if err := eb.prepareSeries(common, s); err != nil {
			return err
		}
		ls, skipped, err := eb.paintSeries(g, common, area, s)
		if err != nil {
			return err
		}
		log.Debug("series painted", zap.String("series", s.Name), zap.Int("skipped", skipped))
		labels = append(labels, ls...)
	}
	drawLabels(g, common, labels)
	return nil
}

func (eb ErrorBar) paintSeries(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s *data.Series) ([]label, int, error) {
	h, v := area.Axes(s)
	sf, err := newSurface(g, common, area, s)
	if err != nil {
		return nil, 0, err
	}
	linked, _, err := linkedSeries(common, s)
	if err != nil {
		return nil, 0, err
	}
	el, err := newErrorBarLayout(g, common, area, s, linked)
	if err != nil {
		return nil, 0, err
	}

	var labels []label
	skipped := 0
	for i := range s.Points {
		if err := checkArity(s, i, eb); err != nil {
			return nil, 0, err
		}
		p := &s.Points[i]
		if p.IsEmpty {
			continue
		}
		props := chartarea.Properties(s, p)
		ebs, err := props.Enum(chartarea.PropErrorBarStyle, "Both")
		if err != nil {
			return nil, 0, err
		}
		cm, err := centerMarkOf(s, p)
		if err != nil {
			return nil, 0, err
		}

		x := s.XValue(i)
		center, low, high := p.YValues[CenterIndex], p.YValues[LowerErrorIndex], p.YValues[UpperErrorIndex]
		if low > high {
			low, high = high, low
		}
		switch ebs {
		case "UpperError":
			low = center
		case "LowerError":
			high = center
		}
		if !visible(h, v, x, low, high, center) {
			skipped++
			continue
		}
		width, offset, err := el.place(s, linked, i)
		if err != nil {
			return nil, 0, err
		}

		xc := area.MapX(h, x) + offset
		yLow, yHigh, yCenter := area.MapY(v, low), area.MapY(v, high), area.MapY(v, center)
		left, right := xc-width/2, xc+width/2

		st := styleOf(common, s, p)
		ls := lineStyle(st, common.Style.Line)
		sf.line(ls, vg.Point{X: xc, Y: yLow}, vg.Point{X: xc, Y: yHigh})
		if ebs != "UpperError" && v.InView(low) {
			sf.line(ls, vg.Point{X: left, Y: yLow}, vg.Point{X: right, Y: yLow})
		}
		if ebs != "LowerError" && v.InView(high) {
			sf.line(ls, vg.Point{X: left, Y: yHigh}, vg.Point{X: right, Y: yHigh})
		}

		anchor := sf.point(vg.Point{X: xc, Y: yCenter})
		markerSize := vg.Point{}
		switch {
		case cm.none:
		case cm.line:
			sf.line(ls, vg.Point{X: left, Y: yCenter}, vg.Point{X: right, Y: yCenter})
		default:
			st.MarkerStyle = cm.marker
			anchor, markerSize, err = pointMarker(g, common, sf, st, vg.Point{X: xc, Y: yCenter})
			if err != nil {
				return nil, 0, err
			}
			common.SmartLabels.AddMarker(vg.Rectangle{
				Min: vg.Point{X: anchor.X - markerSize.X/2, Y: anchor.Y - markerSize.Y/2},
				Max: vg.Point{X: anchor.X + markerSize.X/2, Y: anchor.Y + markerSize.Y/2},
			})
		}
		p.PositionRel = anchor

		hot := chartarea.BoundingBox(sf.middle(
			vg.Point{X: left, Y: yLow}, vg.Point{X: right, Y: yLow},
			vg.Point{X: right, Y: yHigh}, vg.Point{X: left, Y: yHigh}))
		common.HotRegions.AddRectangle(hot, s.Name, i)

		text, err := LabelText(s, i, CenterIndex, st)
		if err != nil {
			return nil, 0, err
		}
		if text != "" {
			labels = append(labels, label{text: text, style: st, anchor: anchor,
				marker: markerSize, preferred: chartarea.AlignRight})
		}
	}
	return labels, skipped, nil
}
