package charttype

import (
	"image/color"

	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// Y value indices of stock points.
const (
	HighIndex = iota
	LowIndex
	OpenIndex
	CloseIndex
)

// Open and close mark styles.
const (
	OpenCloseLine        = "Line"
	OpenCloseTriangle    = "Triangle"
	OpenCloseCandlestick = "Candlestick"
)

// Stock draws a vertical high-low line per point with marks for the open
// and the close price. The mark style is selected per point by the
// OpenCloseStyle property, ShowOpenClose hides one of the marks.
type Stock struct {
	name         string
	defaultStyle string
}

// NewStock returns the Stock chart type.
func NewStock() *Stock {
	return &Stock{name: StockName, defaultStyle: OpenCloseLine}
}

func (st *Stock) Name() string { return st.name }

func (st *Stock) Capabilities() chartarea.Capabilities {
	return chartarea.Capabilities{
		YValuesPerPoint:        4,
		SideBySide:             true,
		SupportLogarithmicAxes: true,
		RequireAxes:            true,
		LegendImage:            chartarea.LegendLine,
	}
}

// SeriesRange implements chartarea.SeriesRanger.
func (st *Stock) SeriesRange(common *chartarea.Common, area *chartarea.Area, s *data.Series) (xmin, xmax, ymin, ymax float64, err error) {
	xmin, xmax, ymin, ymax = data.Range(s)
	h, _ := area.Axes(s)
	xmin, xmax = padCategories(h, s, xmin, xmax)
	return xmin, xmax, ymin, ymax, nil
}

func (st *Stock) Paint(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, filter *data.Series) error {
	log := Logger().With(zap.String("type", st.name), zap.String("area", area.Name))
	var labels []label
	for _, s := range seriesOf(common, area, st.name, filter) {
		ls, skipped, err := st.paintSeries(g, common, area, s)
		if err != nil {
			return err
		}
		log.Debug("series painted", zap.String("series", s.Name), zap.Int("skipped", skipped))
		labels = append(labels, ls...)
	}
	drawLabels(g, common, labels)
	return nil
}

// stockMarks are the resolved per point drawing options.
type stockMarks struct {
	style     string
	showOpen  bool
	showClose bool
	up, down  color.Color
}

func (st *Stock) marksOf(s *data.Series, p *data.Point) (stockMarks, error) {
	props := chartarea.Properties(s, p)
	var m stockMarks
	var err error
	if m.style, err = props.Enum(chartarea.PropOpenCloseStyle, st.defaultStyle); err != nil {
		return m, err
	}
	show, err := props.Enum(chartarea.PropShowOpenClose, "Both")
	if err != nil {
		return m, err
	}
	m.showOpen = show == "Both" || show == "Open"
	m.showClose = show == "Both" || show == "Close"
	if m.up, err = props.Color(chartarea.PropPriceUpColor, nil); err != nil {
		return m, err
	}
	if m.down, err = props.Color(chartarea.PropPriceDownColor, nil); err != nil {
		return m, err
	}
	return m, nil
}

// labelValueIndex returns the Y index selected by LabelValueType.
func labelValueIndex(s *data.Series, p *data.Point) (int, error) {
	lvt, err := chartarea.Properties(s, p).Enum(chartarea.PropLabelValueType, "Close")
	if err != nil {
		return 0, err
	}
	switch lvt {
	case "High":
		return HighIndex, nil
	case "Low":
		return LowIndex, nil
	case "Open":
		return OpenIndex, nil
	}
	return CloseIndex, nil
}

func (st *Stock) paintSeries(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s *data.Series) ([]label, int, error) {
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
		if err := checkArity(s, i, st); err != nil {
			return nil, 0, err
		}
		p := &s.Points[i]
		if p.IsEmpty {
			continue
		}
		marks, err := st.marksOf(s, p)
		if err != nil {
			return nil, 0, err
		}
		lvi, err := labelValueIndex(s, p)
		if err != nil {
			return nil, 0, err
		}

		x, ys := s.XValue(i), p.YValues
		if !visible(h, v, x, ys[HighIndex], ys[LowIndex], ys[OpenIndex], ys[CloseIndex]) {
			skipped++
			continue
		}
		width, offset, err := bl.place(s, p)
		if err != nil {
			return nil, 0, err
		}
		xc := area.MapX(h, x) + offset
		yHigh, yLow := area.MapY(v, ys[HighIndex]), area.MapY(v, ys[LowIndex])
		yOpen, yClose := area.MapY(v, ys[OpenIndex]), area.MapY(v, ys[CloseIndex])

		sty := styleOf(common, s, p)
		ls := lineStyle(sty, common.Style.Line)
		left, right := xc-width/2, xc+width/2

		switch marks.style {
		case OpenCloseCandlestick:
			sf.line(ls, vg.Point{X: xc, Y: yLow}, vg.Point{X: xc, Y: yHigh})
			fill := marks.down
			if fill == nil {
				fill = sty.Color
			}
			if ys[CloseIndex] >= ys[OpenIndex] {
				fill = marks.up
				if fill == nil {
					fill = color.White
				}
			}
			body := vg.Rectangle{
				Min: vg.Point{X: left, Y: yOpen},
				Max: vg.Point{X: right, Y: yClose},
			}
			border := ls
			if sty.BorderColor == nil {
				border.Color = sty.Color
			}
			sf.box(body, BoxStyle{Fill: fill, Border: border})

		case OpenCloseTriangle:
			sf.line(ls, vg.Point{X: xc, Y: yLow}, vg.Point{X: xc, Y: yHigh})
			// Triangles are as high as they are wide.
			half := g.RelativeSize(vg.Point{Y: g.AbsoluteSize(vg.Point{X: width / 2}).X}).Y / 2
			if marks.showOpen {
				sf.polygon([]vg.Point{{X: left, Y: yOpen + half}, {X: left, Y: yOpen - half}, {X: xc, Y: yOpen}},
					ls.Color, ls)
			}
			if marks.showClose {
				sf.polygon([]vg.Point{{X: right, Y: yClose + half}, {X: right, Y: yClose - half}, {X: xc, Y: yClose}},
					ls.Color, ls)
			}

		default:
			sf.line(ls, vg.Point{X: xc, Y: yLow}, vg.Point{X: xc, Y: yHigh})
			if marks.showOpen {
				sf.line(ls, vg.Point{X: left, Y: yOpen}, vg.Point{X: xc, Y: yOpen})
			}
			if marks.showClose {
				sf.line(ls, vg.Point{X: xc, Y: yClose}, vg.Point{X: right, Y: yClose})
			}
		}

		hot := chartarea.BoundingBox(sf.middle(
			vg.Point{X: left, Y: yLow}, vg.Point{X: right, Y: yLow},
			vg.Point{X: right, Y: yHigh}, vg.Point{X: left, Y: yHigh}))
		common.HotRegions.AddRectangle(hot, s.Name, i)

		anchor := sf.point(vg.Point{X: xc, Y: area.MapY(v, ys[lvi])})
		p.PositionRel = anchor

		text, err := LabelText(s, i, lvi, sty)
		if err != nil {
			return nil, 0, err
		}
		if text == "" {
			continue
		}
		l := label{text: text, style: sty, anchor: anchor, preferred: chartarea.AlignRight,
			marker: vg.Point{X: width}}
		switch lvi {
		case HighIndex:
			l.preferred = chartarea.AlignTop
		case LowIndex:
			l.preferred = chartarea.AlignBottom
		case OpenIndex:
			l.preferred = chartarea.AlignLeft
		}
		labels = append(labels, l)
	}
	return labels, skipped, nil
}

// Candlestick is a Stock chart type drawing candlestick bodies by default.
// Rising bodies are filled with PriceUpColor (default white), falling ones
// with PriceDownColor (default the series color).
type Candlestick struct {
	Stock
}

// NewCandlestick returns the Candlestick chart type.
func NewCandlestick() *Candlestick {
	return &Candlestick{Stock{name: CandlestickName, defaultStyle: OpenCloseCandlestick}}
}
