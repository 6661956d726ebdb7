package charttype

import (
	"image/color"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
)

// newChart returns a chart with one full size area whose axes show
// 0..xmax and 0..ymax.
func newChart(xmax, ymax float64, series ...*data.Series) (*chartarea.Chart, *chartarea.Area) {
	c := chartarea.NewChart(NewRegistry())
	a := chartarea.NewArea("Default")
	a.AxisX.ViewMinimum, a.AxisX.ViewMaximum = 0, xmax
	a.AxisY.ViewMinimum, a.AxisY.ViewMaximum = 0, ymax
	c.AddArea(a)
	for _, s := range series {
		c.Series.MustAdd(s)
	}
	return c, a
}

func rectangle(x0, y0, x1, y1 vg.Length) vg.Rectangle {
	return vg.Rectangle{Min: vg.Point{X: x0, Y: y0}, Max: vg.Point{X: x1, Y: y1}}
}

func assertRect(t *testing.T, want, got vg.Rectangle, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, float64(want.Min.X), float64(got.Min.X), 1e-9, msgAndArgs...)
	assert.InDelta(t, float64(want.Min.Y), float64(got.Min.Y), 1e-9, msgAndArgs...)
	assert.InDelta(t, float64(want.Max.X), float64(got.Max.X), 1e-9, msgAndArgs...)
	assert.InDelta(t, float64(want.Max.Y), float64(got.Max.Y), 1e-9, msgAndArgs...)
}

func TestColumnSideBySide(t *testing.T) {
	a, b := columns("a", 1, 2, 3), columns("b", 1, 2, 3)
	c, _ := newChart(4, 10, a, b)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	// A category is 25 wide, 80% of it is split between the two series.
	rects := rec.Filter(chartarea.RectanglePrimitive)
	require.Len(t, rects, 6)
	assertRect(t, rectangle(15, 0, 25, 10), rects[0].Rect, "a[0]")
	assertRect(t, rectangle(40, 0, 50, 20), rects[1].Rect, "a[1]")
	assertRect(t, rectangle(25, 0, 35, 10), rects[3].Rect, "b[0]")
	assertRect(t, rectangle(75, 0, 85, 30), rects[5].Rect, "b[2]")

	require.Equal(t, 6, c.HotRegions.Len())
	hr, ok := c.HotRegions.Find(rec, vg.Point{X: 20, Y: 5})
	require.True(t, ok)
	assert.Equal(t, "a", hr.SeriesName)
	assert.Equal(t, 0, hr.PointIndex)
	hr, ok = c.HotRegions.Find(rec, vg.Point{X: 80, Y: 25})
	require.True(t, ok)
	assert.Equal(t, "b", hr.SeriesName)
	assert.Equal(t, 2, hr.PointIndex)
	_, ok = c.HotRegions.Find(rec, vg.Point{X: 20, Y: 15})
	assert.False(t, ok, "above the bar")

	assert.InDelta(t, 45, float64(a.Points[1].PositionRel.X), 1e-9)
	assert.InDelta(t, 20, float64(a.Points[1].PositionRel.Y), 1e-9)
}

func TestColumnLabels(t *testing.T) {
	s := columns("a", 1, 2)
	s.Style.IsValueShownAsLabel = true
	s.Style.LabelFormat = "F1"
	s.Points[1].Label = "#SER #VALX"
	c, _ := newChart(3, 10, s)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	texts := rec.Filter(chartarea.TextPrimitive)
	require.Len(t, texts, 2)
	assert.Equal(t, "1.0", texts[0].Text)
	assert.Equal(t, "a 2", texts[1].Text)
	assert.Greater(t, float64(texts[0].Points[0].Y), 10.0, "label sits above the bar")
}

func TestColumn3D(t *testing.T) {
	s := columns("a", 1, 2)
	c, area := newChart(3, 10, s)
	area.Area3D.Enable3D = true
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	assert.Equal(t, 0, rec.Count(chartarea.RectanglePrimitive))
	assert.Equal(t, 6, rec.Count(chartarea.PolygonPrimitive), "front, side and top face per bar")
	assert.Equal(t, 2, c.HotRegions.Len())
	for _, p := range rec.Filter(chartarea.PolygonPrimitive) {
		assert.Len(t, p.Points, 4)
	}
}

func TestStockArity(t *testing.T) {
	s := data.NewSeries("prices", StockName)
	s.AddXY(1, 10, 2, 4, 8)
	s.AddXY(2, 9, 1, 7)
	c, _ := newChart(3, 10, s)
	rec := chartarea.NewRecorder(100, 100)

	err := c.Render(rec)
	require.Error(t, err)
	assert.True(t, merry.Is(err, chartarea.ErrInsufficientYValues))
	assert.Equal(t, "prices", merry.Value(err, "series"))
	assert.Equal(t, 1, merry.Value(err, "point"))
}

func TestStockMarks(t *testing.T) {
	s := data.NewSeries("prices", StockName)
	s.AddXY(1, 10, 2, 4, 8)
	s.AddXY(2, 9, 1, 7, 3)
	s.Points[1].Props = data.CustomProperties{}
	s.Points[1].Props.Set(chartarea.PropShowOpenClose, "Open")
	c, _ := newChart(3, 10, s)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	// High-low line plus open and close for the first point, no close
	// mark for the second.
	lines := rec.Filter(chartarea.LinePrimitive)
	require.Len(t, lines, 5)
	assert.InDelta(t, 20, float64(lines[0].Points[0].Y), 1e-9, "low")
	assert.InDelta(t, 100, float64(lines[0].Points[1].Y), 1e-9, "high")
	assert.InDelta(t, float64(lines[0].Points[0].X), float64(lines[1].Points[1].X), 1e-9,
		"open mark ends at the center")

	hr, ok := c.HotRegions.Find(rec, lines[3].Points[0])
	require.True(t, ok)
	assert.Equal(t, 1, hr.PointIndex)
}

func TestCandlestick(t *testing.T) {
	s := data.NewSeries("prices", CandlestickName)
	s.AddXY(1, 10, 2, 4, 8)
	s.AddXY(2, 9, 1, 7, 3)
	c, _ := newChart(3, 10, s)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	assert.Equal(t, 2, rec.Count(chartarea.LinePrimitive))
	bodies := rec.Filter(chartarea.RectanglePrimitive)
	require.Len(t, bodies, 2)
	assert.Equal(t, color.White, bodies[0].Fill, "rising")
	assert.Equal(t, c.Style.SeriesColor(0), bodies[1].Fill, "falling")
	assert.InDelta(t, 30, float64(bodies[1].Rect.Min.Y), 1e-9)
	assert.InDelta(t, 70, float64(bodies[1].Rect.Max.Y), 1e-9)

	s.Props.Set(chartarea.PropPriceDownColor, "red")
	rec.Reset()
	require.NoError(t, c.Paint(rec))
	bodies = rec.Filter(chartarea.RectanglePrimitive)
	require.Len(t, bodies, 2)
	r, g, b, _ := bodies[1].Fill.RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})
}

func TestFastPointDecimation(t *testing.T) {
	flat := data.NewSeries("flat", FastPointName)
	for i := 0; i < 1000; i++ {
		flat.AddXY(float64(i), 5)
	}
	flat.Props.Set(chartarea.PropPermittedPixelError, "0.49")
	c, _ := newChart(1000, 10, flat)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	// 0.49 of 100 units is 4.9 on the X axis: every fifth point is drawn
	// plus the last one.
	markers := rec.Filter(chartarea.MarkerPrimitive)
	require.Len(t, markers, 201)
	assert.InDelta(t, 0, float64(markers[0].Points[0].X), 1e-9)
	assert.InDelta(t, 0.5, float64(markers[1].Points[0].X), 1e-9)
	assert.InDelta(t, 99.9, float64(markers[200].Points[0].X), 1e-9)
	assert.Equal(t, data.MarkerCircle, markers[0].Marker.Style)
	assert.Equal(t, 201, c.HotRegions.Len())
}

func TestFastPointKeepsDistantPoints(t *testing.T) {
	zigzag := data.NewSeries("zigzag", FastPointName)
	for i := 0; i < 100; i++ {
		zigzag.AddXY(float64(i), float64(1+8*(i%2)))
	}
	zigzag.AddXY(50.5, 20)
	c, _ := newChart(100, 10, zigzag)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	assert.Equal(t, 100, rec.Count(chartarea.MarkerPrimitive), "point above the view is not drawn")
}

func TestErrorBarLinked(t *testing.T) {
	a := columns("a", 1, 2, 3)
	eb := data.NewSeries("err", ErrorBarName)
	eb.Props.Set(chartarea.PropErrorBarSeries, "a")
	eb.Props.Set(chartarea.PropErrorBarType, "StandardDeviation")
	c, _ := newChart(4, 10, a, eb)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	require.Len(t, eb.Points, 3)
	for i, want := range [][]float64{{1, 0, 2}, {2, 1, 3}, {3, 2, 4}} {
		assert.InDeltaSlice(t, want, eb.Points[i].YValues, 1e-12, "point %d", i)
		assert.Equal(t, float64(i+1), eb.XValue(i))
	}

	// Bar, two whiskers and the center line per point.
	assert.Equal(t, 12, rec.Count(chartarea.LinePrimitive))
	regions := c.HotRegions.Regions()
	require.Len(t, regions, 6)
	assert.Equal(t, "err", regions[4].SeriesName)
	// The column is 20 wide, the error bar 40% of it.
	assertRect(t, rectangle(46, 10, 54, 30), regions[4].Rect)
}

func TestErrorBarUnknownLink(t *testing.T) {
	eb := data.NewSeries("err", ErrorBarName)
	eb.Props.Set(chartarea.PropErrorBarSeries, "missing:Y2")
	c, _ := newChart(4, 10, eb)
	err := c.Render(chartarea.NewRecorder(100, 100))
	require.Error(t, err)
	assert.True(t, merry.Is(err, chartarea.ErrUnknownSeries))
	assert.Equal(t, "missing", merry.Value(err, "series"))
}

func TestErrorBarStyles(t *testing.T) {
	eb := data.NewSeries("err", ErrorBarName)
	eb.AddXY(1, 5, 3, 8)
	eb.AddXY(2, 5, 3, 8)
	eb.Props.Set(chartarea.PropErrorBarCenterMarkerStyle, "None")
	eb.Points[1].Props = data.CustomProperties{}
	eb.Points[1].Props.Set(chartarea.PropErrorBarStyle, "UpperError")
	c, _ := newChart(3, 10, eb)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	// Explicit errors are kept.
	assert.Equal(t, []float64{5, 3, 8}, eb.Points[0].YValues)
	// Bar and two whiskers, then bar and the upper whisker.
	lines := rec.Filter(chartarea.LinePrimitive)
	require.Len(t, lines, 5)
	assert.InDelta(t, 50, float64(lines[3].Points[0].Y), 1e-9, "upper error bar starts at the center")
	assert.InDelta(t, 80, float64(lines[3].Points[1].Y), 1e-9)
}

func TestBoxPlotFromSeries(t *testing.T) {
	samples := data.NewSeries("samples", FastPointName)
	samples.Hidden = true
	for i := 1; i <= 10; i++ {
		samples.AddY(float64(i))
	}
	box := data.NewSeries("box", BoxPlotName)
	box.Props.Set(chartarea.PropBoxPlotSeries, "samples")
	box.Props.Set(chartarea.PropBoxPlotShowUnusualValues, "true")
	c, _ := newChart(2, 10, samples, box)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	require.Len(t, box.Points, 1)
	p := box.Points[0]
	assert.Equal(t, "samples", p.AxisLabel)
	assert.True(t, box.IsXValueIndexed)
	assert.InDeltaSlice(t, []float64{1.9, 9.1, 3.25, 7.75, 5.5, 5.5, 1, 10}, p.YValues, 1e-9)

	// Two whiskers with caps, median and average; one box; the unusual
	// values 1 and 10 as markers.
	assert.Equal(t, 6, rec.Count(chartarea.LinePrimitive))
	assert.Equal(t, 1, rec.Count(chartarea.RectanglePrimitive))
	assert.Equal(t, 2, rec.Count(chartarea.MarkerPrimitive))
	require.Equal(t, 1, c.HotRegions.Len())
	assertRect(t, rectangle(30, 19, 70, 91), c.HotRegions.Regions()[0].Rect)
}

func TestBoxPlotPointReference(t *testing.T) {
	low, high := data.NewSeries("low", FastPointName), data.NewSeries("high", FastPointName)
	low.Hidden, high.Hidden = true, true
	for _, v := range []float64{1, 2, 3} {
		low.AddY(v)
		high.AddY(v + 5)
	}
	box := data.NewSeries("box", BoxPlotName)
	box.AddXY(1, 0, 0, 0, 0, 0, 0)
	box.AddXY(2, 1, 2, 3, 4, 5, 6)
	box.Points[0].Props = data.CustomProperties{}
	box.Points[0].Props.Set(chartarea.PropBoxPlotSeries, "low;high")
	c, _ := newChart(3, 10, low, high, box)
	require.NoError(t, c.Render(chartarea.NewRecorder(100, 100)))

	assert.InDelta(t, 4.5, box.Points[0].YValues[MedianIndex], 1e-12)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, box.Points[1].YValues, "explicit values are kept")
}

func pieSeries(name, chartType string, values ...float64) *data.Series {
	s := data.NewSeries(name, chartType)
	for _, v := range values {
		s.AddY(v)
	}
	return s
}

func TestPieSlices(t *testing.T) {
	s := pieSeries("shares", PieName, 50, 30, 10, 5, 5)
	s.Props.Set(chartarea.PropCollectedThreshold, "8")
	s.Props.Set(chartarea.PropCollectedLabel, "Rest")

	slices, err := NewPie().slices(s, 90)
	require.NoError(t, err)
	require.Len(t, slices, 4)
	want := []slice{
		{index: 0, value: 50, start: 90, sweep: 180},
		{index: 1, value: 30, start: 270, sweep: 108},
		{index: 2, value: 10, start: 378, sweep: 36},
		{index: -1, value: 10, label: "Rest", start: 414, sweep: 36},
	}
	for i := range want {
		assert.Equal(t, want[i].index, slices[i].index, "slice %d", i)
		assert.Equal(t, want[i].label, slices[i].label, "slice %d", i)
		assert.InDelta(t, want[i].value, slices[i].value, 1e-12, "slice %d", i)
		assert.InDelta(t, want[i].start, slices[i].start, 1e-9, "slice %d", i)
		assert.InDelta(t, want[i].sweep, slices[i].sweep, 1e-9, "slice %d", i)
	}

	// A single small point is not collected.
	s = pieSeries("shares", PieName, 50, 30, 15, 5)
	s.Props.Set(chartarea.PropCollectedThreshold, "8")
	slices, err = NewPie().slices(s, 0)
	require.NoError(t, err)
	require.Len(t, slices, 4)
	assert.Equal(t, 3, slices[3].index)

	s = pieSeries("zero", PieName, 0, 0)
	slices, err = NewPie().slices(s, 0)
	require.NoError(t, err)
	assert.Empty(t, slices)
}

func TestPieRender(t *testing.T) {
	s := pieSeries("shares", PieName, 50, 30, 20)
	ignored := pieSeries("second", PieName, 1, 2)
	c := chartarea.NewChart(NewRegistry())
	c.AddArea(chartarea.NewArea("Default"))
	c.Series.MustAdd(s)
	c.Series.MustAdd(ignored)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	polys := rec.Filter(chartarea.PolygonPrimitive)
	require.Len(t, polys, 3, "only the first pie series is drawn")
	assert.Equal(t, c.Style.SeriesColor(0), polys[0].Fill)
	assert.Equal(t, c.Style.SeriesColor(2), polys[2].Fill)
	// The right half of the circle around (50,50) with radius 45.
	r := polys[0].Rect
	assert.InDelta(t, 50, float64(r.Min.X), 1e-9)
	assert.InDelta(t, 5, float64(r.Min.Y), 1e-9)
	assert.InDelta(t, 95, float64(r.Max.X), 0.1)
	assert.InDelta(t, 95, float64(r.Max.Y), 1e-9)

	for _, tc := range []struct {
		at    vg.Point
		index int
	}{
		{vg.Point{X: 70, Y: 55}, 0},
		{vg.Point{X: 30, Y: 45}, 1},
		{vg.Point{X: 40, Y: 70}, 2},
	} {
		hr, ok := c.HotRegions.Find(rec, tc.at)
		require.True(t, ok, "%v", tc.at)
		assert.Equal(t, "shares", hr.SeriesName)
		assert.Equal(t, tc.index, hr.PointIndex, "%v", tc.at)
	}
	_, ok := c.HotRegions.Find(rec, vg.Point{X: 2, Y: 2})
	assert.False(t, ok)
}

func TestDoughnutRender(t *testing.T) {
	s := pieSeries("shares", DoughnutName, 50, 30, 20)
	s.Points[0].Label = "#VALY"
	c := chartarea.NewChart(NewRegistry())
	c.AddArea(chartarea.NewArea("Default"))
	c.Series.MustAdd(s)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	assert.Equal(t, 3, rec.Count(chartarea.PolygonPrimitive))
	_, ok := c.HotRegions.Find(rec, vg.Point{X: 50, Y: 50})
	assert.False(t, ok, "the hole is not part of a slice")
	hr, ok := c.HotRegions.Find(rec, vg.Point{X: 88, Y: 55})
	require.True(t, ok)
	assert.Equal(t, 0, hr.PointIndex)

	texts := rec.Filter(chartarea.TextPrimitive)
	require.Len(t, texts, 1)
	assert.Equal(t, "50", texts[0].Text)
	// The label sits in the middle of the ring, right of the center.
	assert.InDelta(t, 50+0.8*45, float64(s.Points[0].PositionRel.X), 1e-9)
	assert.InDelta(t, 50, float64(s.Points[0].PositionRel.Y), 1e-9)
}

func TestLabelsAfterAllSeries(t *testing.T) {
	a, b := columns("a", 1, 2), columns("b", 1, 2)
	a.Style.IsValueShownAsLabel = true
	b.Style.IsValueShownAsLabel = true
	c, _ := newChart(3, 10, a, b)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	firstText, lastRect := -1, -1
	for i, p := range rec.Primitives {
		switch p.Kind {
		case chartarea.TextPrimitive:
			if firstText < 0 {
				firstText = i
			}
		case chartarea.RectanglePrimitive:
			lastRect = i
		}
	}
	require.Equal(t, 4, rec.Count(chartarea.TextPrimitive))
	assert.Greater(t, firstText, lastRect, "no bar of b may cover a label of a")
}

func TestStockTriangles(t *testing.T) {
	s := data.NewSeries("prices", StockName)
	s.AddXY(1, 10, 2, 4, 8)
	s.AddXY(2, 9, 1, 7, 3)
	s.Props.Set(chartarea.PropOpenCloseStyle, "Triangle")
	s.Points[1].Props = data.CustomProperties{}
	s.Points[1].Props.Set(chartarea.PropShowOpenClose, "Close")
	c, _ := newChart(4, 10, s)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	assert.Equal(t, 2, rec.Count(chartarea.LinePrimitive), "high-low lines")
	tris := rec.Filter(chartarea.PolygonPrimitive)
	require.Len(t, tris, 3)
	// The bar is 20 wide; triangles point at the center and are 10 high.
	for i, want := range [][]vg.Point{
		{{X: 15, Y: 45}, {X: 15, Y: 35}, {X: 25, Y: 40}},
		{{X: 35, Y: 85}, {X: 35, Y: 75}, {X: 25, Y: 80}},
		{{X: 60, Y: 35}, {X: 60, Y: 25}, {X: 50, Y: 30}},
	} {
		require.Len(t, tris[i].Points, 3)
		for k := range want {
			assert.InDelta(t, float64(want[k].X), float64(tris[i].Points[k].X), 1e-9, "triangle %d", i)
			assert.InDelta(t, float64(want[k].Y), float64(tris[i].Points[k].Y), 1e-9, "triangle %d", i)
		}
	}
	assert.Equal(t, 2, c.HotRegions.Len())
}

func TestInvalidCustomProperties(t *testing.T) {
	for _, tc := range []struct {
		name  string
		chart func() *chartarea.Chart
		want  error
	}{
		{"OpenCloseStyle", func() *chartarea.Chart {
			s := data.NewSeries("prices", StockName)
			s.AddXY(1, 10, 2, 4, 8)
			s.Props.Set(chartarea.PropOpenCloseStyle, "Wedge")
			c, _ := newChart(2, 10, s)
			return c
		}, chartarea.ErrInvalidCustomProperty},
		{"ErrorBarStyle", func() *chartarea.Chart {
			eb := data.NewSeries("err", ErrorBarName)
			eb.AddXY(1, 5, 3, 8)
			eb.Props.Set(chartarea.PropErrorBarStyle, "Sideways")
			c, _ := newChart(2, 10, eb)
			return c
		}, chartarea.ErrInvalidCustomProperty},
		{"point DrawSideBySide", func() *chartarea.Chart {
			s := columns("a", 1, 2)
			s.Points[1].Props = data.CustomProperties{}
			s.Points[1].Props.Set(chartarea.PropDrawSideBySide, "maybe")
			c, _ := newChart(3, 10, s)
			return c
		}, chartarea.ErrInvalidCustomProperty},
		{"PermittedPixelError", func() *chartarea.Chart {
			s := data.NewSeries("dots", FastPointName)
			s.AddXY(1, 5)
			s.Props.Set(chartarea.PropPermittedPixelError, "2")
			c, _ := newChart(2, 10, s)
			return c
		}, chartarea.ErrOutOfRange},
		{"BoxPlotPercentile", func() *chartarea.Chart {
			box := data.NewSeries("box", BoxPlotName)
			box.AddXY(1, 1, 9, 3, 7, 5, 5)
			box.Props.Set(chartarea.PropBoxPlotPercentile, "60")
			c, _ := newChart(2, 10, box)
			return c
		}, chartarea.ErrOutOfRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.chart().Render(chartarea.NewRecorder(100, 100))
			require.Error(t, err)
			assert.True(t, merry.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestErrorBarPercentage(t *testing.T) {
	a := columns("a", 1, 2, 3)
	eb := data.NewSeries("err", ErrorBarName)
	eb.Props.Set(chartarea.PropErrorBarSeries, "a")
	eb.Props.Set(chartarea.PropErrorBarType, "Percentage(10)")
	c, _ := newChart(4, 10, a, eb)
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	require.Len(t, eb.Points, 3)
	for i, want := range [][]float64{{1, 0.9, 1.1}, {2, 1.8, 2.2}, {3, 2.7, 3.3}} {
		assert.InDeltaSlice(t, want, eb.Points[i].YValues, 1e-12, "point %d", i)
	}
	assert.Equal(t, 12, rec.Count(chartarea.LinePrimitive))
	regions := c.HotRegions.Regions()
	require.Len(t, regions, 6)
	assertRect(t, rectangle(46, 18, 54, 22), regions[4].Rect)
}

func TestRender3D(t *testing.T) {
	for _, tc := range []struct {
		name   string
		series func() *data.Series
		counts map[chartarea.PrimitiveKind]int
		hot    int
	}{
		{"Stock", func() *data.Series {
			s := data.NewSeries("prices", StockName)
			s.AddXY(1, 10, 2, 4, 8)
			s.AddXY(2, 9, 1, 7, 3)
			return s
		}, map[chartarea.PrimitiveKind]int{chartarea.LinePrimitive: 6}, 2},
		{"Candlestick", func() *data.Series {
			s := data.NewSeries("prices", CandlestickName)
			s.AddXY(1, 10, 2, 4, 8)
			s.AddXY(2, 9, 1, 7, 3)
			return s
		}, map[chartarea.PrimitiveKind]int{
			chartarea.LinePrimitive:      2,
			chartarea.PolygonPrimitive:   6,
			chartarea.RectanglePrimitive: 0,
		}, 2},
		{"ErrorBar", func() *data.Series {
			eb := data.NewSeries("err", ErrorBarName)
			eb.AddXY(1, 5, 3, 8)
			eb.AddXY(2, 5, 3, 8)
			return eb
		}, map[chartarea.PrimitiveKind]int{chartarea.LinePrimitive: 8}, 2},
		{"BoxPlot", func() *data.Series {
			box := data.NewSeries("box", BoxPlotName)
			box.AddXY(1, 1, 9, 3, 7, 5, 5)
			return box
		}, map[chartarea.PrimitiveKind]int{
			chartarea.LinePrimitive:      6,
			chartarea.PolygonPrimitive:   3,
			chartarea.RectanglePrimitive: 0,
		}, 1},
		{"FastPoint", func() *data.Series {
			s := data.NewSeries("dots", FastPointName)
			s.AddXY(1, 2)
			s.AddXY(2, 8)
			return s
		}, map[chartarea.PrimitiveKind]int{chartarea.MarkerPrimitive: 2}, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.series()
			c, area := newChart(3, 10, s)
			area.Area3D.Enable3D = true
			rec := chartarea.NewRecorder(100, 100)
			require.NoError(t, c.Render(rec))

			for kind, n := range tc.counts {
				assert.Equal(t, n, rec.Count(kind), "%v", kind)
			}
			assert.Equal(t, tc.hot, c.HotRegions.Len())
		})
	}
}

func TestFastPoint3DProjection(t *testing.T) {
	s := data.NewSeries("dots", FastPointName)
	s.AddXY(1, 2)
	s.AddXY(2, 8)
	c, area := newChart(3, 10, s)
	area.Area3D.Enable3D = true
	rec := chartarea.NewRecorder(100, 100)
	require.NoError(t, c.Render(rec))

	z, depth, err := area.SeriesZPositionAndDepth([]*data.Series{s}, s)
	require.NoError(t, err)
	markers := rec.Filter(chartarea.MarkerPrimitive)
	require.Len(t, markers, 2)
	for i := range s.Points {
		flat := area.MapXY(area.AxisX, area.AxisY, s.XValue(i), s.Points[i].YValues[0])
		want := area.Matrix.Project(chartarea.Point3D{X: float64(flat.X), Y: float64(flat.Y), Z: z + depth/2})[0]
		assert.InDelta(t, float64(want.X), float64(markers[i].Points[0].X), 1e-9, "point %d", i)
		assert.InDelta(t, float64(want.Y), float64(markers[i].Points[0].Y), 1e-9, "point %d", i)
		assert.Equal(t, markers[i].Points[0], s.Points[i].PositionRel)
	}
}
