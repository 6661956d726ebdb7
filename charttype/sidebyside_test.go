package charttype

import (
	"fmt"
	"math"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
)

func TestResolveLayout(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			const total = 0.8
			sum := 0.0
			left := -total / 2
			for i := 0; i < n; i++ {
				l := ResolveLayout(total, n, i)
				sum += l.Width
				assert.InDelta(t, left, l.Offset-l.Width/2, 1e-12, "box %d starts where box %d ends", i, i-1)
				left = l.Offset + l.Width/2
			}
			assert.InDelta(t, total, sum, 1e-12)
			assert.InDelta(t, total/2, left, 1e-12)
		})
	}

	middle := ResolveLayout(0.9, 3, 1)
	assert.InDelta(t, 0, middle.Offset, 1e-12)
	assert.InDelta(t, 0.3, middle.Width, 1e-12)
	assert.Equal(t, Layout{Width: 0.5}, ResolveLayout(0.5, 0, 0))
}

func TestParseSideBySide(t *testing.T) {
	for in, want := range map[string]SideBySide{
		"":      SideBySideAuto,
		"auto":  SideBySideAuto,
		"True":  SideBySideTrue,
		"FALSE": SideBySideFalse,
		" true": SideBySideTrue,
	} {
		got, err := ParseSideBySide(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSideBySide("sometimes")
	assert.True(t, merry.Is(err, chartarea.ErrInvalidCustomProperty))
	assert.Equal(t, chartarea.PropDrawSideBySide, merry.Value(err, "property"))
}

func columns(name string, xs ...float64) *data.Series {
	s := data.NewSeries(name, ColumnName)
	for i, x := range xs {
		s.AddXY(x, float64(i+1))
	}
	return s
}

func testCommon(series ...*data.Series) (*chartarea.Common, *chartarea.Area) {
	coll := data.NewCollection()
	for _, s := range series {
		coll.MustAdd(s)
	}
	area := chartarea.NewArea("Default")
	area.AxisX.ViewMinimum, area.AxisX.ViewMaximum = 0, 10
	area.AxisY.ViewMinimum, area.AxisY.ViewMaximum = 0, 10
	return &chartarea.Common{
		Series:      coll,
		Types:       NewRegistry(),
		HotRegions:  &chartarea.HotRegions{},
		SmartLabels: &chartarea.SmartLabels{},
		Images:      chartarea.NewImageLoader(),
		Style:       chartarea.DefaultStyle(10),
	}, area
}

func peerNames(g group) []string {
	var names []string
	for _, s := range g.Peers {
		names = append(names, s.Name)
	}
	return names
}

func TestPeerGroup(t *testing.T) {
	t.Run("aligned", func(t *testing.T) {
		a, b, c := columns("a", 1, 2, 3), columns("b", 1, 2, 3), columns("c", 1, 2, 3)
		common, area := testCommon(a, b, c)
		g, err := peerGroup(common, area, b)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, peerNames(g))
		assert.Equal(t, 1, g.Index)
		assert.Equal(t, 1.0, g.Interval)
	})

	t.Run("misaligned", func(t *testing.T) {
		a, b := columns("a", 1, 2, 3), columns("b", 1.5, 2.5)
		common, area := testCommon(a, b)
		g, err := peerGroup(common, area, a)
		require.NoError(t, err)
		assert.Empty(t, g.Peers)
		assert.Equal(t, 1, g.N())
		assert.Equal(t, 0.5, g.Interval)

		b.Props.Set(chartarea.PropDrawSideBySide, "True")
		a.Props.Set(chartarea.PropDrawSideBySide, "True")
		g, err = peerGroup(common, area, a)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, peerNames(g))
	})

	t.Run("false", func(t *testing.T) {
		a, b, c := columns("a", 1, 2), columns("b", 1, 2), columns("c", 1, 2)
		b.Props.Set(chartarea.PropDrawSideBySide, "False")
		common, area := testCommon(a, b, c)
		g, err := peerGroup(common, area, c)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, peerNames(g))
		assert.Equal(t, 1, g.Index)

		g, err = peerGroup(common, area, b)
		require.NoError(t, err)
		assert.Empty(t, g.Peers)
	})

	t.Run("secondary axis", func(t *testing.T) {
		a, b := columns("a", 1, 2), columns("b", 1, 2)
		b.XAxisType = data.Secondary
		common, area := testCommon(a, b)
		area.AxisX2.ViewMinimum, area.AxisX2.ViewMaximum = 0, 10
		g, err := peerGroup(common, area, a)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, peerNames(g))
	})

	t.Run("linked error bars", func(t *testing.T) {
		a := columns("a", 1, 2)
		eb := data.NewSeries("err", ErrorBarName)
		eb.Props.Set(chartarea.PropErrorBarSeries, "a")
		common, area := testCommon(a, eb)
		g, err := peerGroup(common, area, a)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, peerNames(g))
	})

	t.Run("invalid policy", func(t *testing.T) {
		a := columns("a", 1, 2)
		a.Props.Set(chartarea.PropDrawSideBySide, "maybe")
		common, area := testCommon(a)
		_, err := peerGroup(common, area, a)
		assert.True(t, merry.Is(err, chartarea.ErrInvalidCustomProperty))
		assert.Equal(t, "a", merry.Value(err, "series"))
	})
}

func TestPointsInterval(t *testing.T) {
	lin := chartarea.NewAxis()
	assert.Equal(t, 2.0, pointsInterval(lin, []*data.Series{columns("a", 1, 5, 3, 9)}))
	assert.Equal(t, 1.0, pointsInterval(lin, []*data.Series{columns("a", 4)}))
	assert.Equal(t, 1.0, pointsInterval(lin, []*data.Series{columns("a", 2, 2, 2)}))

	indexed := columns("i", 10, 20)
	indexed.IsXValueIndexed = true
	assert.Equal(t, 1.0, pointsInterval(lin, []*data.Series{columns("a", 1, 1.5), indexed}))

	log := chartarea.NewAxis()
	log.ScaleType = chartarea.Logarithmic
	assert.InDelta(t, 1, pointsInterval(log, []*data.Series{columns("a", 1, 10, 100)}), 1e-12)
	assert.InDelta(t, math.Log10(2), pointsInterval(log, []*data.Series{columns("a", 1, 2, 100)}), 1e-12)
}

func TestBoxLayoutPlace(t *testing.T) {
	a, b := columns("a", 1, 2, 3), columns("b", 1, 2, 3)
	common, area := testCommon(a, b)
	rec := chartarea.NewRecorder(100, 100)

	bl, err := newBoxLayout(rec, common, area, b)
	require.NoError(t, err)
	// One category is a tenth of the area, 80% of it is filled.
	assert.InDelta(t, 8, float64(bl.total), 1e-9)

	w, off, err := bl.place(b, &b.Points[0])
	require.NoError(t, err)
	assert.InDelta(t, 4, float64(w), 1e-9)
	assert.InDelta(t, 2, float64(off), 1e-9)

	b.Points[1].Props = data.CustomProperties{chartarea.PropDrawSideBySide: "False"}
	w, off, err = bl.place(b, &b.Points[1])
	require.NoError(t, err)
	assert.InDelta(t, 8, float64(w), 1e-9)
	assert.InDelta(t, 0, float64(off), 1e-9)

	b.Props.Set(chartarea.PropMaxPixelPointWidth, "2")
	bl, err = newBoxLayout(rec, common, area, b)
	require.NoError(t, err)
	w, _, err = bl.place(b, &b.Points[0])
	require.NoError(t, err)
	assert.InDelta(t, 2, float64(w), 1e-9, "2 pixels at 72 DPI on a 100pt surface")

	b.Props.Set(chartarea.PropPointWidth, "5")
	_, err = newBoxLayout(rec, common, area, b)
	assert.True(t, merry.Is(err, chartarea.ErrOutOfRange))
}

func TestBoxLayoutPointOverridesSeries(t *testing.T) {
	a, b := columns("a", 1, 2, 3), columns("b", 1, 2, 3)
	b.Props.Set(chartarea.PropDrawSideBySide, "False")
	common, area := testCommon(a, b)
	rec := chartarea.NewRecorder(100, 100)

	bl, err := newBoxLayout(rec, common, area, b)
	require.NoError(t, err)
	w, off, err := bl.place(b, &b.Points[0])
	require.NoError(t, err)
	assert.InDelta(t, 8, float64(w), 1e-9, "the series is not side by side")
	assert.InDelta(t, 0, float64(off), 1e-9)

	b.Points[1].Props = data.CustomProperties{}
	b.Points[1].Props.Set(chartarea.PropDrawSideBySide, "True")
	w, off, err = bl.place(b, &b.Points[1])
	require.NoError(t, err)
	assert.InDelta(t, 4, float64(w), 1e-9, "the point takes its slot next to a")
	assert.InDelta(t, 2, float64(off), 1e-9)

	b.Points[2].Props = data.CustomProperties{}
	b.Points[2].Props.Set(chartarea.PropDrawSideBySide, "maybe")
	_, _, err = bl.place(b, &b.Points[2])
	assert.True(t, merry.Is(err, chartarea.ErrInvalidCustomProperty))
	assert.Equal(t, "b", merry.Value(err, "series"))
}
