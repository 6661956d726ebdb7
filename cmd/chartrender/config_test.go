package main

import (
	"os"
	"strings"
	"testing"

	"github.com/ansel1/merry"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
)

// withConfig parses the description into config, runs f and restores
// the previous config.
func withConfig(t *testing.T, configType, description string, f func()) {
	t.Helper()
	saved := config
	defer func() {
		config = saved
		viper.Reset()
	}()
	viper.Reset()
	require.NoError(t, readConfig(strings.NewReader(description), configType))
	f()
}

func record(t *testing.T, c *chartarea.Chart) *chartarea.Recorder {
	t.Helper()
	rec := chartarea.NewRecorder(16*vg.Centimeter, 12*vg.Centimeter)
	require.NoError(t, c.Render(rec))
	return rec
}

func TestSalesDescription(t *testing.T) {
	description, err := os.ReadFile("testdata/sales.yaml")
	require.NoError(t, err)

	withConfig(t, "YAML", string(description), func() {
		assert.Equal(t, "sales.png", config.Out)
		assert.Equal(t, 96.0, config.DPI, "default kept")
		require.Len(t, config.Areas, 2)
		require.NotNil(t, config.Areas[0].Y.Min)
		assert.Equal(t, 0.0, *config.Areas[0].Y.Min)

		c, err := buildChart()
		require.NoError(t, err)
		require.Len(t, c.Areas, 2)
		assert.Equal(t, 6, c.Series.Len())
		assert.Equal(t, vg.Length(9), c.Style.Label.Font.Size)

		rec := record(t, c)

		errs, ok := c.Series.Lookup("North error")
		require.True(t, ok)
		require.Len(t, errs.Points, 4)
		assert.InDeltaSlice(t, []float64{150, 142.5, 157.5}, errs.Points[3].YValues, 1e-9)

		spread, ok := c.Series.Lookup("Spread")
		require.True(t, ok)
		require.Len(t, spread.Points, 2)
		assert.Equal(t, "Monthly North", spread.Points[0].AxisLabel)
		assert.Equal(t, "Monthly South", spread.Points[1].AxisLabel)

		sales, err := c.Area("Sales")
		require.NoError(t, err)
		assert.Equal(t, 0.0, sales.AxisY.ViewMinimum)

		var texts []string
		for _, p := range rec.Filter(chartarea.TextPrimitive) {
			texts = append(texts, p.Text)
		}
		assert.Contains(t, texts, "150")
		assert.NotContains(t, texts, "90", "South shows no labels")
	})
}

func TestTOMLDescription(t *testing.T) {
	const description = `
out = "pie.png"

[[series]]
name = "shares"
type = "Pie"
props = { CollectedThreshold = "10" }

  [[series.points]]
  y = [50.0]
  [[series.points]]
  y = [45.0]
  [[series.points]]
  y = [3.0]
  [[series.points]]
  y = [2.0]
`
	withConfig(t, "TOML", description, func() {
		c, err := buildChart()
		require.NoError(t, err)
		_, err = c.Area("Default")
		require.NoError(t, err)

		rec := record(t, c)
		assert.Equal(t, 3, rec.Count(chartarea.PolygonPrimitive), "two slices and the collected one")
	})
}

func TestFacetDescription(t *testing.T) {
	const description = `
facets:
  - name: p
    rows: 1
    cols: 2
    freeX: true
    pad: [4]
    y: {min: 0}
series:
  - name: a
    type: Column
    area: "p[1,1]"
    points: [{x: 1, y: [3]}, {x: 2, y: [4]}]
  - name: b
    type: Column
    area: "p[1,2]"
    points: [{x: 10, y: [8]}]
`
	withConfig(t, "YAML", description, func() {
		c, err := buildChart()
		require.NoError(t, err)
		require.Len(t, c.Areas, 2, "no default area next to a facet")
		assert.Equal(t, vg.Length(52), c.Areas[1].Position.Min.X)

		record(t, c)
		y := c.Areas[0].AxisY
		assert.Same(t, y, c.Areas[1].AxisY)
		assert.Equal(t, 0.0, y.ViewMinimum)
		assert.InDelta(t, 8.4, y.ViewMaximum, 1e-9)
		assert.NotSame(t, c.Areas[0].AxisX, c.Areas[1].AxisX)
	})
}

func TestInvalidDescriptions(t *testing.T) {
	for _, tc := range []struct {
		name        string
		description string
		want        error
	}{
		{"color", "background: notacolor", chartarea.ErrInvalidColor},
		{"position", "areas: [{name: A, position: [0, 0, 50]}]", errConfig},
		{"zmode", "areas: [{name: A, 3d: {enable: true, zMode: sideways}}]", errConfig},
		{"axis", "series: [{name: s, type: Column, xAxis: tertiary}]", errConfig},
		{"facet", "facets: [{name: f, rows: 0, cols: 2}]", chartarea.ErrInvalidFacet},
		{"pad", "facets: [{name: f, rows: 1, cols: 2, pad: [1, 2, 3]}]", errConfig},
		{"marker", "series: [{name: s, type: FastPoint, style: {marker: hexagon}}]", data.ErrUnknownMarkerStyle},
		{"duplicate", "series: [{name: s, type: Column}, {name: s, type: Pie}]", data.ErrDuplicateSeries},
		{"point color", "series: [{name: s, type: Column, points: [{x: 1, y: [1], style: {color: '#12'}}]}]",
			chartarea.ErrInvalidColor},
	} {
		t.Run(tc.name, func(t *testing.T) {
			withConfig(t, "YAML", tc.description, func() {
				_, err := buildChart()
				require.Error(t, err)
				assert.True(t, merry.Is(err, tc.want), "got %v", err)
			})
		})
	}
}

func TestInvalidAxisNamesSeries(t *testing.T) {
	withConfig(t, "YAML", "series: [{name: s, type: Column, yAxis: left}]", func() {
		_, err := buildChart()
		require.Error(t, err)
		assert.Equal(t, "s", merry.Value(err, "series"))
		assert.Equal(t, "left", merry.Value(err, "axis"))
	})
}
