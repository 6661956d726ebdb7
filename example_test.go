package chartarea_test

import (
	"fmt"

	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/charttype"
	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
)

func ExampleFacet() {
	xyz := [][3]float64{
		{10, 5, 1}, {20, 3, 1}, {30, 7, 1}, {40, 2, 1}, {50, 6, 1},
		{10, 2, 2}, {20, 4, 2}, {30, 1, 2}, {40, 3, 2}, {50, 5, 2},
		{20, 4, 3}, {40, 2, 3}, {50, 1, 3},
	}

	sales := data.NewSeries("sales", charttype.ColumnName)
	rows := chartarea.NewPartitioner(2)
	for _, p := range xyz {
		sales.AddXY(p[0], p[1])
		rows.Learn(p[1])
	}

	// One row per Y bucket, one column per Z value, all sharing the axes.
	f, err := chartarea.NewFacet("panel", 2, 3, false, false)
	if err != nil {
		panic(err)
	}
	f.Layout(vg.Rectangle{Max: vg.Point{X: 100, Y: 100}})
	c := chartarea.NewChart(charttype.NewRegistry())
	f.AddTo(c)
	for _, s := range f.Split(sales, func(i int) chartarea.GroupID {
		return chartarea.GroupID{Row: rows.Partition(xyz[i][1]), Col: int(xyz[i][2]) - 1}
	}) {
		c.Series.MustAdd(s)
	}

	rec := chartarea.NewRecorder(600, 400)
	if err := c.Render(rec); err != nil {
		panic(err)
	}

	fmt.Println("rows:", rows.Label(0), rows.Label(1))
	for _, s := range c.Series.All() {
		fmt.Println(s.ChartArea, len(s.Points))
	}
	fmt.Println("bars:", rec.Count(chartarea.RectanglePrimitive))
	y := f.YAxes[0]
	fmt.Printf("y axis: %.2f .. %.2f\n", y.ViewMinimum, y.ViewMaximum)

	// Output:
	// rows: [1, 4) [4, 7]
	// panel[1,1] 2
	// panel[1,2] 3
	// panel[1,3] 2
	// panel[2,1] 3
	// panel[2,2] 2
	// panel[2,3] 1
	// bars: 13
	// y axis: -0.35 .. 7.35
}
