package charttype

import (
	"strings"

	"github.com/vdobler/chartarea"
)

// Names of the chart types.
const (
	ColumnName      = "Column"
	StockName       = "Stock"
	CandlestickName = "Candlestick"
	ErrorBarName    = "ErrorBar"
	BoxPlotName     = "BoxPlot"
	FastPointName   = "FastPoint"
	PieName         = "Pie"
	DoughnutName    = "Doughnut"
)

// All returns one instance of every chart type.
func All() []chartarea.ChartType {
	return []chartarea.ChartType{
		&Column{},
		NewStock(),
		NewCandlestick(),
		&ErrorBar{},
		&BoxPlot{},
		&FastPoint{},
		NewPie(),
		NewDoughnut(),
	}
}

// NewRegistry returns a registry containing all chart types.
func NewRegistry() *chartarea.Registry {
	return chartarea.NewRegistry(All()...)
}

// defaultPointWidth is the PointWidth of chart types drawing boxes.
func defaultPointWidth(chartType string) float64 {
	if strings.EqualFold(chartType, ErrorBarName) {
		return 0.4
	}
	return 0.8
}
