package chartarea

import "github.com/ansel1/merry"

// Configuration errors. They are returned from Paint and Setup and abort the
// painting of the chart type they occur in. Use merry.Is to test for them.
var (
	ErrInsufficientYValues   = merry.New("data point has too few Y values")
	ErrInvalidCustomProperty = merry.New("invalid custom property value")
	ErrOutOfRange            = merry.New("custom property value out of range")
	ErrUnknownSeries         = merry.New("unknown series")
	ErrUnknownChartType      = merry.New("unknown chart type")
	ErrUnknownArea           = merry.New("unknown chart area")
	ErrInvalidAxis           = merry.New("invalid axis configuration")
	ErrImage                 = merry.New("cannot load image")
	ErrInvalidColor          = merry.New("invalid color")
	ErrInvalidFacet          = merry.New("invalid facet")
)
