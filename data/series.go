// Package data contains the data model of a chart: series of data points
// kept in a Collection.
//
// A Point refers back to its Series through a SeriesID, an index into the
// Collection holding the series, and never through a pointer.
package data

import (
	"strings"

	"github.com/ansel1/merry"
	"gonum.org/v1/plot/vg"
)

// ErrDuplicateSeries is returned when a series name is added twice to a
// Collection.
var ErrDuplicateSeries = merry.New("duplicate series name")

// SeriesID identifies a series inside its Collection.
type SeriesID int

// NoSeries is the SeriesID of points not yet added to a Collection.
const NoSeries SeriesID = -1

// AxisType selects the primary or the secondary axis of a chart area.
type AxisType int

const (
	Primary AxisType = iota
	Secondary
)

// Series is an ordered sequence of data points drawn with one chart type
// in one chart area.
type Series struct {
	Name      string
	ChartType string
	ChartArea string

	XAxisType AxisType
	YAxisType AxisType

	// YValuesPerPoint is the number of Y values each point is expected
	// to carry. Chart types check against their own arity.
	YValuesPerPoint int

	// IsXValueIndexed makes the X value of a point its 1-based index.
	IsXValueIndexed bool

	// Hidden series are not painted.
	Hidden bool

	Points []Point
	Props  CustomProperties
	Style  Style

	id SeriesID
}

// NewSeries returns an empty series of the given chart type.
func NewSeries(name, chartType string) *Series {
	return &Series{
		Name:            name,
		ChartType:       chartType,
		ChartArea:       "Default",
		YValuesPerPoint: 1,
		Props:           CustomProperties{},
		id:              NoSeries,
	}
}

// ID returns the identifier of s in its Collection or NoSeries.
func (s *Series) ID() SeriesID { return s.id }

// AddXY appends a point with the given X and Y values and returns it.
// The returned pointer is only valid until the next append.
func (s *Series) AddXY(x float64, ys ...float64) *Point {
	s.Points = append(s.Points, Point{
		XValue:  x,
		YValues: ys,
		Series:  s.id,
	})
	return &s.Points[len(s.Points)-1]
}

// AddY appends a point whose X value is its 1-based index.
func (s *Series) AddY(ys ...float64) *Point {
	return s.AddXY(float64(len(s.Points)+1), ys...)
}

// XValue returns the X value of the i'th point of s, taking
// IsXValueIndexed into account.
func (s *Series) XValue(i int) float64 {
	if s.IsXValueIndexed {
		return float64(i + 1)
	}
	return s.Points[i].XValue
}

// IsChartType reports whether s is drawn with the named chart type.
func (s *Series) IsChartType(name string) bool {
	return strings.EqualFold(s.ChartType, name)
}

// Point is a single data point.
type Point struct {
	XValue  float64
	YValues []float64

	// IsEmpty points keep their slot but are not drawn.
	IsEmpty bool

	// Label is an explicit label text, possibly with keywords.
	Label     string
	AxisLabel string

	Props CustomProperties
	Style Style

	// PositionRel is the anchor of the point in relative coordinates as
	// computed by the last paint pass.
	PositionRel vg.Point

	// Series is the series this point belongs to.
	Series SeriesID
}

// Collection holds the series of a chart in declaration order.
type Collection struct {
	series []*Series
	byName map[string]SeriesID
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{byName: make(map[string]SeriesID)}
}

// Add appends s to c and assigns its SeriesID to s and its points.
func (c *Collection) Add(s *Series) (SeriesID, error) {
	if c.byName == nil {
		c.byName = make(map[string]SeriesID)
	}
	if _, dup := c.byName[s.Name]; dup {
		return NoSeries, ErrDuplicateSeries.WithValue("series", s.Name).
			WithMessagef("series %q already exists", s.Name)
	}
	id := SeriesID(len(c.series))
	s.id = id
	if s.Props == nil {
		s.Props = CustomProperties{}
	}
	for i := range s.Points {
		s.Points[i].Series = id
	}
	c.series = append(c.series, s)
	c.byName[s.Name] = id
	return id, nil
}

// MustAdd is like Add but panics on error.
func (c *Collection) MustAdd(s *Series) SeriesID {
	id, err := c.Add(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Len returns the number of series in c.
func (c *Collection) Len() int { return len(c.series) }

// Get returns the series with the given id or nil.
func (c *Collection) Get(id SeriesID) *Series {
	if id < 0 || int(id) >= len(c.series) {
		return nil
	}
	return c.series[id]
}

// Lookup finds a series by name.
func (c *Collection) Lookup(name string) (*Series, bool) {
	id, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.series[id], true
}

// All returns the series of c in declaration order.
func (c *Collection) All() []*Series { return c.series }

// SeriesOf returns the series p belongs to.
func (c *Collection) SeriesOf(p *Point) *Series { return c.Get(p.Series) }
