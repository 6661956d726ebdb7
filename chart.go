package chartarea

import (
	"sort"
	"strings"

	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
)

// ----------------------------------------------------------------------------
// Chart types

// Capabilities describe how the chart driver treats a chart type.
type Capabilities struct {
	// YValuesPerPoint is the minimum number of Y values a point needs.
	YValuesPerPoint int

	Stacked                bool
	SideBySide             bool
	SupportLogarithmicAxes bool

	// RequireAxes is false for chart types like pies which ignore axes.
	RequireAxes bool
	Circular    bool

	LegendImage LegendImageStyle
}

// LegendImageStyle is the kind of image drawn in a legend entry.
type LegendImageStyle int

const (
	LegendRectangle LegendImageStyle = iota
	LegendLine
	LegendMarker
)

// A ChartType draws all series of one chart type in an area.
type ChartType interface {
	Name() string
	Capabilities() Capabilities

	// Paint draws the series of the chart type in area to g. A non-nil
	// filter restricts painting to this one series.
	Paint(g Graphics, common *Common, area *Area, filter *data.Series) error
}

// A Preparer computes derived Y values of its series before axes are
// scaled. Prepare must be idempotent as Paint may repeat it.
type Preparer interface {
	Prepare(common *Common, area *Area) error
}

// A SeriesRanger reports the data range series s covers, including the
// extent of its geometry. Chart types without it use data.Range.
type SeriesRanger interface {
	SeriesRange(common *Common, area *Area, s *data.Series) (xmin, xmax, ymin, ymax float64, err error)
}

// A Registry maps chart type names, ignoring case, to chart types.
type Registry struct {
	types map[string]ChartType
}

// NewRegistry returns a registry containing types.
func NewRegistry(types ...ChartType) *Registry {
	r := &Registry{types: make(map[string]ChartType)}
	for _, ct := range types {
		r.Register(ct)
	}
	return r
}

// Register adds ct, replacing a chart type of the same name.
func (r *Registry) Register(ct ChartType) {
	r.types[strings.ToLower(ct.Name())] = ct
}

// Lookup returns the named chart type.
func (r *Registry) Lookup(name string) (ChartType, error) {
	if ct, ok := r.types[strings.ToLower(name)]; ok {
		return ct, nil
	}
	return nil, ErrUnknownChartType.WithValue("type", name).
		WithMessagef("unknown chart type %q", name)
}

// Names returns the names of all registered chart types, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for _, ct := range r.types {
		names = append(names, ct.Name())
	}
	sort.Strings(names)
	return names
}

// ----------------------------------------------------------------------------
// Common

// Common is the state shared by all chart types during one paint pass.
type Common struct {
	Series      *data.Collection
	Types       *Registry
	HotRegions  *HotRegions
	SmartLabels *SmartLabels
	Images      *ImageLoader
	Style       Style
}

// AreaSeries returns the visible series of area in collection order.
func (c *Common) AreaSeries(area *Area) []*data.Series {
	var r []*data.Series
	for _, s := range c.Series.All() {
		if s.Hidden || s.ChartArea != area.Name {
			continue
		}
		r = append(r, s)
	}
	return r
}

// TypeOf returns the chart type series s is drawn with.
func (c *Common) TypeOf(s *data.Series) (ChartType, error) {
	return c.Types.Lookup(s.ChartType)
}

// SeriesIndex returns the position of s in the collection, used to pick a
// palette color.
func (c *Common) SeriesIndex(s *data.Series) int { return int(s.ID()) }

// ----------------------------------------------------------------------------
// Chart

// A Chart is a set of series painted into a set of areas.
type Chart struct {
	Series     *data.Collection
	Areas      []*Area
	Registry   *Registry
	Style      Style
	HotRegions HotRegions
	Images     *ImageLoader

	smartLabels SmartLabels
	types       map[data.SeriesID]ChartType
}

// NewChart returns an empty chart using the chart types of reg.
func NewChart(reg *Registry) *Chart {
	return &Chart{
		Series:   data.NewCollection(),
		Registry: reg,
		Style:    DefaultStyle(10),
		Images:   NewImageLoader(),
	}
}

// AddArea appends area a.
func (c *Chart) AddArea(a *Area) { c.Areas = append(c.Areas, a) }

// Area returns the named area.
func (c *Chart) Area(name string) (*Area, error) {
	for _, a := range c.Areas {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, ErrUnknownArea.WithValue("area", name).
		WithMessagef("unknown chart area %q", name)
}

func (c *Chart) common() *Common {
	return &Common{
		Series:      c.Series,
		Types:       c.Registry,
		HotRegions:  &c.HotRegions,
		SmartLabels: &c.smartLabels,
		Images:      c.Images,
		Style:       c.Style,
	}
}

// Setup resolves the chart type of every series, checks that their areas
// exist, computes derived values and initializes the 3D matrices.
func (c *Chart) Setup() error {
	log := Logger("chart")
	c.types = make(map[data.SeriesID]ChartType)
	for _, s := range c.Series.All() {
		ct, err := c.Registry.Lookup(s.ChartType)
		if err != nil {
			return err
		}
		if _, err := c.Area(s.ChartArea); err != nil {
			return err
		}
		c.types[s.ID()] = ct
	}

	common := c.common()
	for _, a := range c.Areas {
		a.Setup3D()
		for _, ct := range c.areaTypes(common, a) {
			if p, ok := ct.(Preparer); ok {
				if err := p.Prepare(common, a); err != nil {
					return err
				}
			}
		}
	}
	log.Debug("chart set up",
		zap.Int("series", c.Series.Len()),
		zap.Int("areas", len(c.Areas)),
	)
	return nil
}

// areaTypes returns the distinct chart types used in area in order of
// first use.
func (c *Chart) areaTypes(common *Common, area *Area) []ChartType {
	var types []ChartType
	seen := map[ChartType]bool{}
	for _, s := range common.AreaSeries(area) {
		ct := c.types[s.ID()]
		if ct == nil || seen[ct] {
			continue
		}
		seen[ct] = true
		types = append(types, ct)
	}
	return types
}

// Range learns the data ranges of all series, autoscales the axes and
// validates them. Series of chart types without logarithmic axis support
// must not use a logarithmic axis. Areas may share axes, so the data of all areas is
// learned before any axis is scaled.
func (c *Chart) Range() error {
	log := Logger("chart")
	common := c.common()
	axed := make(map[*Area][]*data.Series, len(c.Areas))
	for _, a := range c.Areas {
		for _, s := range common.AreaSeries(a) {
			ct := c.types[s.ID()]
			if ct == nil {
				continue
			}
			caps := ct.Capabilities()
			if !caps.RequireAxes {
				continue
			}
			h, v := a.Axes(s)
			if !caps.SupportLogarithmicAxes && (h.IsLogarithmic() || v.IsLogarithmic()) {
				return ErrInvalidAxis.WithValue("series", s.Name).WithValue("type", ct.Name()).
					WithMessagef("chart type %s of series %q cannot use a logarithmic axis", ct.Name(), s.Name)
			}
			var xmin, xmax, ymin, ymax float64
			if sr, ok := ct.(SeriesRanger); ok {
				var err error
				xmin, xmax, ymin, ymax, err = sr.SeriesRange(common, a, s)
				if err != nil {
					return err
				}
			} else {
				xmin, xmax, ymin, ymax = data.Range(s)
			}
			h.UpdateData(Interval{Min: xmin, Max: xmax})
			v.UpdateData(Interval{Min: ymin, Max: ymax})
			axed[a] = append(axed[a], s)
		}
	}

	for _, a := range c.Areas {
		for _, ax := range []*Axis{a.AxisX, a.AxisY, a.AxisX2, a.AxisY2} {
			ax.Autoscale()
		}
		if err := a.Validate(axed[a]); err != nil {
			return err
		}
		log.Debug("area ranged",
			zap.String("area", a.Name),
			zap.Stringer("x", a.AxisX),
			zap.Stringer("y", a.AxisY),
		)
	}
	return nil
}

// Paint draws all areas to g. The hot regions of the previous paint are
// dropped.
func (c *Chart) Paint(g Graphics) error {
	if c.types == nil {
		if err := c.Setup(); err != nil {
			return err
		}
	}
	c.HotRegions.Reset()
	common := c.common()
	for _, a := range c.Areas {
		c.smartLabels.Reset(a.Position)
		for _, ct := range c.areaTypes(common, a) {
			if err := ct.Paint(g, common, a, nil); err != nil {
				return err
			}
		}
	}
	Logger("chart").Debug("chart painted", zap.Int("hotRegions", c.HotRegions.Len()))
	return nil
}

// Render sets up, ranges and paints c in one go.
func (c *Chart) Render(g Graphics) error {
	if err := c.Setup(); err != nil {
		return err
	}
	if err := c.Range(); err != nil {
		return err
	}
	return c.Paint(g)
}
