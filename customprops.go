package chartarea

import (
	"image/color"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vdobler/chartarea/data"
	"golang.org/x/image/colornames"
)

// Names of the custom properties understood by the chart types.
const (
	PropDrawSideBySide = "DrawSideBySide"
	PropPointWidth     = "PointWidth"
	PropZPosition      = "ZPosition"
	PropZDepth         = "ZDepth"

	PropMinPixelPointWidth = "MinPixelPointWidth"
	PropMaxPixelPointWidth = "MaxPixelPointWidth"

	PropOpenCloseStyle = "OpenCloseStyle"
	PropShowOpenClose  = "ShowOpenClose"
	PropLabelValueType = "LabelValueType"
	PropPriceUpColor   = "PriceUpColor"
	PropPriceDownColor = "PriceDownColor"

	PropErrorBarSeries            = "ErrorBarSeries"
	PropErrorBarType              = "ErrorBarType"
	PropErrorBarStyle             = "ErrorBarStyle"
	PropErrorBarCenterMarkerStyle = "ErrorBarCenterMarkerStyle"

	PropBoxPlotSeries            = "BoxPlotSeries"
	PropBoxPlotWhiskerPercentile = "BoxPlotWhiskerPercentile"
	PropBoxPlotPercentile        = "BoxPlotPercentile"
	PropBoxPlotShowAverage       = "BoxPlotShowAverage"
	PropBoxPlotShowMedian        = "BoxPlotShowMedian"
	PropBoxPlotShowUnusualValues = "BoxPlotShowUnusualValues"

	PropPermittedPixelError = "PermittedPixelError"

	PropPieStartAngle      = "PieStartAngle"
	PropExploded           = "Exploded"
	PropPieLabelStyle      = "PieLabelStyle"
	PropPieLineColor       = "PieLineColor"
	PropDoughnutRadius     = "DoughnutRadius"
	PropCollectedThreshold = "CollectedThreshold"
	PropCollectedLabel     = "CollectedLabel"

	PropBarLabelStyle = "BarLabelStyle"
)

// PropertyKind is the value type of a custom property.
type PropertyKind int

const (
	KindString PropertyKind = iota
	KindBool
	KindInt
	KindFloat
	KindEnum
	KindColor
)

func (k PropertyKind) String() string {
	return [...]string{"string", "bool", "int", "float", "enum", "color"}[k]
}

// CustomPropertyInfo describes one custom property.
type CustomPropertyInfo struct {
	Name    string
	Kind    PropertyKind
	Default string

	// Values lists the valid names of an enum property.
	Values []string

	// Min and Max bound numeric properties if HasRange is set.
	Min, Max float64
	HasRange bool

	// ChartTypes lists the chart types the property applies to.
	ChartTypes []string

	// AppliesToPoints is set if the property may be set on single points
	// in addition to whole series.
	AppliesToPoints bool

	Description string
}

var (
	propertyOnce     sync.Once
	propertyRegistry map[string]*CustomPropertyInfo
)

var (
	sideBySideTypes = []string{"Column", "Stock", "Candlestick", "ErrorBar", "BoxPlot"}
	stockTypes      = []string{"Stock", "Candlestick"}
	pieTypes        = []string{"Pie", "Doughnut"}
)

func buildPropertyRegistry() {
	infos := []CustomPropertyInfo{
		{Name: PropDrawSideBySide, Kind: KindEnum, Default: "Auto",
			Values: []string{"Auto", "True", "False"}, ChartTypes: sideBySideTypes,
			Description: "Draw the points of peer series next to each other."},
		{Name: PropPointWidth, Kind: KindFloat, Default: "0.8", Min: 0, Max: 2, HasRange: true,
			ChartTypes:  sideBySideTypes,
			Description: "Width of a point as fraction of the point interval."},
		{Name: PropMinPixelPointWidth, Kind: KindInt, Default: "0", Min: 0, Max: 1000, HasRange: true,
			ChartTypes: sideBySideTypes},
		{Name: PropMaxPixelPointWidth, Kind: KindInt, Default: "0", Min: 0, Max: 1000, HasRange: true,
			ChartTypes: sideBySideTypes},
		{Name: PropZPosition, Kind: KindFloat, Min: 0, Max: 100, HasRange: true,
			Description: "Front plane of the series in percent of the area depth."},
		{Name: PropZDepth, Kind: KindFloat, Min: 0, Max: 100, HasRange: true,
			Description: "Depth of the series in percent of the area depth."},

		{Name: PropOpenCloseStyle, Kind: KindEnum, Default: "Line",
			Values: []string{"Line", "Triangle", "Candlestick"}, ChartTypes: stockTypes, AppliesToPoints: true},
		{Name: PropShowOpenClose, Kind: KindEnum, Default: "Both",
			Values: []string{"Both", "Open", "Close"}, ChartTypes: stockTypes, AppliesToPoints: true},
		{Name: PropLabelValueType, Kind: KindEnum, Default: "Close",
			Values: []string{"High", "Low", "Open", "Close"}, ChartTypes: stockTypes, AppliesToPoints: true},
		{Name: PropPriceUpColor, Kind: KindColor, ChartTypes: []string{"Candlestick"}, AppliesToPoints: true},
		{Name: PropPriceDownColor, Kind: KindColor, ChartTypes: []string{"Candlestick"}, AppliesToPoints: true},

		{Name: PropErrorBarSeries, Kind: KindString, ChartTypes: []string{"ErrorBar"},
			Description: "Name of the series the error bars are computed for, optionally with a :Yn suffix."},
		{Name: PropErrorBarType, Kind: KindString, Default: "FixedValue", ChartTypes: []string{"ErrorBar"},
			Description: "FixedValue, Percentage, StandardDeviation, StandardError or None, with an optional (param)."},
		{Name: PropErrorBarStyle, Kind: KindEnum, Default: "Both",
			Values: []string{"Both", "UpperError", "LowerError"}, ChartTypes: []string{"ErrorBar"}, AppliesToPoints: true},
		{Name: PropErrorBarCenterMarkerStyle, Kind: KindString, Default: "Line",
			ChartTypes: []string{"ErrorBar"}, AppliesToPoints: true},

		{Name: PropBoxPlotSeries, Kind: KindString, ChartTypes: []string{"BoxPlot"}, AppliesToPoints: true,
			Description: "Semicolon separated names of the series the boxes are computed from."},
		{Name: PropBoxPlotWhiskerPercentile, Kind: KindFloat, Default: "10", Min: 0, Max: 50, HasRange: true,
			ChartTypes: []string{"BoxPlot"}},
		{Name: PropBoxPlotPercentile, Kind: KindFloat, Default: "25", Min: 0, Max: 50, HasRange: true,
			ChartTypes: []string{"BoxPlot"}},
		{Name: PropBoxPlotShowAverage, Kind: KindBool, Default: "true", ChartTypes: []string{"BoxPlot"}, AppliesToPoints: true},
		{Name: PropBoxPlotShowMedian, Kind: KindBool, Default: "true", ChartTypes: []string{"BoxPlot"}, AppliesToPoints: true},
		{Name: PropBoxPlotShowUnusualValues, Kind: KindBool, Default: "false", ChartTypes: []string{"BoxPlot"}},

		{Name: PropPermittedPixelError, Kind: KindFloat, Min: 0, Max: 1, HasRange: true,
			ChartTypes:  []string{"FastPoint"},
			Description: "Size in pixels below which consecutive points are not drawn."},

		{Name: PropPieStartAngle, Kind: KindFloat, Default: "0", Min: 0, Max: 360, HasRange: true, ChartTypes: pieTypes},
		{Name: PropExploded, Kind: KindBool, Default: "false", ChartTypes: pieTypes, AppliesToPoints: true},
		{Name: PropPieLabelStyle, Kind: KindEnum, Default: "Inside",
			Values: []string{"Inside", "Outside", "Disabled"}, ChartTypes: pieTypes, AppliesToPoints: true},
		{Name: PropPieLineColor, Kind: KindColor, ChartTypes: pieTypes, AppliesToPoints: true},
		{Name: PropDoughnutRadius, Kind: KindFloat, Default: "60", Min: 1, Max: 99, HasRange: true,
			ChartTypes: []string{"Doughnut"}},
		{Name: PropCollectedThreshold, Kind: KindFloat, Default: "0", Min: 0, Max: 100, HasRange: true,
			ChartTypes: pieTypes},
		{Name: PropCollectedLabel, Kind: KindString, Default: "Other", ChartTypes: pieTypes},

		{Name: PropBarLabelStyle, Kind: KindEnum, Default: "Outside",
			Values: []string{"Outside", "Center", "Top", "Bottom"}, ChartTypes: []string{"Column"}, AppliesToPoints: true},
	}

	propertyRegistry = make(map[string]*CustomPropertyInfo, len(infos))
	for i := range infos {
		propertyRegistry[strings.ToLower(infos[i].Name)] = &infos[i]
	}
}

// CustomProperty returns the description of the named property.
func CustomProperty(name string) (CustomPropertyInfo, bool) {
	propertyOnce.Do(buildPropertyRegistry)
	info, ok := propertyRegistry[strings.ToLower(name)]
	if !ok {
		return CustomPropertyInfo{}, false
	}
	return *info, true
}

// CustomPropertiesFor returns the properties applicable to the named chart
// type, sorted by name. Properties without chart types apply to all.
func CustomPropertiesFor(chartType string) []CustomPropertyInfo {
	propertyOnce.Do(buildPropertyRegistry)
	var r []CustomPropertyInfo
	for _, info := range propertyRegistry {
		if len(info.ChartTypes) == 0 {
			r = append(r, *info)
			continue
		}
		for _, ct := range info.ChartTypes {
			if strings.EqualFold(ct, chartType) {
				r = append(r, *info)
				break
			}
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

// ----------------------------------------------------------------------------
// Typed access

// A PropertyReader reads custom properties of a point, falling back to its
// series. Values are parsed and checked against the registry on each call.
type PropertyReader struct {
	s *data.Series
	p *data.Point
}

// Properties returns a reader for point p of series s. A nil p reads the
// series only.
func Properties(s *data.Series, p *data.Point) PropertyReader {
	return PropertyReader{s: s, p: p}
}

// Lookup returns the raw value of the named property.
func (pr PropertyReader) Lookup(name string) (string, bool) {
	v, ok := data.Lookup(pr.s, pr.p, name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// String returns the named property or def if unset.
func (pr PropertyReader) String(name, def string) string {
	if v, ok := pr.Lookup(name); ok {
		return v
	}
	return def
}

func (pr PropertyReader) invalid(name, value, want string) error {
	series := ""
	if pr.s != nil {
		series = pr.s.Name
	}
	return ErrInvalidCustomProperty.
		WithValue("property", name).
		WithValue("value", value).
		WithValue("series", series).
		WithMessagef("custom property %s=%q of series %q: %s", name, value, series, want)
}

func (pr PropertyReader) checkRange(name, raw string, x float64) error {
	info, ok := CustomProperty(name)
	if !ok || !info.HasRange {
		return nil
	}
	if x < info.Min || x > info.Max {
		return ErrOutOfRange.
			WithValue("property", name).
			WithValue("value", raw).
			WithMessagef("custom property %s=%s must be in [%g,%g]", name, raw, info.Min, info.Max)
	}
	return nil
}

// Float returns the named property parsed as a number, def if unset.
func (pr PropertyReader) Float(name string, def float64) (float64, error) {
	raw, ok := pr.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	x, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, pr.invalid(name, raw, "want a number")
	}
	if err := pr.checkRange(name, raw, x); err != nil {
		return def, err
	}
	return x, nil
}

// Int returns the named property parsed as an integer, def if unset.
func (pr PropertyReader) Int(name string, def int) (int, error) {
	raw, ok := pr.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, pr.invalid(name, raw, "want an integer")
	}
	if err := pr.checkRange(name, raw, float64(n)); err != nil {
		return def, err
	}
	return n, nil
}

// Bool returns the named property parsed as a boolean, def if unset.
func (pr PropertyReader) Bool(name string, def bool) (bool, error) {
	raw, ok := pr.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def, pr.invalid(name, raw, "want true or false")
	}
	return b, nil
}

// Enum returns the canonical spelling of the named enum property, or def
// if unset. Values not listed in the registry are errors.
func (pr PropertyReader) Enum(name, def string) (string, error) {
	raw, ok := pr.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	info, _ := CustomProperty(name)
	for _, v := range info.Values {
		if strings.EqualFold(v, raw) {
			return v, nil
		}
	}
	return def, pr.invalid(name, raw, "want one of "+strings.Join(info.Values, ", "))
}

// Color returns the named property parsed by ParseColor, def if unset.
func (pr PropertyReader) Color(name string, def color.Color) (color.Color, error) {
	raw, ok := pr.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	c, err := ParseColor(raw)
	if err != nil {
		return def, pr.invalid(name, raw, "want a color name or #rrggbb[aa]")
	}
	return c, nil
}

// ParseColor parses an SVG color name or a hex color #rgb, #rrggbb or
// #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return nil, ErrInvalidColor.WithValue("color", s).WithMessagef("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, ErrInvalidColor.WithValue("color", s).WithMessagef("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, ErrInvalidColor.WithValue("color", s).WithMessagef("bad hex color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
