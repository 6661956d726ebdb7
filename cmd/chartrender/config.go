package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/ansel1/merry"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/charttype"
	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
)

var errConfig = merry.New("invalid chart description")

type axisConfig struct {
	Title    string   `mapstructure:"title"`
	Min      *float64 `mapstructure:"min"`
	Max      *float64 `mapstructure:"max"`
	Log      bool     `mapstructure:"log"`
	LogBase  float64  `mapstructure:"logBase"`
	Reversed bool     `mapstructure:"reversed"`
}

type area3DConfig struct {
	Enable      bool    `mapstructure:"enable"`
	Inclination float64 `mapstructure:"inclination"`
	Rotation    float64 `mapstructure:"rotation"`
	Perspective float64 `mapstructure:"perspective"`
	Depth       float64 `mapstructure:"depth"`
	PointDepth  float64 `mapstructure:"pointDepth"`
	PointGap    float64 `mapstructure:"pointGapDepth"`
	Clustered   bool    `mapstructure:"clustered"`
	ZMode       string  `mapstructure:"zMode"`
}

type areaConfig struct {
	Name string `mapstructure:"name"`

	// Position is left, bottom, right, top in percent.
	Position []float64 `mapstructure:"position"`

	X  axisConfig   `mapstructure:"x"`
	Y  axisConfig   `mapstructure:"y"`
	X2 axisConfig   `mapstructure:"x2"`
	Y2 axisConfig   `mapstructure:"y2"`
	D3 area3DConfig `mapstructure:"3d"`
}

type facetConfig struct {
	Name  string `mapstructure:"name"`
	Rows  int    `mapstructure:"rows"`
	Cols  int    `mapstructure:"cols"`
	FreeX bool   `mapstructure:"freeX"`
	FreeY bool   `mapstructure:"freeY"`

	// Position and Pad are in percent.
	Position []float64 `mapstructure:"position"`
	Pad      []float64 `mapstructure:"pad"`

	X axisConfig `mapstructure:"x"`
	Y axisConfig `mapstructure:"y"`
}

type styleConfig struct {
	Color        string    `mapstructure:"color"`
	BorderColor  string    `mapstructure:"borderColor"`
	BorderWidth  float64   `mapstructure:"borderWidth"`
	BorderDashes []float64 `mapstructure:"borderDashes"`

	Marker            string  `mapstructure:"marker"`
	MarkerSize        float64 `mapstructure:"markerSize"`
	MarkerColor       string  `mapstructure:"markerColor"`
	MarkerBorderColor string  `mapstructure:"markerBorderColor"`
	MarkerImage       string  `mapstructure:"markerImage"`

	Shadow      float64 `mapstructure:"shadow"`
	ShadowColor string  `mapstructure:"shadowColor"`

	ShowLabel      bool    `mapstructure:"showLabel"`
	LabelFormat    string  `mapstructure:"labelFormat"`
	LabelColor     string  `mapstructure:"labelColor"`
	LabelBackColor string  `mapstructure:"labelBackColor"`
	LabelAngle     float64 `mapstructure:"labelAngle"`
}

type pointConfig struct {
	X         float64           `mapstructure:"x"`
	Y         []float64         `mapstructure:"y"`
	Empty     bool              `mapstructure:"empty"`
	Label     string            `mapstructure:"label"`
	AxisLabel string            `mapstructure:"axisLabel"`
	Props     map[string]string `mapstructure:"props"`
	Style     styleConfig       `mapstructure:"style"`
}

type seriesConfig struct {
	Name    string            `mapstructure:"name"`
	Type    string            `mapstructure:"type"`
	Area    string            `mapstructure:"area"`
	XAxis   string            `mapstructure:"xAxis"`
	YAxis   string            `mapstructure:"yAxis"`
	Indexed bool              `mapstructure:"indexed"`
	Hidden  bool              `mapstructure:"hidden"`
	Props   map[string]string `mapstructure:"props"`
	Style   styleConfig       `mapstructure:"style"`
	Points  []pointConfig     `mapstructure:"points"`
}

type smartLabelConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	AllowOutside   bool    `mapstructure:"allowOutside"`
	MinDistance    float64 `mapstructure:"minDistance"`
	MaxDistance    float64 `mapstructure:"maxDistance"`
	FontSize       float64 `mapstructure:"fontSize"`
	BackgroundGray *uint8  `mapstructure:"backgroundGray"`
}

var config = struct {
	Out    string  `mapstructure:"out"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	DPI    float64 `mapstructure:"dpi"`
	Debug  bool    `mapstructure:"debug"`
	DryRun bool    `mapstructure:"dryRun"`

	Background  string            `mapstructure:"background"`
	SmartLabels smartLabelConfig  `mapstructure:"smartLabels"`
	Images      map[string]string `mapstructure:"images"`

	Areas  []areaConfig   `mapstructure:"areas"`
	Facets []facetConfig  `mapstructure:"facets"`
	Series []seriesConfig `mapstructure:"series"`
}{
	Out:    "chart.png",
	Width:  16,
	Height: 12,
	DPI:    96,
	SmartLabels: smartLabelConfig{
		Enabled:     true,
		MinDistance: 2,
		MaxDistance: 10,
		FontSize:    10,
	},
}

func parseOptionalColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	return chartarea.ParseColor(s)
}

func (ac axisConfig) apply(a *chartarea.Axis) {
	a.Title = ac.Title
	if ac.Log {
		a.ScaleType = chartarea.Logarithmic
	}
	a.LogBase = ac.LogBase
	a.IsReversed = ac.Reversed
	if ac.Min != nil {
		a.FixMin(*ac.Min)
	}
	if ac.Max != nil {
		a.FixMax(*ac.Max)
	}
}

func (ac areaConfig) build() (*chartarea.Area, error) {
	name := ac.Name
	if name == "" {
		name = "Default"
	}
	a := chartarea.NewArea(name)
	var err error
	if a.Position, err = rectangle("area", name, ac.Position, a.Position); err != nil {
		return nil, err
	}
	ac.X.apply(a.AxisX)
	ac.Y.apply(a.AxisY)
	ac.X2.apply(a.AxisX2)
	ac.Y2.apply(a.AxisY2)

	d := ac.D3
	st := &a.Area3D
	st.Enable3D = d.Enable
	st.IsClustered = d.Clustered
	setIf(&st.Inclination, d.Inclination)
	setIf(&st.Rotation, d.Rotation)
	setIf(&st.Perspective, d.Perspective)
	setIf(&st.Depth, d.Depth)
	setIf(&st.PointDepth, d.PointDepth)
	setIf(&st.PointGapDepth, d.PointGap)
	switch strings.ToLower(d.ZMode) {
	case "", "bucketed":
		st.ZMode = chartarea.ZBucketed
	case "realcalc":
		st.ZMode = chartarea.ZRealCalc
	default:
		return nil, errConfig.WithValue("area", name).
			WithMessagef("area %q: unknown z mode %q", name, d.ZMode)
	}
	return a, nil
}

// rectangle converts left, bottom, right, top to a rectangle. No values
// yield def.
func rectangle(what, name string, v []float64, def vg.Rectangle) (vg.Rectangle, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 4:
		return vg.Rectangle{
			Min: vg.Point{X: vg.Length(v[0]), Y: vg.Length(v[1])},
			Max: vg.Point{X: vg.Length(v[2]), Y: vg.Length(v[3])},
		}, nil
	}
	return def, errConfig.WithValue(what, name).
		WithMessagef("%s %q: position needs 4 values, got %d", what, name, len(v))
}

func (fc facetConfig) build() (*chartarea.Facet, error) {
	f, err := chartarea.NewFacet(fc.Name, fc.Rows, fc.Cols, fc.FreeX, fc.FreeY)
	if err != nil {
		return nil, err
	}
	switch len(fc.Pad) {
	case 0:
	case 1:
		f.PadX, f.PadY = vg.Length(fc.Pad[0]), vg.Length(fc.Pad[0])
	case 2:
		f.PadX, f.PadY = vg.Length(fc.Pad[0]), vg.Length(fc.Pad[1])
	default:
		return nil, errConfig.WithValue("facet", fc.Name).
			WithMessagef("facet %q: pad needs 1 or 2 values, got %d", fc.Name, len(fc.Pad))
	}
	bounds, err := rectangle("facet", fc.Name, fc.Position, vg.Rectangle{Max: vg.Point{X: 100, Y: 100}})
	if err != nil {
		return nil, err
	}
	f.Layout(bounds)
	for _, ax := range f.XAxes {
		fc.X.apply(ax)
	}
	for _, ax := range f.YAxes {
		fc.Y.apply(ax)
	}
	return f, nil
}

func setIf(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func (sc styleConfig) build() (data.Style, error) {
	var st data.Style
	var err error
	colors := []struct {
		dst *color.Color
		src string
	}{
		{&st.Color, sc.Color},
		{&st.BorderColor, sc.BorderColor},
		{&st.MarkerColor, sc.MarkerColor},
		{&st.MarkerBorderColor, sc.MarkerBorderColor},
		{&st.ShadowColor, sc.ShadowColor},
		{&st.LabelColor, sc.LabelColor},
		{&st.LabelBackColor, sc.LabelBackColor},
	}
	for _, c := range colors {
		if *c.dst, err = parseOptionalColor(c.src); err != nil {
			return st, err
		}
	}
	if sc.Marker != "" {
		if st.MarkerStyle, err = data.ParseMarkerStyle(sc.Marker); err != nil {
			return st, err
		}
	}
	st.BorderWidth = vg.Length(sc.BorderWidth)
	for _, d := range sc.BorderDashes {
		st.BorderDashes = append(st.BorderDashes, vg.Length(d))
	}
	st.MarkerSize = vg.Length(sc.MarkerSize)
	st.MarkerImage = sc.MarkerImage
	st.ShadowOffset = vg.Length(sc.Shadow)
	st.IsValueShownAsLabel = sc.ShowLabel
	st.LabelFormat = sc.LabelFormat
	st.LabelAngle = sc.LabelAngle
	return st, nil
}

func axisType(s string) (data.AxisType, error) {
	switch strings.ToLower(s) {
	case "", "primary":
		return data.Primary, nil
	case "secondary":
		return data.Secondary, nil
	}
	return data.Primary, errConfig.WithValue("axis", s).
		WithMessagef("unknown axis type %q", s)
}

func (sc seriesConfig) build() (*data.Series, error) {
	s := data.NewSeries(sc.Name, sc.Type)
	if sc.Area != "" {
		s.ChartArea = sc.Area
	}
	var err error
	if s.XAxisType, err = axisType(sc.XAxis); err != nil {
		return nil, merry.WithValue(err, "series", sc.Name)
	}
	if s.YAxisType, err = axisType(sc.YAxis); err != nil {
		return nil, merry.WithValue(err, "series", sc.Name)
	}
	s.IsXValueIndexed = sc.Indexed
	s.Hidden = sc.Hidden
	for k, v := range sc.Props {
		s.Props.Set(k, v)
	}
	if s.Style, err = sc.Style.build(); err != nil {
		return nil, merry.WithValue(err, "series", sc.Name)
	}
	for i, pc := range sc.Points {
		ys := pc.Y
		if len(ys) == 0 {
			ys = []float64{math.NaN()}
		}
		p := s.AddXY(pc.X, ys...)
		p.IsEmpty = pc.Empty
		p.Label = pc.Label
		p.AxisLabel = pc.AxisLabel
		if len(pc.Props) > 0 {
			p.Props = data.CustomProperties{}
			for k, v := range pc.Props {
				p.Props.Set(k, v)
			}
		}
		if p.Style, err = pc.Style.build(); err != nil {
			return nil, merry.WithValue(err, "series", sc.Name).WithValue("point", i)
		}
		if len(pc.Y) > s.YValuesPerPoint {
			s.YValuesPerPoint = len(pc.Y)
		}
	}
	return s, nil
}

// buildChart turns the loaded configuration into a chart. An area named
// "Default" is added if neither areas nor facets are configured.
func buildChart() (*chartarea.Chart, error) {
	c := chartarea.NewChart(charttype.NewRegistry())

	bg, err := parseOptionalColor(config.Background)
	if err != nil {
		return nil, err
	}
	if bg != nil {
		c.Style.Background = bg
	}
	sl := config.SmartLabels
	c.Style.SmartLabels.Enabled = sl.Enabled
	c.Style.SmartLabels.AllowOutsidePlotArea = sl.AllowOutside
	c.Style.SmartLabels.MinMovingDistance = vg.Length(sl.MinDistance)
	c.Style.SmartLabels.MaxMovingDistance = vg.Length(sl.MaxDistance)
	if sl.FontSize > 0 {
		c.Style.Label.Font.Size = vg.Length(sl.FontSize)
	}
	if sl.BackgroundGray != nil {
		c.Style.Label.Background = color.Gray{Y: *sl.BackgroundGray}
	}

	for name, path := range config.Images {
		img, err := c.Images.Load(path)
		if err != nil {
			return nil, merry.WithValue(err, "image", name)
		}
		c.Images.Add(name, img)
	}

	if len(config.Areas) == 0 && len(config.Facets) == 0 {
		c.AddArea(chartarea.NewArea("Default"))
	}
	for _, ac := range config.Areas {
		a, err := ac.build()
		if err != nil {
			return nil, err
		}
		c.AddArea(a)
	}
	for _, fc := range config.Facets {
		f, err := fc.build()
		if err != nil {
			return nil, err
		}
		f.AddTo(c)
	}

	for _, sc := range config.Series {
		s, err := sc.build()
		if err != nil {
			return nil, err
		}
		if _, err := c.Series.Add(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}
