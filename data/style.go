package data

import (
	"image/color"
	"strings"

	"github.com/ansel1/merry"
	"gonum.org/v1/plot/vg"
)

// ErrUnknownMarkerStyle is returned by ParseMarkerStyle.
var ErrUnknownMarkerStyle = merry.New("unknown marker style")

// MarkerStyle selects the shape of a marker.
type MarkerStyle int

const (
	MarkerNone MarkerStyle = iota
	MarkerSquare
	MarkerCircle
	MarkerDiamond
	MarkerTriangle
	MarkerCross
	MarkerStar4
	MarkerStar5
	MarkerStar6
	MarkerStar10
)

var markerNames = []string{"None", "Square", "Circle", "Diamond", "Triangle",
	"Cross", "Star4", "Star5", "Star6", "Star10"}

func (m MarkerStyle) String() string {
	if m < 0 || int(m) >= len(markerNames) {
		return "MarkerStyle(?)"
	}
	return markerNames[m]
}

// ParseMarkerStyle parses the name of a marker style, ignoring case.
func ParseMarkerStyle(s string) (MarkerStyle, error) {
	for i, n := range markerNames {
		if strings.EqualFold(n, s) {
			return MarkerStyle(i), nil
		}
	}
	return MarkerNone, ErrUnknownMarkerStyle.WithValue("marker", s).
		WithMessagef("unknown marker style %q", s)
}

// Style controls the appearance of a series or, as an override, of a
// single point. Zero values mean "not set".
type Style struct {
	Color        color.Color
	BorderColor  color.Color
	BorderWidth  vg.Length
	BorderDashes []vg.Length

	MarkerStyle       MarkerStyle
	MarkerSize        vg.Length
	MarkerColor       color.Color
	MarkerBorderColor color.Color
	MarkerImage       string

	ShadowOffset vg.Length
	ShadowColor  color.Color

	IsValueShownAsLabel bool
	LabelFormat         string
	LabelColor          color.Color
	LabelBackColor      color.Color
	LabelAngle          float64 // degrees
}

// Merge returns the series style s overridden by the set fields of the
// point style p.
func (s Style) Merge(p Style) Style {
	r := s
	if p.Color != nil {
		r.Color = p.Color
	}
	if p.BorderColor != nil {
		r.BorderColor = p.BorderColor
	}
	if p.BorderWidth != 0 {
		r.BorderWidth = p.BorderWidth
	}
	if p.BorderDashes != nil {
		r.BorderDashes = p.BorderDashes
	}
	if p.MarkerStyle != MarkerNone {
		r.MarkerStyle = p.MarkerStyle
	}
	if p.MarkerSize != 0 {
		r.MarkerSize = p.MarkerSize
	}
	if p.MarkerColor != nil {
		r.MarkerColor = p.MarkerColor
	}
	if p.MarkerBorderColor != nil {
		r.MarkerBorderColor = p.MarkerBorderColor
	}
	if p.MarkerImage != "" {
		r.MarkerImage = p.MarkerImage
	}
	if p.ShadowOffset != 0 {
		r.ShadowOffset = p.ShadowOffset
	}
	if p.ShadowColor != nil {
		r.ShadowColor = p.ShadowColor
	}
	r.IsValueShownAsLabel = s.IsValueShownAsLabel || p.IsValueShownAsLabel
	if p.LabelFormat != "" {
		r.LabelFormat = p.LabelFormat
	}
	if p.LabelColor != nil {
		r.LabelColor = p.LabelColor
	}
	if p.LabelBackColor != nil {
		r.LabelBackColor = p.LabelBackColor
	}
	if p.LabelAngle != 0 {
		r.LabelAngle = p.LabelAngle
	}
	return r
}
