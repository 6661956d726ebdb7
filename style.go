package chartarea

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls the defaults used when series and points leave their
// own style unset.
type Style struct {
	Background color.Color

	Label struct {
		draw.TextStyle
		Background color.Color
		Border     draw.LineStyle
		Padding    vg.Length
	}
	SmartLabels SmartLabelStyle

	Line       draw.LineStyle
	MarkerSize vg.Length

	Shadow color.Color

	Pie struct {
		Border     draw.LineStyle
		LeaderLine draw.LineStyle
		// Explode is the offset of exploded slices in percent of the radius.
		Explode float64
	}

	Palette []color.Color
}

// DefaultStyle returns a Style with black labels, thin lines and the
// plotutil palette. The baseFontSize is the size of label texts.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	labelFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.Label.Color = color.Black
	s.Label.Font = labelFont
	s.Label.XAlign = draw.XCenter
	s.Label.YAlign = -0.3 // draw.YCenter
	s.Label.Background = nil
	s.Label.Border.Width = 0
	s.Label.Padding = scale(baseFontSize, 0.25)

	s.SmartLabels.Enabled = true
	s.SmartLabels.MinMovingDistance = scale(baseFontSize, 0.2)
	s.SmartLabels.MaxMovingDistance = scale(baseFontSize, 3)

	s.Line.Color = color.Black
	s.Line.Width = vg.Length(1)
	s.MarkerSize = scale(baseFontSize, 0.6)

	s.Shadow = color.NRGBA{A: 0x40}

	s.Pie.Border.Color = color.White
	s.Pie.Border.Width = vg.Length(1)
	s.Pie.LeaderLine.Color = color.Gray16{0x5555}
	s.Pie.LeaderLine.Width = vg.Length(0.5)
	s.Pie.Explode = 10

	for i := 0; i < 7; i++ {
		s.Palette = append(s.Palette, plotutil.Color(i))
	}

	return s
}

// SeriesColor returns the palette color of the i'th series.
func (s Style) SeriesColor(i int) color.Color {
	if len(s.Palette) == 0 {
		return color.Black
	}
	return s.Palette[i%len(s.Palette)]
}
