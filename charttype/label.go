package charttype

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// FormatValue formats v according to a label format:
//
//	""   shortest representation
//	F<n> fixed point with n decimals
//	N<n> fixed point with thousands separators
//	P<n> percent, v=0.25 gives 25%
//	E<n> exponent notation
//	S<n> SI prefix, 1200 gives 1.2 k
//
// The digit count n may be omitted and defaults to 2.
func FormatValue(v float64, format string) (string, error) {
	if format == "" {
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	n := 2
	if len(format) > 1 {
		d, err := strconv.Atoi(format[1:])
		if err != nil || d < 0 || d > 15 {
			return "", invalidFormat(format)
		}
		n = d
	}
	switch format[0] {
	case 'F', 'f':
		return strconv.FormatFloat(v, 'f', n, 64), nil
	case 'N', 'n':
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', n, 64), nil
		}
		f := "#,###."
		if n > 0 {
			f += strings.Repeat("#", n)
		}
		return humanize.FormatFloat(f, v), nil
	case 'P', 'p':
		return strconv.FormatFloat(100*v, 'f', n, 64) + "%", nil
	case 'E', 'e':
		return strconv.FormatFloat(v, 'E', n, 64), nil
	case 'S', 's':
		return humanize.SIWithDigits(v, n, ""), nil
	}
	return "", invalidFormat(format)
}

func invalidFormat(format string) error {
	return chartarea.ErrInvalidCustomProperty.
		WithValue("format", format).
		WithMessagef("invalid label format %q", format)
}

// labelKeywords are recognized in explicit labels, longest first.
var labelKeywords = []string{"#SERIESNAME", "#AXISLABEL", "#INDEX", "#VALX", "#VALY", "#SER"}

// ExpandKeywords replaces the keywords in the label text of point i of s.
// Every keyword may be followed by a format in braces, e.g. #VALY{F1}.
//
//	#VALX        X value
//	#VALY, #VALYn first resp. n'th Y value
//	#SERIESNAME, #SER  series name
//	#INDEX       zero based point index
//	#AXISLABEL   axis label of the point
func ExpandKeywords(text string, s *data.Series, i int) (string, error) {
	if !strings.Contains(text, "#") {
		return text, nil
	}
	p := &s.Points[i]
	var b strings.Builder
	for len(text) > 0 {
		k := strings.IndexByte(text, '#')
		if k < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:k])
		text = text[k:]

		kw := ""
		for _, cand := range labelKeywords {
			if strings.HasPrefix(strings.ToUpper(text), cand) {
				kw = cand
				break
			}
		}
		if kw == "" {
			b.WriteByte('#')
			text = text[1:]
			continue
		}
		text = text[len(kw):]

		yIndex := 0
		if kw == "#VALY" {
			j := 0
			for j < len(text) && text[j] >= '0' && text[j] <= '9' {
				j++
			}
			if j > 0 {
				n, _ := strconv.Atoi(text[:j])
				yIndex = n - 1
				text = text[j:]
			}
		}

		format := ""
		if strings.HasPrefix(text, "{") {
			if end := strings.IndexByte(text, '}'); end > 0 {
				format = text[1:end]
				text = text[end+1:]
			}
		}

		var (
			repl string
			err  error
		)
		switch kw {
		case "#SERIESNAME", "#SER":
			repl = s.Name
		case "#AXISLABEL":
			repl = p.AxisLabel
		case "#INDEX":
			repl = strconv.Itoa(i)
		case "#VALX":
			repl, err = FormatValue(s.XValue(i), format)
		case "#VALY":
			if yIndex < 0 || yIndex >= len(p.YValues) {
				repl = ""
				break
			}
			repl, err = FormatValue(p.YValues[yIndex], format)
		}
		if err != nil {
			return "", err
		}
		b.WriteString(repl)
	}
	return b.String(), nil
}

// LabelText returns the label of point i of s: the explicit label with
// its keywords expanded or, if values are shown as labels, the Y value
// yIndex formatted with the label format. An empty text means no label.
func LabelText(s *data.Series, i, yIndex int, st data.Style) (string, error) {
	p := &s.Points[i]
	if p.Label != "" {
		return ExpandKeywords(p.Label, s, i)
	}
	if !st.IsValueShownAsLabel || yIndex >= len(p.YValues) {
		return "", nil
	}
	return FormatValue(p.YValues[yIndex], st.LabelFormat)
}

// ----------------------------------------------------------------------------
// Label drawing

// A label is a point label waiting for the label pass.
type label struct {
	text      string
	style     data.Style
	anchor    vg.Point // relative, already projected
	marker    vg.Point // relative size of the marker or bar
	preferred chartarea.LabelAlignment
}

// drawLabels draws labels in order, placing them with the smart labels
// of common.
func drawLabels(g chartarea.Graphics, common *chartarea.Common, labels []label) {
	for _, l := range labels {
		drawLabel(g, common, l)
	}
}

func drawLabel(g chartarea.Graphics, common *chartarea.Common, l label) chartarea.Placement {
	sty := common.Style.Label.TextStyle
	if l.style.LabelColor != nil {
		sty.Color = l.style.LabelColor
	}
	sty.Rotation = l.style.LabelAngle * math.Pi / 180
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	pad := common.Style.Label.Padding
	size := g.MeasureText(sty, l.text)
	size.X += 2 * pad
	size.Y += 2 * pad
	rel := g.RelativeSize(size)

	sl := common.SmartLabels
	if sl == nil {
		sl = &chartarea.SmartLabels{}
	}
	pl := sl.Place(g, common.Style.SmartLabels, l.anchor, rel, l.marker, l.preferred)
	if pl.Hidden {
		return pl
	}
	if pl.Moved {
		sty.Rotation = 0
	}

	back := l.style.LabelBackColor
	if back == nil {
		back = common.Style.Label.Background
	}
	border := common.Style.Label.Border
	if back != nil || (border.Color != nil && border.Width > 0) {
		g.FillRectangle(pl.Rect, back, border)
	}
	center := vg.Point{
		X: (pl.Rect.Min.X + pl.Rect.Max.X) / 2,
		Y: (pl.Rect.Min.Y + pl.Rect.Max.Y) / 2,
	}
	g.DrawText(sty, center, l.text)
	return pl
}
