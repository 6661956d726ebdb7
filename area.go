package chartarea

import (
	"math"

	"github.com/vdobler/chartarea/data"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Area

// An Area is one rectangular plotting region of a chart. It owns its axes
// and its 3D configuration and hosts any number of overlaid series.
type Area struct {
	Name string

	// Position is the plot rectangle in relative coordinates: percent of
	// the drawing surface with the origin in the lower left corner.
	Position vg.Rectangle

	AxisX, AxisY   *Axis
	AxisX2, AxisY2 *Axis

	Area3D Area3DStyle
	Matrix *Matrix3D
}

// NewArea returns an area covering the whole surface with autoscaling
// linear axes.
func NewArea(name string) *Area {
	return &Area{
		Name: name,
		Position: vg.Rectangle{
			Min: vg.Point{X: 0, Y: 0},
			Max: vg.Point{X: 100, Y: 100},
		},
		AxisX:  NewAxis(),
		AxisY:  NewAxis(),
		AxisX2: NewAxis(),
		AxisY2: NewAxis(),
		Area3D: DefaultArea3DStyle(),
		Matrix: NewMatrix3D(),
	}
}

// Axes returns the horizontal and vertical axis series s is plotted on.
func (a *Area) Axes(s *data.Series) (h, v *Axis) {
	h, v = a.AxisX, a.AxisY
	if s.XAxisType == data.Secondary {
		h = a.AxisX2
	}
	if s.YAxisType == data.Secondary {
		v = a.AxisY2
	}
	return h, v
}

// Width returns the width of the plot rectangle in relative coordinates.
func (a *Area) Width() vg.Length { return a.Position.Max.X - a.Position.Min.X }

// Height returns the height of the plot rectangle in relative coordinates.
func (a *Area) Height() vg.Length { return a.Position.Max.Y - a.Position.Min.Y }

// MapX maps the data value x on axis h to a relative X coordinate.
func (a *Area) MapX(h *Axis, x float64) vg.Length {
	return a.Position.Min.X + vg.Length(h.GetPosition(x))*a.Width()
}

// MapY maps the data value y on axis v to a relative Y coordinate.
func (a *Area) MapY(v *Axis, y float64) vg.Length {
	return a.Position.Min.Y + vg.Length(v.GetPosition(y))*a.Height()
}

// MapXY maps the data coordinate (x,y) to a relative point.
func (a *Area) MapXY(h, v *Axis, x, y float64) vg.Point {
	return vg.Point{X: a.MapX(h, x), Y: a.MapY(v, y)}
}

// RelativeInterval converts a distance along h, measured in the space of
// h.ToLogValue, to a relative width.
func (a *Area) RelativeInterval(h *Axis, interval float64) vg.Length {
	view := h.LogView()
	span := view.Max - view.Min
	if span == 0 || math.IsNaN(span) {
		return 0
	}
	return vg.Length(math.Abs(interval/span)) * a.Width()
}

// Validate checks the axes of a that are used by the given series.
func (a *Area) Validate(series []*data.Series) error {
	checked := map[*Axis]bool{}
	for _, s := range series {
		h, v := a.Axes(s)
		for _, ax := range []*Axis{h, v} {
			if checked[ax] {
				continue
			}
			checked[ax] = true
			if err := ax.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
