package chartarea

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Facet

// A Facet is a grid of chart areas. All areas share one X axis and one Y
// axis. With free X axes every column gets its own X axis, with free Y axes
// every row its own Y axis.
type Facet struct {
	Name       string
	Rows, Cols int
	Areas      [][]*Area

	// XAxes holds the X axis of every column, YAxes the Y axis of every
	// row.
	XAxes, YAxes []*Axis

	// PadX and PadY are the relative gaps between two areas.
	PadX, PadY vg.Length
}

// NewFacet creates a facet of rows x cols areas named "name[row,col]",
// counting from 1. Rows are numbered from the top.
func NewFacet(name string, rows, cols int, freeX, freeY bool) (*Facet, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidFacet.WithValue("facet", name).
			WithMessagef("facet %q: invalid grid %dx%d", name, rows, cols)
	}
	f := &Facet{
		Name:  name,
		Rows:  rows,
		Cols:  cols,
		Areas: make([][]*Area, rows),
		XAxes: make([]*Axis, cols),
		YAxes: make([]*Axis, rows),
		PadX:  2,
		PadY:  2,
	}

	common := NewAxis()
	for c := range f.XAxes {
		if freeX {
			common = NewAxis()
		}
		f.XAxes[c] = common
	}
	common = NewAxis()
	for r := range f.YAxes {
		if freeY {
			common = NewAxis()
		}
		f.YAxes[r] = common
	}

	for r := 0; r < rows; r++ {
		f.Areas[r] = make([]*Area, cols)
		for c := 0; c < cols; c++ {
			a := NewArea(f.AreaName(r, c))
			a.AxisX = f.XAxes[c]
			a.AxisY = f.YAxes[r]
			f.Areas[r][c] = a
		}
	}
	return f, nil
}

// AreaName returns the name of the area in the zero based row and column.
func (f *Facet) AreaName(row, col int) string {
	return fmt.Sprintf("%s[%d,%d]", f.Name, row+1, col+1)
}

// Area returns the area in the zero based row and column or nil.
func (f *Facet) Area(row, col int) *Area {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return nil
	}
	return f.Areas[row][col]
}

// Layout places the areas of f in the relative rectangle bounds.
func (f *Facet) Layout(bounds vg.Rectangle) {
	bounds = CanonicRectangle(bounds)
	numCols, numRows := vg.Length(f.Cols), vg.Length(f.Rows)
	width := (bounds.Max.X - bounds.Min.X - f.PadX*(numCols-1)) / numCols
	height := (bounds.Max.Y - bounds.Min.Y - f.PadY*(numRows-1)) / numRows

	// (x0,y0) is the top-left corner of each area.
	y0 := bounds.Max.Y
	for _, areas := range f.Areas {
		x0 := bounds.Min.X
		for _, a := range areas {
			a.Position = vg.Rectangle{
				Min: vg.Point{X: x0, Y: y0 - height},
				Max: vg.Point{X: x0 + width, Y: y0},
			}
			x0 += width + f.PadX
		}
		y0 -= height + f.PadY
	}
}

// AddTo adds the areas of f to c, row by row.
func (f *Facet) AddTo(c *Chart) {
	for _, areas := range f.Areas {
		for _, a := range areas {
			c.AddArea(a)
		}
	}
}
