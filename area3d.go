package chartarea

import (
	"github.com/vdobler/chartarea/data"
)

// ZMode selects how the Z position and depth of the series of a 3D chart
// area are determined.
type ZMode int

const (
	// ZBucketed gives every series (or, if clustered, all series) its own
	// slot along the Z axis in series order.
	ZBucketed ZMode = iota

	// ZRealCalc reads the Z position and depth of a series from its
	// ZPosition and ZDepth custom properties, in percent of the area
	// depth. Unset properties fall back to the bucketed values.
	ZRealCalc
)

// Area3DStyle is the 3D configuration of a chart area.
type Area3DStyle struct {
	Enable3D bool

	// Inclination and Rotation are the rotation angles around the X and
	// the Y axis in degrees.
	Inclination float64
	Rotation    float64

	// Perspective in percent, 0 disables the perspective.
	Perspective float64

	// Depth is the depth of the area in relative units.
	Depth float64

	// PointDepth and PointGapDepth split one series slot into the drawn
	// depth and the gap, both in percent.
	PointDepth    float64
	PointGapDepth float64

	IsClustered bool
	ZMode       ZMode
}

// DefaultArea3DStyle returns a disabled 3D style with sensible angles.
func DefaultArea3DStyle() Area3DStyle {
	return Area3DStyle{
		Inclination:   30,
		Rotation:      30,
		Depth:         10,
		PointDepth:    100,
		PointGapDepth: 100,
	}
}

// Setup3D initializes the transformation matrix of a from its 3D style.
func (a *Area) Setup3D() {
	if a.Matrix == nil {
		a.Matrix = NewMatrix3D()
	}
	if !a.Area3D.Enable3D {
		a.Matrix.Reset()
		return
	}
	a.Matrix.Initialize(a.Position, a.Area3D.Depth,
		a.Area3D.Inclination, a.Area3D.Rotation, a.Area3D.Perspective)
}

// SeriesZPositionAndDepth returns the Z position (front plane) and the
// depth of series s among the 3D series of the area, given in paint order.
func (a *Area) SeriesZPositionAndDepth(series []*data.Series, s *data.Series) (z, depth float64, err error) {
	st := a.Area3D
	buckets, index := len(series), -1
	for i, t := range series {
		if t == s {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, 0, ErrUnknownSeries.WithValue("series", s.Name).
			WithMessagef("series %q is not painted in area %q", s.Name, a.Name)
	}
	if st.IsClustered || buckets == 0 {
		buckets, index = 1, 0
	}

	slot := st.Depth / float64(buckets)
	fraction := 1.0
	if st.PointDepth+st.PointGapDepth > 0 {
		fraction = st.PointDepth / (st.PointDepth + st.PointGapDepth)
	}
	depth = slot * fraction
	z = float64(index)*slot + (slot-depth)/2

	if st.ZMode == ZRealCalc {
		props := Properties(s, nil)
		if z, err = props.Float(PropZPosition, z/st.Depth*100); err != nil {
			return 0, 0, err
		}
		z = z / 100 * st.Depth
		if depth, err = props.Float(PropZDepth, depth/st.Depth*100); err != nil {
			return 0, 0, err
		}
		depth = depth / 100 * st.Depth
	}
	return z, depth, nil
}
