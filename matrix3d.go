package chartarea

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

// Point3D is a point in the 3D space of a chart area: X and Y in relative
// coordinates, Z growing away from the viewer.
type Point3D = r3.Vec

// Matrix3D is the transformation of a 3D chart area: rotation around the
// center of the area box, scaling to fit the plot rectangle and an optional
// perspective.
type Matrix3D struct {
	m *mat.Dense

	perspective float64
	center      Point3D
	focus       float64
}

// NewMatrix3D returns the identity transformation.
func NewMatrix3D() *Matrix3D {
	return &Matrix3D{m: identity4()}
}

func identity4() *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		d.Set(i, i, 1)
	}
	return d
}

// Reset turns m into the identity transformation.
func (m *Matrix3D) Reset() {
	m.m = identity4()
	m.perspective = 0
}

// IsIdentity reports whether m leaves all points unchanged.
func (m *Matrix3D) IsIdentity() bool {
	if m.perspective != 0 {
		return false
	}
	return mat.Equal(m.m, identity4())
}

// apply composes t after the current transformation.
func (m *Matrix3D) apply(t *mat.Dense) {
	var r mat.Dense
	r.Mul(t, m.m)
	m.m = &r
}

// Translate moves all points by (dx, dy, dz).
func (m *Matrix3D) Translate(dx, dy, dz float64) {
	t := identity4()
	t.Set(0, 3, dx)
	t.Set(1, 3, dy)
	t.Set(2, 3, dz)
	m.apply(t)
}

// Scale scales all points by s around the origin.
func (m *Matrix3D) Scale(sx, sy, sz float64) {
	t := identity4()
	t.Set(0, 0, sx)
	t.Set(1, 1, sy)
	t.Set(2, 2, sz)
	m.apply(t)
}

// RotateX rotates around the X axis. Positive angles lift points lying
// deeper in Z.
func (m *Matrix3D) RotateX(degrees float64) {
	s, c := math.Sincos(degrees * math.Pi / 180)
	t := identity4()
	t.Set(1, 1, c)
	t.Set(1, 2, s)
	t.Set(2, 1, -s)
	t.Set(2, 2, c)
	m.apply(t)
}

// RotateY rotates around the Y axis. Positive angles move points lying
// deeper in Z to the right.
func (m *Matrix3D) RotateY(degrees float64) {
	s, c := math.Sincos(degrees * math.Pi / 180)
	t := identity4()
	t.Set(0, 0, c)
	t.Set(0, 2, s)
	t.Set(2, 0, -s)
	t.Set(2, 2, c)
	m.apply(t)
}

// Initialize sets m up for a plot rectangle with the given depth: rotation
// by angleX around X and angleY around Y, both around the center of the
// box, followed by scaling so the rotated box fits into plot. Perspective
// is given in percent.
func (m *Matrix3D) Initialize(plot vg.Rectangle, depth, angleX, angleY, perspective float64) {
	m.Reset()
	cx := float64(plot.Min.X+plot.Max.X) / 2
	cy := float64(plot.Min.Y+plot.Max.Y) / 2
	cz := depth / 2
	m.center = Point3D{X: cx, Y: cy, Z: cz}

	m.Translate(-cx, -cy, -cz)
	m.RotateY(angleY)
	m.RotateX(angleX)
	m.Translate(cx, cy, cz)

	// Shrink the rotated box to fit the plot rectangle.
	corners := make([]Point3D, 0, 8)
	for _, x := range []float64{float64(plot.Min.X), float64(plot.Max.X)} {
		for _, y := range []float64{float64(plot.Min.Y), float64(plot.Max.Y)} {
			for _, z := range []float64{0, depth} {
				corners = append(corners, Point3D{X: x, Y: y, Z: z})
			}
		}
	}
	m.TransformPoints(corners)
	bounds := Interval{math.NaN(), math.NaN()}
	boundsY := bounds
	for _, p := range corners {
		bounds.Update(p.X)
		boundsY.Update(p.Y)
	}
	w, h := float64(plot.Max.X-plot.Min.X), float64(plot.Max.Y-plot.Min.Y)
	bw, bh := bounds.Max-bounds.Min, boundsY.Max-boundsY.Min
	if bw > 0 && bh > 0 {
		if s := math.Min(w/bw, h/bh); s < 1 {
			m.Translate(-cx, -cy, -cz)
			m.Scale(s, s, s)
			m.Translate(cx, cy, cz)
		}
	}

	m.perspective = perspective
	m.focus = math.Max(w, h)
}

// TransformPoints transforms pts in place. The resulting X and Y are the
// relative coordinates to draw at, Z is only meaningful for depth
// ordering.
func (m *Matrix3D) TransformPoints(pts []Point3D) {
	v := mat.NewVecDense(4, nil)
	var r mat.VecDense
	for i, p := range pts {
		v.SetVec(0, p.X)
		v.SetVec(1, p.Y)
		v.SetVec(2, p.Z)
		v.SetVec(3, 1)
		r.MulVec(m.m, v)
		w := r.AtVec(3)
		x, y, z := r.AtVec(0)/w, r.AtVec(1)/w, r.AtVec(2)/w
		if m.perspective != 0 && m.focus > 0 {
			f := 1 / (1 + m.perspective/100*z/m.focus)
			x = m.center.X + (x-m.center.X)*f
			y = m.center.Y + (y-m.center.Y)*f
		}
		pts[i] = Point3D{X: x, Y: y, Z: z}
	}
}

// Project transforms pts and returns the projected points, dropping Z.
func (m *Matrix3D) Project(pts ...Point3D) []vg.Point {
	tmp := make([]Point3D, len(pts))
	copy(tmp, pts)
	m.TransformPoints(tmp)
	out := make([]vg.Point, len(tmp))
	for i, p := range tmp {
		out[i] = vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)}
	}
	return out
}
