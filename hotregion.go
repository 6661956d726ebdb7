package chartarea

import "gonum.org/v1/plot/vg"

// RegionShape is the shape of a HotRegion.
type RegionShape int

const (
	RegionRectangle RegionShape = iota
	RegionCircle
	RegionPolygon
)

// A HotRegion associates an area of the drawing surface with a data point.
// Rect, Center and Polygon are relative coordinates, Radius is absolute.
type HotRegion struct {
	Shape      RegionShape
	Rect       vg.Rectangle
	Center     vg.Point
	Radius     vg.Length
	Polygon    []vg.Point
	SeriesName string
	PointIndex int
}

// HotRegions collects the hot regions of one paint pass. Renderers only
// append; the host reads them for hit testing.
type HotRegions struct {
	regions []HotRegion
}

// AddRectangle records the rectangle r for point index of series.
func (hr *HotRegions) AddRectangle(r vg.Rectangle, series string, index int) {
	hr.regions = append(hr.regions, HotRegion{
		Shape:      RegionRectangle,
		Rect:       CanonicRectangle(r),
		SeriesName: series,
		PointIndex: index,
	})
}

// AddCircle records a circle around center with the absolute radius.
func (hr *HotRegions) AddCircle(center vg.Point, radius vg.Length, series string, index int) {
	hr.regions = append(hr.regions, HotRegion{
		Shape:      RegionCircle,
		Center:     center,
		Radius:     radius,
		SeriesName: series,
		PointIndex: index,
	})
}

// AddPolygon records a polygon, used for pie slices.
func (hr *HotRegions) AddPolygon(pts []vg.Point, series string, index int) {
	hr.regions = append(hr.regions, HotRegion{
		Shape:      RegionPolygon,
		Rect:       BoundingBox(pts),
		Polygon:    append([]vg.Point(nil), pts...),
		SeriesName: series,
		PointIndex: index,
	})
}

// Regions returns the recorded regions in drawing order.
func (hr *HotRegions) Regions() []HotRegion { return hr.regions }

// Len returns the number of recorded regions.
func (hr *HotRegions) Len() int { return len(hr.regions) }

// Reset drops all regions.
func (hr *HotRegions) Reset() { hr.regions = hr.regions[:0] }

// Find returns the topmost region containing the relative point p. The
// Graphics g is needed to compare against absolute circle radii.
func (hr *HotRegions) Find(g Graphics, p vg.Point) (HotRegion, bool) {
	for i := len(hr.regions) - 1; i >= 0; i-- {
		r := hr.regions[i]
		switch r.Shape {
		case RegionRectangle:
			if p.X >= r.Rect.Min.X && p.X <= r.Rect.Max.X && p.Y >= r.Rect.Min.Y && p.Y <= r.Rect.Max.Y {
				return r, true
			}
		case RegionCircle:
			d := g.AbsoluteSize(vg.Point{X: p.X - r.Center.X, Y: p.Y - r.Center.Y})
			if d.X*d.X+d.Y*d.Y <= r.Radius*r.Radius {
				return r, true
			}
		case RegionPolygon:
			if insidePolygon(r.Polygon, p) {
				return r, true
			}
		}
	}
	return HotRegion{}, false
}

func insidePolygon(poly []vg.Point, p vg.Point) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
