package data

import "math"

// Range returns the minimum and maximum X and Y values of the non-empty
// points of s. All Y values of a point are considered, so additional
// values like box plot outliers widen the range. An empty series yields
// NaN.
func Range(s *Series) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i, p := range s.Points {
		if p.IsEmpty {
			continue
		}
		x := s.XValue(i)
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		for _, y := range p.YValues {
			if math.IsNaN(y) {
				continue
			}
			ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		}
	}
	if math.IsInf(xmin, 1) {
		xmin, xmax = math.NaN(), math.NaN()
	}
	if math.IsInf(ymin, 1) {
		ymin, ymax = math.NaN(), math.NaN()
	}
	return xmin, xmax, ymin, ymax
}
