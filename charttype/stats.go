package charttype

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentile returns the p'th percentile, p in [0,100], of the sorted
// values. The rank (n-1)*p/100 is interpolated linearly between the two
// neighboring values.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch n {
	case 0:
		return math.NaN()
	case 1:
		return sorted[0]
	}
	index := float64(n-1) / 100 * p
	lo, hi := math.Floor(index), math.Ceil(index)
	if lo < 0 {
		return sorted[0]
	}
	if int(hi) >= n {
		return sorted[n-1]
	}
	if lo == hi {
		return sorted[int(lo)]
	}
	f := index - lo
	return sorted[int(lo)] + f*(sorted[int(hi)]-sorted[int(lo)])
}

// BoxStats are the values a box plot point shows.
type BoxStats struct {
	LowerWhisker, UpperWhisker float64
	LowerBox, UpperBox         float64
	Average, Median            float64

	// Unusual are the values outside the whiskers.
	Unusual []float64
}

// YValues returns s in the order of the Y values of a box plot point.
// The unusual values are appended if withUnusual is set.
func (s BoxStats) YValues(withUnusual bool) []float64 {
	ys := []float64{s.LowerWhisker, s.UpperWhisker, s.LowerBox, s.UpperBox, s.Average, s.Median}
	if withUnusual {
		ys = append(ys, s.Unusual...)
	}
	return ys
}

// ComputeBoxStats computes the box plot values of values: the whiskers at
// the whisker'th and 100-whisker'th percentile, the box at the box'th and
// 100-box'th percentile, the mean and the median. NaN values are ignored.
func ComputeBoxStats(values []float64, whisker, box float64) BoxStats {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	sort.Float64s(sorted)
	if len(sorted) == 0 {
		nan := math.NaN()
		return BoxStats{nan, nan, nan, nan, nan, nan, nil}
	}

	bs := BoxStats{
		LowerWhisker: Percentile(sorted, whisker),
		UpperWhisker: Percentile(sorted, 100-whisker),
		LowerBox:     Percentile(sorted, box),
		UpperBox:     Percentile(sorted, 100-box),
		Average:      stat.Mean(sorted, nil),
		Median:       Percentile(sorted, 50),
	}
	for _, v := range sorted {
		if v < bs.LowerWhisker || v > bs.UpperWhisker {
			bs.Unusual = append(bs.Unusual, v)
		}
	}
	return bs
}

// ErrorBarType selects how the error of an error bar is computed.
type ErrorBarType int

const (
	ErrorFixedValue ErrorBarType = iota
	ErrorPercentage
	ErrorStandardDeviation
	ErrorStandardError
	ErrorNone
)

var errorBarTypeNames = []string{"FixedValue", "Percentage", "StandardDeviation", "StandardError", "None"}

func (t ErrorBarType) String() string { return errorBarTypeNames[t] }

// DefaultParam returns the parameter used if none is given.
func (t ErrorBarType) DefaultParam() float64 {
	switch t {
	case ErrorPercentage:
		return 5
	case ErrorNone:
		return 0
	}
	return 1
}

// ErrorAmount returns the error of a point with the given center value.
// The centers of all points are needed for the statistical types.
//
//	FixedValue         param
//	Percentage         center * param/100
//	StandardDeviation  param * sqrt(sample variance)
//	StandardError      param * sqrt(sum(y²) / (n(n-1))) / 2
//
// The statistical types yield zero for less than two values. A negative
// center gives a negative percentage error.
func (t ErrorBarType) ErrorAmount(param, center float64, centers []float64) float64 {
	switch t {
	case ErrorFixedValue:
		return param
	case ErrorPercentage:
		return center * param / 100
	case ErrorStandardDeviation:
		if len(centers) < 2 {
			return 0
		}
		return param * math.Sqrt(stat.Variance(centers, nil))
	case ErrorStandardError:
		n := float64(len(centers))
		if n < 2 {
			return 0
		}
		sum := 0.0
		for _, y := range centers {
			sum += y * y
		}
		return param * math.Sqrt(sum/(n*(n-1))) / 2
	}
	return 0
}
