// Axis Transformations
//
// A transformation maps an interval of data values onto another interval,
// typically the unit interval of an axis.
package chartarea

import "math"

// A Transformation bundles two functions Trans and Inverse. Trans maps x
// from the interval from to the interval to, Inverse maps y from to back
// into from.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
}

// LogTrans returns a logarithmic mapping to the given base. The from
// interval must be strictly positive.
func LogTrans(base float64) Transformation {
	return Transformation{
		Name: "Log",
		Trans: func(from, to Interval, x float64) float64 {
			t := math.Log(x/from.Min) / math.Log(from.Max/from.Min)
			return to.Min + t*(to.Max-to.Min)
		},
		Inverse: func(from, to Interval, y float64) float64 {
			lb := math.Log(base)
			lo, hi := math.Log(from.Min)/lb, math.Log(from.Max)/lb
			return math.Pow(base, lo+(hi-lo)*(y-to.Min)/(to.Max-to.Min))
		},
	}
}

// Log10Trans is the decimal logarithmic transformation.
var Log10Trans = LogTrans(10)
