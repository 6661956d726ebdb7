package chartarea

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Axis

// Axis maps data values to positions along one direction of a chart area.
// Only the visible part [ViewMinimum, ViewMaximum] of the axis is mapped,
// to the unit interval [0, 1].
type Axis struct {
	// Title is the axis title.
	Title string

	// ViewMinimum and ViewMaximum are the visible data range after zooming
	// and scrolling. NaN means "determine by autoscaling".
	ViewMinimum, ViewMaximum float64

	// ScaleType selects a linear or a logarithmic axis.
	ScaleType ScaleType

	// LogBase is the base of a logarithmic axis. Zero means 10.
	LogBase float64

	// IsReversed flips the direction of the axis.
	IsReversed bool

	// Data is the range covered by actual data.
	Data Interval

	// Autoscaling controls how Autoscale turns Data into a view.
	Autoscaling
}

// NewAxis returns a linear axis which autoscales to the actual data.
func NewAxis() *Axis {
	a := &Axis{
		ViewMinimum: math.NaN(),
		ViewMaximum: math.NaN(),
		Data:        unsetInterval(),
		ScaleType:   Linear,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
	}
	a.Expand.Relative = 0.05
	return a
}

// IsLogarithmic reports whether a is a logarithmic axis.
func (a *Axis) IsLogarithmic() bool { return a.ScaleType == Logarithmic }

func (a *Axis) logBase() float64 {
	if a.LogBase == 0 {
		return 10
	}
	return a.LogBase
}

// ToLogValue converts the data value v into the space the axis is linear
// in: the logarithm of v for logarithmic axes, v itself otherwise.
func (a *Axis) ToLogValue(v float64) float64 {
	if a.ScaleType != Logarithmic {
		return v
	}
	return math.Log(v) / math.Log(a.logBase())
}

// FromLogValue is the inverse of ToLogValue.
func (a *Axis) FromLogValue(lv float64) float64 {
	if a.ScaleType != Logarithmic {
		return lv
	}
	return math.Pow(a.logBase(), lv)
}

// LogView returns the view of a in the space returned by ToLogValue.
func (a *Axis) LogView() Interval {
	return Interval{a.ToLogValue(a.ViewMinimum), a.ToLogValue(a.ViewMaximum)}
}

// GetLinearPosition maps the (possibly log transformed) value lv to a
// fraction along the axis. Values outside of the view are clamped, so the
// result lies in [0, 1]. A degenerate view yields NaN.
func (a *Axis) GetLinearPosition(lv float64) float64 {
	view := a.LogView()
	if math.IsNaN(view.Min) || math.IsNaN(view.Max) || view.Min == view.Max {
		return math.NaN()
	}
	lv = view.Clamp(lv)
	f := LinearTrans.Trans(view, unitInterval, lv)
	if a.IsReversed {
		f = 1 - f
	}
	return f
}

// GetPosition maps the data value v through the transformation of a to a
// fraction along the axis. It equals GetLinearPosition(ToLogValue(v)) for
// values a logarithmic axis can show.
func (a *Axis) GetPosition(v float64) float64 {
	if a.IsLogarithmic() && !(v > 0) {
		return a.GetLinearPosition(a.ToLogValue(v))
	}
	view := Interval{a.ViewMinimum, a.ViewMaximum}
	if math.IsNaN(view.Min) || math.IsNaN(view.Max) || view.Min == view.Max {
		return math.NaN()
	}
	f := a.Trans().Trans(view, unitInterval, view.Clamp(v))
	if a.IsReversed {
		f = 1 - f
	}
	return f
}

// PositionToValue is the inverse of GetPosition for fractions in [0, 1].
func (a *Axis) PositionToValue(f float64) float64 {
	if a.IsReversed {
		f = 1 - f
	}
	return a.Trans().Inverse(Interval{a.ViewMinimum, a.ViewMaximum}, unitInterval, f)
}

// Trans returns the transformation from data values to axis fractions.
func (a *Axis) Trans() Transformation {
	if a.ScaleType != Logarithmic {
		return LinearTrans
	}
	if b := a.logBase(); b != 10 {
		return LogTrans(b)
	}
	return Log10Trans
}

// LogSpan converts the fraction f of the axis length to a distance in the
// space returned by ToLogValue.
func (a *Axis) LogSpan(f float64) float64 {
	view := a.LogView()
	return f * (view.Max - view.Min)
}

// InView reports whether the data value v lies in the view of a.
func (a *Axis) InView(v float64) bool {
	return v >= a.ViewMinimum && v <= a.ViewMaximum
}

// Clamp limits the data value v to the view of a.
func (a *Axis) Clamp(v float64) float64 {
	return Interval{a.ViewMinimum, a.ViewMaximum}.Clamp(v)
}

// InLogView reports whether the log transformed value lv lies in the view.
func (a *Axis) InLogView(lv float64) bool {
	view := a.LogView()
	return lv >= view.Min && lv <= view.Max
}

// Validate checks that a has a usable view.
func (a *Axis) Validate() error {
	if math.IsNaN(a.ViewMinimum) || math.IsNaN(a.ViewMaximum) {
		return ErrInvalidAxis.WithMessagef("axis %q has no view range", a.Title)
	}
	if !(a.ViewMinimum < a.ViewMaximum) {
		return ErrInvalidAxis.WithMessagef("axis %q: view minimum %g not below maximum %g",
			a.Title, a.ViewMinimum, a.ViewMaximum)
	}
	if a.ScaleType == Logarithmic {
		if a.ViewMinimum <= 0 {
			return ErrInvalidAxis.WithMessagef("logarithmic axis %q needs a positive view, got [%g, %g]",
				a.Title, a.ViewMinimum, a.ViewMaximum)
		}
		if b := a.logBase(); b <= 0 || b == 1 {
			return ErrInvalidAxis.WithMessagef("axis %q: invalid logarithm base %g", a.Title, b)
		}
	}
	return nil
}

// UpdateData updates the data range of a to cover i.
func (a *Axis) UpdateData(i Interval) {
	a.Data.Update(i.Min)
	a.Data.Update(i.Max)
}

// HasData reports whether the Data interval of a is valid.
func (a *Axis) HasData() bool {
	return !math.IsNaN(a.Data.Min) && !math.IsNaN(a.Data.Max)
}

// FixMin fixes the view minimum of a to x. If x is NaN the minimum is
// determined by autoscaling to the actual data.
func (a *Axis) FixMin(x float64) {
	a.MinRange.Min = x
	a.MinRange.Max = x
}

// FixMax fixes the view maximum of a to x.
func (a *Axis) FixMax(x float64) {
	a.MaxRange.Min = x
	a.MaxRange.Max = x
}

func (a *Axis) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("View=[%.2f:%.2f] Data=[%.2f:%.2f] %s %q",
		a.ViewMinimum, a.ViewMaximum, a.Data.Min, a.Data.Max, a.ScaleType, a.Title)
}

// Autoscale turns the data range into a view. An explicitly set view edge
// (non-NaN) is kept.
func (a *Axis) Autoscale() {
	if !a.HasData() {
		return
	}

	lo, hi := a.ToLogValue(a.Data.Min), a.ToLogValue(a.Data.Max)
	ext := a.Expand.Relative*(hi-lo) + a.Expand.Absolute

	if math.IsNaN(a.ViewMinimum) {
		if a.MinRange.Min == a.MinRange.Max {
			// Degenerate MinRange: the user has fixed the minimum.
			a.ViewMinimum = a.MinRange.Min
		} else {
			a.ViewMinimum = a.FromLogValue(lo - ext)
			if a.MinRange.Min > a.ViewMinimum {
				a.ViewMinimum = a.MinRange.Min
			}
			if a.MinRange.Max < a.ViewMinimum {
				a.ViewMinimum = a.MinRange.Max
			}
		}
	}

	if math.IsNaN(a.ViewMaximum) {
		if a.MaxRange.Min == a.MaxRange.Max {
			a.ViewMaximum = a.MaxRange.Min
		} else {
			a.ViewMaximum = a.FromLogValue(hi + ext)
			if a.MaxRange.Min > a.ViewMaximum {
				a.ViewMaximum = a.MaxRange.Min
			}
			if a.MaxRange.Max < a.ViewMaximum {
				a.ViewMaximum = a.MaxRange.Max
			}
		}
	}

	if a.ViewMinimum == a.ViewMaximum {
		if a.ScaleType == Logarithmic {
			a.ViewMinimum /= a.logBase()
			a.ViewMaximum *= a.logBase()
		} else {
			a.ViewMinimum--
			a.ViewMaximum++
		}
	}
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined.
type Interval struct {
	Min, Max float64
}

var unitInterval = Interval{0, 1}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are the same interval, treating NaN edges
// as equal.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// Clamp limits x to i.
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the known axis types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "log"}[int(st)]
}

const (
	Linear ScaleType = iota
	Logarithmic
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the view of an axis is derived from its data.
// Setting a range to a degenerate interval [f:f] will turn off autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded. For
	// logarithmic axes the expansion is applied in log space.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the view minimum.
	MaxRange Interval // MaxRange determines the allowed range of the view maximum.
}
