package chartarea

import (
	"fmt"
	"math"

	"github.com/vdobler/chartarea/data"
)

// A GroupID identifies the cell of a facet a point is drawn in.
type GroupID struct {
	Row, Col int
}

// Split distributes the points of s over the areas of f. The function
// group returns the zero based cell of point i, points outside of the grid
// are dropped. One series per non-empty cell is returned in row-major
// order, named "name[row,col]" like the areas and assigned to the area of
// its cell. Indexed X values are kept as explicit values.
func (f *Facet) Split(s *data.Series, group func(i int) GroupID) []*data.Series {
	cells := make(map[GroupID]*data.Series)
	for i := range s.Points {
		gid := group(i)
		a := f.Area(gid.Row, gid.Col)
		if a == nil {
			continue
		}
		t, ok := cells[gid]
		if !ok {
			t = data.NewSeries(fmt.Sprintf("%s[%d,%d]", s.Name, gid.Row+1, gid.Col+1), s.ChartType)
			t.ChartArea = a.Name
			t.XAxisType, t.YAxisType = s.XAxisType, s.YAxisType
			t.YValuesPerPoint = s.YValuesPerPoint
			t.Hidden = s.Hidden
			t.Style = s.Style
			for k, v := range s.Props {
				t.Props.Set(k, v)
			}
			cells[gid] = t
		}
		p := s.Points[i]
		p.XValue = s.XValue(i)
		p.YValues = append([]float64(nil), p.YValues...)
		t.Points = append(t.Points, p)
	}

	var r []*data.Series
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			if t, ok := cells[GroupID{row, col}]; ok {
				r = append(r, t)
			}
		}
	}
	return r
}

// A Partitioner turns a continuous value into a discrete group: one of
// Partitions equally wide buckets of Range.
type Partitioner struct {
	Partitions int
	Range      Interval
}

// NewPartitioner returns a partitioner with n buckets and an unset range.
func NewPartitioner(n int) *Partitioner {
	return &Partitioner{Partitions: n, Range: unsetInterval()}
}

// Learn extends the range of p to cover x.
func (p *Partitioner) Learn(x ...float64) { p.Range.Update(x...) }

// Partition returns the bucket of x. Values below the range yield -1,
// values above it Partitions. The maximum belongs to the last bucket.
func (p *Partitioner) Partition(x float64) int {
	min, max := p.Range.Min, p.Range.Max
	switch {
	case x < min:
		return -1
	case x > max:
		return p.Partitions
	case x == max || min == max:
		return p.Partitions - 1
	}
	w := (max - min) / float64(p.Partitions)
	k := int(math.Floor((x - min) / w))
	if k >= p.Partitions {
		k = p.Partitions - 1
	}
	return k
}

// Label describes bucket k as an interval.
func (p *Partitioner) Label(k int) string {
	min, max := p.Range.Min, p.Range.Max
	if k < 0 {
		return fmt.Sprintf("(-∞, %g)", min)
	}
	if k >= p.Partitions {
		return fmt.Sprintf("(%g, ∞)", max)
	}
	w := (max - min) / float64(p.Partitions)
	if k == p.Partitions-1 {
		return fmt.Sprintf("[%g, %g]", min+float64(k)*w, max)
	}
	return fmt.Sprintf("[%g, %g)", min+float64(k)*w, min+float64(k+1)*w)
}
