package charttype

import (
	"math"
	"sort"
	"strings"

	"github.com/ansel1/merry"
	"github.com/vdobler/chartarea"
	"github.com/vdobler/chartarea/data"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// SideBySide is the DrawSideBySide policy of a series or point.
type SideBySide int

const (
	SideBySideAuto SideBySide = iota
	SideBySideTrue
	SideBySideFalse
)

func (sbs SideBySide) String() string {
	return [...]string{"Auto", "True", "False"}[sbs]
}

// ParseSideBySide parses a DrawSideBySide value, ignoring case.
func ParseSideBySide(s string) (SideBySide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return SideBySideAuto, nil
	case "true":
		return SideBySideTrue, nil
	case "false":
		return SideBySideFalse, nil
	}
	return SideBySideAuto, chartarea.ErrInvalidCustomProperty.
		WithValue("property", chartarea.PropDrawSideBySide).
		WithValue("value", s).
		WithMessagef("invalid %s value %q, want Auto, True or False", chartarea.PropDrawSideBySide, s)
}

// sideBySideOf reads the DrawSideBySide policy of point p of s. A nil p
// reads the series policy.
func sideBySideOf(s *data.Series, p *data.Point) (SideBySide, error) {
	v, ok := chartarea.Properties(s, p).Lookup(chartarea.PropDrawSideBySide)
	if !ok {
		return SideBySideAuto, nil
	}
	sbs, err := ParseSideBySide(v)
	if err != nil {
		return sbs, merry.WithValue(err, "series", s.Name)
	}
	return sbs, nil
}

// Layout is the width of the box of one series in a category and the
// offset of its center from the category position.
type Layout struct {
	Width, Offset float64
}

// ResolveLayout splits total among n side by side series and returns the
// layout of the i'th one. The n boxes are contiguous and centered on the
// category position.
func ResolveLayout(total float64, n, i int) Layout {
	if n <= 1 {
		return Layout{Width: total}
	}
	w := total / float64(n)
	return Layout{
		Width:  w,
		Offset: -total/2 + w/2 + float64(i)*w,
	}
}

// ----------------------------------------------------------------------------
// Peer groups

// A group is the side by side peer group of a series in an area.
type group struct {
	// Peers are the series drawn side by side, in collection order. It is
	// empty if the series is not drawn side by side.
	Peers []*data.Series
	// Index of the series among Peers.
	Index int
	// Interval is the distance of two categories in the space of the X
	// axis ToLogValue.
	Interval float64
}

// N returns the number of boxes sharing a category.
func (g group) N() int {
	if len(g.Peers) == 0 {
		return 1
	}
	return len(g.Peers)
}

// isLinked reports whether s takes its position from another series.
func isLinked(s *data.Series) bool {
	if !s.IsChartType(ErrorBarName) {
		return false
	}
	v, ok := chartarea.Properties(s, nil).Lookup(chartarea.PropErrorBarSeries)
	return ok && v != ""
}

// peerGroup determines the side by side peer group of s in area.
//
// Candidates are the series whose chart type draws side by side, which
// are not linked and whose policy is not False. True series are always
// in the group, Auto series only if all candidates are indexed or share
// identical X values.
func peerGroup(common *chartarea.Common, area *chartarea.Area, s *data.Series) (group, error) {
	return groupOf(common, area, s, false)
}

// forcedPeerGroup is the peer group of s if its own policy were True. It
// places points of s whose DrawSideBySide is True.
func forcedPeerGroup(common *chartarea.Common, area *chartarea.Area, s *data.Series) (group, error) {
	return groupOf(common, area, s, true)
}

func groupOf(common *chartarea.Common, area *chartarea.Area, s *data.Series, force bool) (group, error) {
	hs, _ := area.Axes(s)
	var candidates []*data.Series
	policies := map[*data.Series]SideBySide{}
	for _, t := range common.AreaSeries(area) {
		ct, err := common.TypeOf(t)
		if err != nil {
			return group{}, err
		}
		if !ct.Capabilities().SideBySide || isLinked(t) {
			continue
		}
		if th, _ := area.Axes(t); th != hs {
			continue
		}
		sbs, err := sideBySideOf(t, nil)
		if err != nil {
			return group{}, err
		}
		if force && t == s {
			sbs = SideBySideTrue
		}
		if sbs == SideBySideFalse {
			continue
		}
		policies[t] = sbs
		candidates = append(candidates, t)
	}

	g := group{Index: -1, Interval: pointsInterval(hs, candidatesOr(candidates, s))}
	auto := alignedCategories(candidates)
	for _, t := range candidates {
		if policies[t] == SideBySideAuto && !auto {
			continue
		}
		g.Peers = append(g.Peers, t)
	}
	for i, t := range g.Peers {
		if t == s {
			g.Index = i
		}
	}
	if g.Index < 0 {
		g.Peers, g.Index = nil, 0
	}
	return g, nil
}

func candidatesOr(candidates []*data.Series, s *data.Series) []*data.Series {
	if len(candidates) == 0 {
		return []*data.Series{s}
	}
	return candidates
}

// alignedCategories reports whether all series are indexed or all have
// identical X values.
func alignedCategories(series []*data.Series) bool {
	if len(series) == 0 {
		return false
	}
	indexed := true
	for _, s := range series {
		indexed = indexed && s.IsXValueIndexed
	}
	if indexed {
		return true
	}
	first := series[0]
	for _, s := range series[1:] {
		if s.IsXValueIndexed || first.IsXValueIndexed || len(s.Points) != len(first.Points) {
			return false
		}
		for i := range s.Points {
			if s.Points[i].XValue != first.Points[i].XValue {
				return false
			}
		}
	}
	return true
}

// pointsInterval returns the smallest distance between two distinct X
// values of series in the space of h.ToLogValue, or 1 if any series is
// indexed or there are less than two X values.
func pointsInterval(h *chartarea.Axis, series []*data.Series) float64 {
	var xs []float64
	for _, s := range series {
		if s.IsXValueIndexed {
			return 1
		}
		for i := range s.Points {
			lx := h.ToLogValue(s.XValue(i))
			if !math.IsNaN(lx) && !math.IsInf(lx, 0) {
				xs = append(xs, lx)
			}
		}
	}
	sort.Float64s(xs)
	md := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := xs[i] - xs[i-1]; d > 0 && d < md {
			md = d
		}
	}
	if math.IsInf(md, 1) {
		return 1
	}
	return md
}

// ----------------------------------------------------------------------------
// Point placement

// boxLayout computes where the boxes of series s are drawn.
type boxLayout struct {
	group    group
	forced   group     // group of s for points with DrawSideBySide=True
	total    vg.Length // relative width of a whole category
	minWidth vg.Length // relative width limits from the pixel properties
	maxWidth vg.Length
}

// newBoxLayout resolves the peer group of s and the relative width of a
// category from the point interval and the PointWidth of s.
func newBoxLayout(g chartarea.Graphics, common *chartarea.Common, area *chartarea.Area, s *data.Series) (boxLayout, error) {
	grp, err := peerGroup(common, area, s)
	if err != nil {
		return boxLayout{}, err
	}
	forced := grp
	if len(grp.Peers) == 0 {
		if forced, err = forcedPeerGroup(common, area, s); err != nil {
			return boxLayout{}, err
		}
	}
	props := chartarea.Properties(s, nil)
	pw, err := props.Float(chartarea.PropPointWidth, defaultPointWidth(s.ChartType))
	if err != nil {
		return boxLayout{}, err
	}
	h, _ := area.Axes(s)
	bl := boxLayout{
		group:  grp,
		forced: forced,
		total: area.RelativeInterval(h, grp.Interval) * vg.Length(pw),
	}
	minPx, err := props.Int(chartarea.PropMinPixelPointWidth, 0)
	if err != nil {
		return boxLayout{}, err
	}
	maxPx, err := props.Int(chartarea.PropMaxPixelPointWidth, 0)
	if err != nil {
		return boxLayout{}, err
	}
	if minPx > 0 {
		bl.minWidth = g.RelativeSize(vg.Point{X: pixels(g, minPx)}).X
	}
	if maxPx > 0 {
		bl.maxWidth = g.RelativeSize(vg.Point{X: pixels(g, maxPx)}).X
	}
	Logger().Debug("side by side layout",
		zap.String("series", s.Name),
		zap.Int("peers", grp.N()),
		zap.Int("index", grp.Index),
		zap.Float64("interval", grp.Interval),
		zap.Float64("total", float64(bl.total)),
	)
	return bl, nil
}

// pixels converts n device pixels of g to an absolute length.
func pixels(g chartarea.Graphics, n int) vg.Length {
	dpi := g.DPI()
	if dpi <= 0 {
		dpi = 72
	}
	return vg.Length(float64(n) * float64(vg.Inch) / dpi)
}

// place returns the relative width and center offset of point p. The
// DrawSideBySide of a point beats the one of its series: False uses the
// whole category width, True takes the slot of s among its peers even if
// the series itself is not drawn side by side.
func (bl boxLayout) place(s *data.Series, p *data.Point) (width, offset vg.Length, err error) {
	n, i := bl.group.N(), bl.group.Index
	if p != nil && p.Props != nil {
		if v, ok := p.Props.Get(chartarea.PropDrawSideBySide); ok {
			sbs, err := ParseSideBySide(v)
			if err != nil {
				return 0, 0, merry.WithValue(err, "series", s.Name)
			}
			switch sbs {
			case SideBySideFalse:
				n, i = 1, 0
			case SideBySideTrue:
				n, i = bl.forced.N(), bl.forced.Index
			}
		}
	}
	l := ResolveLayout(float64(bl.total), n, i)
	width, offset = vg.Length(l.Width), vg.Length(l.Offset)
	if bl.minWidth > 0 && width < bl.minWidth {
		width = bl.minWidth
	}
	if bl.maxWidth > 0 && width > bl.maxWidth {
		width = bl.maxWidth
	}
	return width, offset, nil
}
