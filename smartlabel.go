package chartarea

import "gonum.org/v1/plot/vg"

// LabelAlignment is the position of a label relative to its anchor.
type LabelAlignment int

const (
	AlignCenter LabelAlignment = iota
	AlignTop
	AlignBottom
	AlignRight
	AlignLeft
	AlignTopLeft
	AlignTopRight
	AlignBottomLeft
	AlignBottomRight
)

func (la LabelAlignment) String() string {
	return []string{"Center", "Top", "Bottom", "Right", "Left",
		"TopLeft", "TopRight", "BottomLeft", "BottomRight"}[la]
}

// offset returns the unit direction of la.
func (la LabelAlignment) offset() (dx, dy vg.Length) {
	switch la {
	case AlignTop:
		return 0, 1
	case AlignBottom:
		return 0, -1
	case AlignRight:
		return 1, 0
	case AlignLeft:
		return -1, 0
	case AlignTopLeft:
		return -1, 1
	case AlignTopRight:
		return 1, 1
	case AlignBottomLeft:
		return -1, -1
	case AlignBottomRight:
		return 1, -1
	}
	return 0, 0
}

// SmartLabelStyle controls the overlap avoiding label placement.
type SmartLabelStyle struct {
	Enabled bool

	// AllowOutsidePlotArea keeps labels which do not fit anywhere at
	// their preferred position instead of hiding them.
	AllowOutsidePlotArea bool

	// MovingDirection is the order in which alternative alignments are
	// tried. Empty means all alignments in declaration order.
	MovingDirection []LabelAlignment

	// MinMovingDistance and MaxMovingDistance bound the absolute distance
	// between marker and label.
	MinMovingDistance vg.Length
	MaxMovingDistance vg.Length
}

var defaultMovingDirection = []LabelAlignment{AlignTop, AlignBottom, AlignRight, AlignLeft,
	AlignTopLeft, AlignTopRight, AlignBottomLeft, AlignBottomRight}

// Placement is the result of placing one label.
type Placement struct {
	Rect      vg.Rectangle
	Alignment LabelAlignment
	// Moved reports that the label left its preferred alignment; its text
	// angle must be drawn as zero.
	Moved bool
	// Hidden labels found no free slot and must not be drawn.
	Hidden bool
}

// SmartLabels remembers the labels and markers placed during the current
// paint pass of a chart area. All rectangles are relative.
type SmartLabels struct {
	Bounds  vg.Rectangle
	placed  []vg.Rectangle
	markers []vg.Rectangle
}

// Reset forgets all placed labels and markers and sets the bounds labels
// must stay within.
func (sl *SmartLabels) Reset(bounds vg.Rectangle) {
	sl.Bounds = CanonicRectangle(bounds)
	sl.placed = sl.placed[:0]
	sl.markers = sl.markers[:0]
}

// AddMarker registers a marker or bar labels should not cover.
func (sl *SmartLabels) AddMarker(r vg.Rectangle) {
	sl.markers = append(sl.markers, CanonicRectangle(r))
}

// Placed returns the rectangles of all placed labels.
func (sl *SmartLabels) Placed() []vg.Rectangle { return sl.placed }

// LabelRect returns the rectangle of a label of the given size placed
// with alignment la at distance from the marker around anchor.
func LabelRect(anchor, size, marker vg.Point, la LabelAlignment, distance vg.Point) vg.Rectangle {
	dx, dy := la.offset()
	c := vg.Point{
		X: anchor.X + dx*(marker.X/2+distance.X+size.X/2),
		Y: anchor.Y + dy*(marker.Y/2+distance.Y+size.Y/2),
	}
	return vg.Rectangle{
		Min: vg.Point{X: c.X - size.X/2, Y: c.Y - size.Y/2},
		Max: vg.Point{X: c.X + size.X/2, Y: c.Y + size.Y/2},
	}
}

// Place positions a label of the given relative size at anchor next to a
// marker of relative size marker. Without smart labels the preferred
// alignment is used unconditionally. Distances of sty are absolute and
// converted with g.
func (sl *SmartLabels) Place(g Graphics, sty SmartLabelStyle, anchor, size, marker vg.Point, preferred LabelAlignment) Placement {
	minDist := g.RelativeSize(vg.Point{X: sty.MinMovingDistance, Y: sty.MinMovingDistance})
	first := Placement{
		Rect:      LabelRect(anchor, size, marker, preferred, minDist),
		Alignment: preferred,
	}
	if !sty.Enabled {
		sl.placed = append(sl.placed, first.Rect)
		return first
	}
	if sl.free(first.Rect) {
		sl.placed = append(sl.placed, first.Rect)
		return first
	}

	dirs := sty.MovingDirection
	if len(dirs) == 0 {
		dirs = defaultMovingDirection
	}
	maxDist := g.RelativeSize(vg.Point{X: sty.MaxMovingDistance, Y: sty.MaxMovingDistance})
	if maxDist.X < minDist.X || maxDist.Y < minDist.Y {
		maxDist = minDist
	}
	const steps = 4
	for step := 0; step <= steps; step++ {
		f := vg.Length(step) / steps
		dist := vg.Point{
			X: minDist.X + f*(maxDist.X-minDist.X),
			Y: minDist.Y + f*(maxDist.Y-minDist.Y),
		}
		for _, la := range dirs {
			if la == preferred && step == 0 {
				continue
			}
			r := LabelRect(anchor, size, marker, la, dist)
			if sl.free(r) {
				sl.placed = append(sl.placed, r)
				return Placement{Rect: r, Alignment: la, Moved: la != preferred}
			}
		}
		if maxDist == minDist {
			break
		}
	}

	if sty.AllowOutsidePlotArea {
		sl.placed = append(sl.placed, first.Rect)
		return first
	}
	first.Hidden = true
	return first
}

// free reports whether r lies within the bounds and overlaps neither a
// placed label nor a marker.
func (sl *SmartLabels) free(r vg.Rectangle) bool {
	if sl.Bounds != (vg.Rectangle{}) && !Contains(sl.Bounds, r) {
		return false
	}
	for _, p := range sl.placed {
		if Overlaps(p, r) {
			return false
		}
	}
	for _, m := range sl.markers {
		if Overlaps(m, r) {
			return false
		}
	}
	return true
}
