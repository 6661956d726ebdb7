package chartarea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
)

func TestLabelRect(t *testing.T) {
	anchor := vg.Point{X: 50, Y: 50}
	size := vg.Point{X: 10, Y: 4}
	marker := vg.Point{X: 2, Y: 2}
	dist := vg.Point{X: 1, Y: 1}
	for _, tc := range []struct {
		la   LabelAlignment
		want vg.Rectangle
	}{
		{AlignCenter, rect(45, 48, 55, 52)},
		{AlignTop, rect(45, 52, 55, 56)},
		{AlignBottom, rect(45, 44, 55, 48)},
		{AlignRight, rect(52, 48, 62, 52)},
		{AlignLeft, rect(38, 48, 48, 52)},
		{AlignTopRight, rect(52, 52, 62, 56)},
	} {
		t.Run(tc.la.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, LabelRect(anchor, size, marker, tc.la, dist))
		})
	}
}

func TestSmartLabelsPlace(t *testing.T) {
	g := NewRecorder(100, 100)
	anchor := vg.Point{X: 50, Y: 50}
	size := vg.Point{X: 10, Y: 4}
	marker := vg.Point{X: 2, Y: 2}
	sty := SmartLabelStyle{Enabled: true, MinMovingDistance: 1, MaxMovingDistance: 5}

	var sl SmartLabels
	sl.Reset(rect(0, 0, 100, 100))

	first := sl.Place(g, sty, anchor, size, marker, AlignTop)
	assert.Equal(t, AlignTop, first.Alignment)
	assert.False(t, first.Moved)
	assert.False(t, first.Hidden)

	second := sl.Place(g, sty, anchor, size, marker, AlignTop)
	assert.Equal(t, AlignBottom, second.Alignment)
	assert.True(t, second.Moved)
	assert.False(t, Overlaps(first.Rect, second.Rect))
	assert.Len(t, sl.Placed(), 2)

	sl.Reset(rect(0, 0, 100, 100))
	assert.Empty(t, sl.Placed())
}

func TestSmartLabelsAvoidMarkers(t *testing.T) {
	g := NewRecorder(100, 100)
	sty := SmartLabelStyle{Enabled: true, MinMovingDistance: 1, MaxMovingDistance: 1,
		MovingDirection: []LabelAlignment{AlignRight}}

	var sl SmartLabels
	sl.Reset(rect(0, 0, 100, 100))
	sl.AddMarker(rect(40, 53, 60, 60))

	p := sl.Place(g, sty, vg.Point{X: 50, Y: 50}, vg.Point{X: 10, Y: 4}, vg.Point{X: 2, Y: 2}, AlignTop)
	assert.Equal(t, AlignRight, p.Alignment)
	assert.True(t, p.Moved)
}

func TestSmartLabelsNoRoom(t *testing.T) {
	g := NewRecorder(100, 100)
	bounds := rect(40, 40, 60, 60)
	big := vg.Point{X: 30, Y: 4}
	anchor := vg.Point{X: 50, Y: 50}

	sty := SmartLabelStyle{Enabled: true, MinMovingDistance: 1, MaxMovingDistance: 3}
	var sl SmartLabels
	sl.Reset(bounds)
	p := sl.Place(g, sty, anchor, big, vg.Point{}, AlignTop)
	assert.True(t, p.Hidden)
	assert.Empty(t, sl.Placed())

	sty.AllowOutsidePlotArea = true
	p = sl.Place(g, sty, anchor, big, vg.Point{}, AlignTop)
	assert.False(t, p.Hidden)
	assert.Equal(t, AlignTop, p.Alignment)

	sty = SmartLabelStyle{}
	p = sl.Place(g, sty, anchor, big, vg.Point{}, AlignLeft)
	assert.False(t, p.Hidden)
	assert.Equal(t, AlignLeft, p.Alignment)
}
