// Package chartarea renders data series into rectangular chart areas.
//
// It uses gonum.org/v1/plot/vg for all geometry and drawing.
//
// Chart Areas
//
// A Chart holds named chart areas and a collection of series. Every area
// owns four axes:
//   - X    primary horizontal axis
//   - Y    primary vertical axis
//   - X2   secondary horizontal axis
//   - Y2   secondary vertical axis
//
// A series is bound to one area by name and to the primary or secondary
// axis in each direction. Positions of areas, points, labels and hot
// regions are relative: percent of the size of the Graphics the chart is
// painted on.
//
// Rendering
//
// Render computes the data range of every axis, autoscales the axes and
// lets the chart type of each series paint it. Chart types live in package
// charttype and are looked up by name in a Registry. Painting goes through
// the Graphics interface: CanvasGraphics draws to a vg canvas, Recorder
// keeps the primitives for inspection.
//
// Areas may be drawn in 3D. The area then holds a projection Matrix and
// chart types project their geometry through it.
//
// Facets
//
// A Facet is a grid of areas sharing their axes, or with free axes per
// column or row. Split distributes the points of one series over the cells
// of a facet, Partitioner turns continuous values into discrete groups.
package chartarea
