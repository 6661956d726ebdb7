// Package charttype provides the chart types of a chart area.
//
// Each chart type implements chartarea.ChartType. Its Paint method draws
// all series of the type in an area in two passes: the geometry pass maps
// every visible point through the axes of its series, resolves the side by
// side layout and, in 3D areas, the Z position of the series, emits the
// primitives and records hot regions and the relative position of the
// point. The label pass then draws the point labels, optionally placed by
// smart labels.
//
// Chart types are configured through the string custom properties of
// their series and points. Invalid property values are errors returned
// from Paint, never silently replaced by defaults.
//
// Use NewRegistry to obtain a registry with all chart types of this
// package.
package charttype
