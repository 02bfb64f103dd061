// Package xychart is the state and geometry core of an interactive XY chart.
//
// It uses gonum.org/v1/plot for ticks and data ranges and leaves the actual
// drawing to a Painter, see package geom for one drawing on a gonum canvas.
//
// Series
//
// A Chart holds named series of data points in creation order. Points are
// appended one by one or in batches; a series is created on its first point
// unless the chart is strict. If a maximum length per series is set the
// oldest points are dropped, which keeps realtime charts bounded in memory.
// Operations naming unknown series or axes do nothing.
//
// Axes and scaling
//
// The X range is shared by all series. The Y range is either one global
// range or, in multi axis mode, the range of the Y-axis a series is
// assigned to. Axis 0 always exists. Ranges are fixed by the caller or
// autoscaled: the range covered by the visible data is widened by 5% on
// both sides, constant data gets a unit wide range and no data gives [0,10].
// In multi axis mode axes are stacked left and right of the plot area in
// ascending id order.
//
// Drawing
//
// Chart.Frame computes a widget space snapshot of the chart and Chart.Paint
// hands it to a Painter layer by layer: background, title, grid, axes,
// series, legend, crosshair.
package xychart
