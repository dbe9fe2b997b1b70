// Package charts turns a chart plan into a rendered PNG.
package charts

import (
	"errors"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"atmodash.openclimate.org/internal/dashboard"
)

// ErrNoRows indicates a render attempt over an empty table. The pipeline
// never plans a chart for an empty subset, so hitting this means the caller
// skipped the plan.
var ErrNoRows = errors.New("no rows to chart")

const (
	chartWidth  = 900
	chartHeight = 450
)

// pointStyle returns a style that renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: col,
	}
}

// Render draws the planned chart as a PNG to w.
func Render(w io.Writer, plan dashboard.ChartPlan) error {
	if plan.Table.Empty() {
		return ErrNoRows
	}

	style := pointStyle(chart.ColorBlue)
	if plan.Kind == dashboard.KindLine {
		style = lineStyle(chart.ColorBlue)
	}

	xs := plan.Table.Dates()
	ys := plan.Table.Values(plan.Column)
	if len(xs) == 1 {
		// go-chart needs two values per series; repeat a lone point a day out
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}

	series := chart.TimeSeries{
		Name:    string(plan.Column),
		XValues: xs,
		YValues: ys,
		Style:   style,
	}

	graph := chart.Chart{
		Title:  plan.Title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Range: yRange(ys),
		},
		Series: []chart.Series{series},
	}

	return graph.Render(chart.PNG, w)
}

// yRange pads out a degenerate value range so constant series still
// translate to canvas coordinates.
func yRange(ys []float64) chart.Range {
	min, max := ys[0], ys[0]
	for _, y := range ys {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	if min != max {
		return nil
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}
