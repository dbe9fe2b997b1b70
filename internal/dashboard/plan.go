// Package dashboard builds the render plan for one dashboard interaction:
// which charts to draw for the current selection, their titles, summary
// statistics and story text, and any user-facing messages.
package dashboard

import (
	"fmt"

	"atmodash.openclimate.org/internal/dataset"
	"atmodash.openclimate.org/internal/selection"
)

// ChartKind identifies one of the three supported visualizations.
type ChartKind string

const (
	KindLine       ChartKind = "line"
	KindScatter    ChartKind = "scatter"
	KindStdScatter ChartKind = "std_scatter"
)

// Kinds is the fixed rendering order of the dashboard.
var Kinds = []ChartKind{KindLine, KindScatter, KindStdScatter}

// Valid reports whether the kind is one of the supported chart kinds.
func (k ChartKind) Valid() bool {
	switch k {
	case KindLine, KindScatter, KindStdScatter:
		return true
	}
	return false
}

// Label returns the human-readable chart name used in story text.
func (k ChartKind) Label() string {
	switch k {
	case KindLine:
		return "Line Chart"
	case KindScatter:
		return "Scatter Plot"
	case KindStdScatter:
		return "Standard Deviation Scatter Plot"
	default:
		return "Data Overview"
	}
}

// Column returns the measurement column the kind charts by default.
func (k ChartKind) Column() dataset.Column {
	if k == KindStdScatter {
		return dataset.ColumnStdCO2
	}
	return dataset.ColumnAltMean
}

const (
	warningNoYearData  = "No data available for the selected year."
	warningNoMonthData = "No data available for the selected month and year."

	// SelectGasMessage prompts the user when the gas dropdown is still on
	// its placeholder.
	SelectGasMessage = "Please select a gas to start."
)

// NoFileMessage is the user-visible error shown when a gas has no backing
// dataset file.
func NoFileMessage(gas string) string {
	return fmt.Sprintf("No file found for %s", gas)
}

// ChartPlan describes one chart ready for rendering: the filtered rows, the
// column to plot, the title, and the accompanying story.
type ChartPlan struct {
	Kind   ChartKind
	Title  string
	Column dataset.Column
	Table  *dataset.Table
	Story  string
	Stats  dataset.Stats
}

// Plan is the outcome of one interaction: zero or more charts plus any
// warnings from pipelines whose filtered subset came back empty.
type Plan struct {
	Gas      string
	Charts   []ChartPlan
	Warnings []string
}

// BuildPlan runs the three chart pipelines over the table for the given
// selection. Each pipeline filters independently and yields either a chart
// or a warning.
func BuildPlan(table *dataset.Table, sel selection.Selection) Plan {
	plan := Plan{Gas: table.Gas}

	for _, kind := range Kinds {
		chart, warning := BuildChart(table, sel, kind)
		if warning != "" {
			plan.Warnings = append(plan.Warnings, warning)
			continue
		}
		if chart != nil {
			plan.Charts = append(plan.Charts, *chart)
		}
	}

	return plan
}

// BuildChart runs a single pipeline: filter by the selection, pick the
// y-axis column and title for the kind, and attach the story. It returns a
// nil chart with an empty warning when the selection produces no output at
// all (month chosen without a year).
func BuildChart(table *dataset.Table, sel selection.Selection, kind ChartKind) (*ChartPlan, string) {
	var (
		filtered *dataset.Table
		column   dataset.Column
		title    string
	)

	switch {
	case !sel.HasYear() && !sel.HasMonth():
		filtered = table
		column = kind.Column()
		title = fmt.Sprintf("Full Dataset: %s Over Time", column)

	case sel.HasYear() && !sel.HasMonth():
		filtered = table.FilterYear(sel.Year)
		if filtered.Empty() {
			return nil, warningNoYearData
		}
		column = kind.Column()
		title = fmt.Sprintf("%s Over Time in %d", column, sel.Year)

	case sel.HasYear() && sel.HasMonth():
		filtered = table.FilterYearMonth(sel.Year, sel.Month)
		if filtered.Empty() {
			return nil, warningNoMonthData
		}
		if kind == KindLine {
			// The line pipeline switches to the std CO2 column when both
			// year and month are chosen, matching the historical dashboard.
			column = dataset.ColumnStdCO2
			title = fmt.Sprintf("Standard Deviation of CO2 in %d %d", sel.Month, sel.Year)
		} else {
			column = kind.Column()
			title = fmt.Sprintf("%s Over Time in %d %d", column, sel.Month, sel.Year)
		}

	default:
		// Month without year has no defined view; nothing is drawn.
		return nil, ""
	}

	return &ChartPlan{
		Kind:   kind,
		Title:  title,
		Column: column,
		Table:  filtered,
		Story:  GenerateStory(filtered.Len(), table.Gas, kind, sel.Year, sel.Month),
		Stats:  filtered.Summarize(column),
	}, ""
}
