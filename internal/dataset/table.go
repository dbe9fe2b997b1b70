package dataset

import (
	"math"
	"time"
)

// Column names a measurement column in a gas table. The values match the
// CSV headers exactly.
type Column string

const (
	ColumnAltMean Column = "Alt_Mean"
	ColumnStdCO2  Column = "std CO2"
)

// Row is one cleaned measurement: its parsed date plus the two measurement
// values. A Row only exists if its date parsed.
type Row struct {
	Date    time.Time
	AltMean float64
	StdCO2  float64
}

// Value returns the named measurement column of the row.
func (r Row) Value(col Column) float64 {
	if col == ColumnStdCO2 {
		return r.StdCO2
	}
	return r.AltMean
}

// Year returns the calendar year derived from the row's date.
func (r Row) Year() int {
	return r.Date.Year()
}

// Table is a cleaned gas dataset. Filters derive transient subsets; the
// underlying rows are never mutated.
type Table struct {
	Gas  string
	Rows []Row
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// FilterYear returns the subset of rows whose derived year matches.
func (t *Table) FilterYear(year int) *Table {
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Year() == year {
			rows = append(rows, row)
		}
	}
	return &Table{Gas: t.Gas, Rows: rows}
}

// FilterYearMonth returns the subset of rows matching both the derived year
// and the calendar month.
func (t *Table) FilterYearMonth(year, month int) *Table {
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Year() == year && int(row.Date.Month()) == month {
			rows = append(rows, row)
		}
	}
	return &Table{Gas: t.Gas, Rows: rows}
}

// Dates returns the date column in row order.
func (t *Table) Dates() []time.Time {
	dates := make([]time.Time, len(t.Rows))
	for i, row := range t.Rows {
		dates[i] = row.Date
	}
	return dates
}

// Values returns the named measurement column in row order.
func (t *Table) Values(col Column) []float64 {
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row.Value(col)
	}
	return values
}

// Stats are summary statistics over one measurement column. NaN cells
// (unparseable numbers in the source CSV) are excluded.
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stdDev"`
}

// Summarize computes summary statistics for the named column.
func (t *Table) Summarize(col Column) Stats {
	var (
		count int
		sum   float64
		min   = math.Inf(1)
		max   = math.Inf(-1)
	)

	for _, row := range t.Rows {
		v := row.Value(col)
		if math.IsNaN(v) {
			continue
		}
		count++
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if count == 0 {
		return Stats{}
	}

	mean := sum / float64(count)

	var sqsum float64
	for _, row := range t.Rows {
		v := row.Value(col)
		if math.IsNaN(v) {
			continue
		}
		diff := v - mean
		sqsum += diff * diff
	}

	return Stats{
		Count:  count,
		Mean:   mean,
		Min:    min,
		Max:    max,
		StdDev: math.Sqrt(sqsum / float64(count)),
	}
}
