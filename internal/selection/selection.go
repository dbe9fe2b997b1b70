// Package selection normalizes the dashboard's three selector inputs (gas,
// year, month) into typed values. Every selector is placeholder-first;
// choosing the placeholder means "absent".
package selection

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"atmodash.openclimate.org/internal/appconf"
)

const (
	GasPlaceholder   = "Select Gas"
	YearPlaceholder  = "Select Year"
	MonthPlaceholder = "Select Month"

	// FirstYear is the earliest year offered by the year selector.
	FirstYear = 2000
)

// monthAbbrevs is the fixed dropdown ordering, Jan through Dec.
var monthAbbrevs = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthNumbers = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4,
	"May": 5, "Jun": 6, "Jul": 7, "Aug": 8,
	"Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// Selection is a normalized set of selector values. Gas is the lowercase gas
// ID or empty when unselected; Year and Month are zero when absent.
type Selection struct {
	Gas   string
	Year  int
	Month int
}

func (s Selection) HasGas() bool   { return s.Gas != "" }
func (s Selection) HasYear() bool  { return s.Year != 0 }
func (s Selection) HasMonth() bool { return s.Month != 0 }

// GasOptions returns the gas dropdown contents: the placeholder followed by
// the catalog labels in catalog order.
func GasOptions(catalog appconf.Catalog) []string {
	options := make([]string, 0, len(catalog.Gases)+1)
	options = append(options, GasPlaceholder)
	for _, gas := range catalog.Gases {
		options = append(options, gas.Label)
	}
	return options
}

// YearOptions returns the year dropdown contents: the placeholder followed by
// the contiguous range from FirstYear through the current calendar year.
func YearOptions(now time.Time) []string {
	options := []string{YearPlaceholder}
	for year := FirstYear; year <= now.Year(); year++ {
		options = append(options, strconv.Itoa(year))
	}
	return options
}

// MonthOptions returns the month dropdown contents: the placeholder followed
// by the twelve month abbreviations.
func MonthOptions() []string {
	options := []string{MonthPlaceholder}
	return append(options, monthAbbrevs...)
}

// Normalize converts raw selector values into a Selection. Placeholder and
// empty values become absent. Values outside the enumerated options populate
// the returned fieldErrors map instead of the Selection. Gas values that are
// not in the catalog are rejected; the gas flows into a dataset file name, so
// only catalog IDs are acceptable.
func Normalize(catalog appconf.Catalog, gas, year, month string, now time.Time) (Selection, map[string][]string) {
	fieldErrors := make(map[string][]string)
	var sel Selection

	gas = strings.TrimSpace(gas)
	if gas != "" && !strings.EqualFold(gas, GasPlaceholder) {
		id := strings.ToLower(gas)
		if catalog.Contains(id) {
			sel.Gas = id
		} else {
			fieldErrors["gas"] = append(fieldErrors["gas"], fmt.Sprintf("Invalid field value for field %q.", "gas"))
		}
	}

	year = strings.TrimSpace(year)
	if year != "" && year != YearPlaceholder {
		y, err := strconv.Atoi(year)
		if err != nil || y < FirstYear || y > now.Year() {
			fieldErrors["year"] = append(fieldErrors["year"], fmt.Sprintf("Invalid field value for field %q.", "year"))
		} else {
			sel.Year = y
		}
	}

	month = strings.TrimSpace(month)
	if month != "" && month != MonthPlaceholder {
		if m, ok := monthNumbers[month]; ok {
			sel.Month = m
		} else if m, err := strconv.Atoi(month); err == nil && m >= 1 && m <= 12 {
			sel.Month = m
		} else {
			fieldErrors["month"] = append(fieldErrors["month"], fmt.Sprintf("Invalid field value for field %q.", "month"))
		}
	}

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	return sel, fieldErrors
}

// MonthName returns the full English month name for a month number 1-12.
func MonthName(month int) string {
	return time.Month(month).String()
}
