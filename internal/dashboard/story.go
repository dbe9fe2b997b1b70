package dashboard

import (
	"fmt"
	"strings"

	"atmodash.openclimate.org/internal/selection"
)

// GenerateStory produces the natural-language sentence shown below a chart.
// It is a pure function of the charted row count, the gas, the chart kind
// and the optional year/month filter (zero meaning absent).
func GenerateStory(count int, gas string, kind ChartKind, year, month int) string {
	gasName := strings.ToUpper(gas)
	label := kind.Label()

	switch {
	case year != 0 && month != 0:
		return fmt.Sprintf(
			"The %s represents the concentration of %s during %s %d. "+
				"The dataset contains %d data points for this time period, "+
				"showing how the concentration of %s varied across this month.",
			label, gasName, selection.MonthName(month), year, count, gasName)

	case year != 0:
		return fmt.Sprintf(
			"The %s highlights the %s levels recorded in %d. "+
				"There are %d data points representing %s concentration changes over the year. "+
				"This visualization captures the yearly fluctuation and trends in gas concentration.",
			label, gasName, year, count, gasName)

	default:
		return fmt.Sprintf(
			"The %s covers the full dataset with %d records for %s. "+
				"This chart provides a comprehensive overview of %s concentrations over the "+
				"entire recorded period, allowing us to observe both seasonal and longer-term trends.",
			label, count, gasName, gasName)
	}
}
