package dashboard

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStory(t *testing.T) {
	t.Run("year and month", func(t *testing.T) {
		story := GenerateStory(12, "co2", KindLine, 2015, 6)

		assert.Contains(t, story, "Line Chart")
		assert.Contains(t, story, "CO2")
		assert.Contains(t, story, "June 2015")
		assert.Contains(t, story, "12 data points")
		assert.Contains(t, story, "varied across this month")
	})

	t.Run("year only", func(t *testing.T) {
		story := GenerateStory(48, "co2", KindScatter, 2015, 0)

		assert.Contains(t, story, "Scatter Plot")
		assert.Contains(t, story, "recorded in 2015")
		assert.Contains(t, story, "48 data points")
		assert.Contains(t, story, "yearly fluctuation")
	})

	t.Run("no filters", func(t *testing.T) {
		story := GenerateStory(240, "co2", KindStdScatter, 0, 0)

		assert.Contains(t, story, "Standard Deviation Scatter Plot")
		assert.Contains(t, story, "240 records")
		assert.Contains(t, story, "entire recorded period")
		// the gas name must be substituted everywhere
		assert.Equal(t, 2, strings.Count(story, "CO2"))
		assert.NotContains(t, story, "{")
	})

	t.Run("row count always matches input", func(t *testing.T) {
		for _, count := range []int{0, 1, 999} {
			story := GenerateStory(count, "co2", KindLine, 2015, 0)
			assert.Contains(t, story, "There are "+strconv.Itoa(count)+" data points")
		}
	})
}
