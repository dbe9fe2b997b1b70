package restapi

import (
	"net/http"
	"time"

	"atmodash.openclimate.org/internal/models"
	"atmodash.openclimate.org/internal/selection"
)

// optionsHandler returns the dropdown contents for the three selectors.
func (api *RestAPI) optionsHandler(w http.ResponseWriter, r *http.Request) {
	data := models.OptionsData{
		Gases:  selection.GasOptions(api.Catalog),
		Years:  selection.YearOptions(time.Now()),
		Months: selection.MonthOptions(),
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
