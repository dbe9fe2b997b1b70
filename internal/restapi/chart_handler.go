package restapi

import (
	"errors"
	"net/http"
	"time"

	"atmodash.openclimate.org/internal/charts"
	"atmodash.openclimate.org/internal/dashboard"
	"atmodash.openclimate.org/internal/dataset"
	"atmodash.openclimate.org/internal/logging"
	"atmodash.openclimate.org/internal/selection"
	"atmodash.openclimate.org/internal/utils"
)

// chartHandler renders one chart kind as a PNG for the given selection.
func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	kind := dashboard.ChartKind(utils.ExtractKindFromParams(r))
	if !kind.Valid() {
		http.Error(w, "null", http.StatusBadRequest)
		return
	}

	params := r.URL.Query()
	sel, fieldErrors := selection.Normalize(api.Catalog, params.Get("gas"), params.Get("year"), params.Get("month"), time.Now())
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if !sel.HasGas() {
		api.sendNotFound(w, r)
		return
	}

	ctx := logging.WithLogger(r.Context(), api.Logger)
	table, err := api.Store.Load(ctx, sel.Gas)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	plan, _ := dashboard.BuildChart(table, sel, kind)
	if plan == nil || plan.Table.Empty() {
		// empty subset, empty dataset, or unsupported month-only selection
		api.sendNotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := charts.Render(w, *plan); err != nil {
		logging.LogError(api.Logger, "chart render failed", err)
	}
}
