package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"atmodash.openclimate.org/internal/dashboard"
	"atmodash.openclimate.org/internal/dataset"
	"atmodash.openclimate.org/internal/logging"
	"atmodash.openclimate.org/internal/models"
	"atmodash.openclimate.org/internal/selection"
)

// dashboardHandler builds the render plan for the current selection. The
// dataset is loaded fresh on every call; nothing is cached between requests.
func (api *RestAPI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	sel, fieldErrors := selection.Normalize(api.Catalog, params.Get("gas"), params.Get("year"), params.Get("month"), time.Now())
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if !sel.HasGas() {
		api.sendResponse(w, r, models.NewOKResponse(models.DashboardData{
			Info:   dashboard.SelectGasMessage,
			Charts: []models.ChartEntry{},
		}))
		return
	}

	ctx := logging.WithLogger(r.Context(), api.Logger)
	table, err := api.Store.Load(ctx, sel.Gas)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			api.sendResponse(w, r, models.NewOKResponse(models.DashboardData{
				Gas:    sel.Gas,
				Error:  dashboard.NoFileMessage(sel.Gas),
				Charts: []models.ChartEntry{},
			}))
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	plan := dashboard.BuildPlan(table, sel)

	data := models.DashboardData{
		Gas:      sel.Gas,
		Warnings: plan.Warnings,
		Charts:   make([]models.ChartEntry, 0, len(plan.Charts)),
	}
	for _, chart := range plan.Charts {
		data.Charts = append(data.Charts, models.ChartEntry{
			Kind:     string(chart.Kind),
			Title:    chart.Title,
			Story:    chart.Story,
			RowCount: chart.Table.Len(),
			Stats:    chart.Stats,
			ImageURL: ChartImageURL(chart.Kind, sel),
		})
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}

// ChartImageURL builds the PNG endpoint URL for a chart kind under the
// given selection.
func ChartImageURL(kind dashboard.ChartKind, sel selection.Selection) string {
	query := url.Values{}
	query.Set("gas", sel.Gas)
	if sel.HasYear() {
		query.Set("year", strconv.Itoa(sel.Year))
	}
	if sel.HasMonth() {
		query.Set("month", strconv.Itoa(sel.Month))
	}
	return fmt.Sprintf("/api/chart/%s.png?%s", kind, query.Encode())
}
