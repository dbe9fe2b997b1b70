package webui

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"atmodash.openclimate.org/internal/dashboard"
	"atmodash.openclimate.org/internal/dataset"
	"atmodash.openclimate.org/internal/logging"
	"atmodash.openclimate.org/internal/restapi"
	"atmodash.openclimate.org/internal/selection"
)

//go:embed dashboard.html debug_index.html
var templateFS embed.FS

// Templates are parsed once at startup; a parse failure is a packaging
// defect, not a request-time condition.
var (
	dashboardTemplate  = template.Must(template.ParseFS(templateFS, "dashboard.html"))
	debugIndexTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))
)

type chartView struct {
	Title    string
	Story    string
	ImageURL string
}

type dashboardPage struct {
	Title         string
	GasOptions    []string
	YearOptions   []string
	MonthOptions  []string
	SelectedGas   string
	SelectedYear  string
	SelectedMonth string
	Info          string
	Error         string
	Warnings      []string
	Charts        []chartView
}

// dashboardHandler renders the selector form plus, when a gas is chosen,
// the planned charts and their stories. Every page load re-runs the whole
// selection/load/filter pipeline, mirroring the request-per-interaction
// model the dashboard is built on.
func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	now := time.Now()

	page := dashboardPage{
		Title:         "Atmospheric Gases Concentration Dashboard",
		GasOptions:    selection.GasOptions(webUI.Catalog),
		YearOptions:   selection.YearOptions(now),
		MonthOptions:  selection.MonthOptions(),
		SelectedGas:   params.Get("gas"),
		SelectedYear:  params.Get("year"),
		SelectedMonth: params.Get("month"),
	}

	sel, fieldErrors := selection.Normalize(webUI.Catalog, params.Get("gas"), params.Get("year"), params.Get("month"), now)
	for field := range fieldErrors {
		page.Warnings = append(page.Warnings, fmt.Sprintf("Ignoring invalid %s selection.", field))
	}

	switch {
	case fieldErrors != nil:
		// fall through to render the bare form with the warnings

	case !sel.HasGas():
		page.Info = dashboard.SelectGasMessage

	default:
		ctx := logging.WithLogger(r.Context(), webUI.Logger)
		table, err := webUI.Store.Load(ctx, sel.Gas)
		if err != nil {
			if errors.Is(err, dataset.ErrNotFound) {
				page.Error = dashboard.NoFileMessage(sel.Gas)
				break
			}
			logging.LogError(webUI.Logger, "dashboard page load failed", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		plan := dashboard.BuildPlan(table, sel)
		page.Warnings = append(page.Warnings, plan.Warnings...)
		for _, chart := range plan.Charts {
			page.Charts = append(page.Charts, chartView{
				Title:    chart.Title,
				Story:    chart.Story,
				ImageURL: restapi.ChartImageURL(chart.Kind, sel),
			})
		}
	}

	w.Header().Set("Content-Type", "text/html")
	if err := dashboardTemplate.Execute(w, page); err != nil {
		logging.LogError(webUI.Logger, "failed to render dashboard page", err)
	}
}
