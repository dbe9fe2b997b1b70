package webui

import (
	"net/http"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"atmodash.openclimate.org/internal/logging"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err := debugIndexTemplate.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// debugIndexHandler dumps a loaded gas table for inspection. The gas query
// parameter picks the dataset; without one it lists the catalog. The gas is
// checked against the catalog before it is used as a file name.
func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	gas := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("gas")))

	if gas == "" {
		writeDebugData(w, "Choose a gas", map[string]interface{}{
			"hint":    "Pass ?gas=<id> to dump a dataset.",
			"catalog": webUI.Catalog.Gases,
		})
		return
	}

	if !webUI.Catalog.Contains(gas) {
		writeDebugData(w, "Unknown gas", map[string]string{"gas": gas, "error": "gas is not in the catalog"})
		return
	}

	ctx := logging.WithLogger(r.Context(), webUI.Logger)
	table, err := webUI.Store.Load(ctx, gas)
	if err != nil {
		writeDebugData(w, "Dataset load failed", map[string]string{"error": err.Error()})
		return
	}

	writeDebugData(w, "Dataset - "+gas, table)
}
