// Package webui serves the browser-facing dashboard page and a debug view
// of the loaded datasets. The heavy lifting happens in the dashboard and
// charts packages; this package only renders HTML around their output.
package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"atmodash.openclimate.org/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
