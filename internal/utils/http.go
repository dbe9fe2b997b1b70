package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractKindFromParams retrieves the chart kind parameter from the request
// context and removes file extensions like ".png".
func ExtractKindFromParams(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawKind := params.ByName("kind")
	return strings.Split(rawKind, ".png")[0]
}
