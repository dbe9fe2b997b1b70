package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// ApplyGzipMiddleware wraps a handler with gzip compression
func ApplyGzipMiddleware(next http.Handler) http.Handler {
	// Use klauspost/compress for better performance
	return gzhttp.GzipHandler(next)
}
