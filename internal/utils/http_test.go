package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractKindFromParams(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"line.png", "line"},
		{"std_scatter.png", "std_scatter"},
		{"scatter", "scatter"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			params := httprouter.Params{{Key: "kind", Value: tt.raw}}
			req := httptest.NewRequest("GET", "/api/chart/"+tt.raw, nil)
			ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)

			assert.Equal(t, tt.want, ExtractKindFromParams(req.WithContext(ctx)))
		})
	}
}
