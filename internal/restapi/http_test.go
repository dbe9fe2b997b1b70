package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"atmodash.openclimate.org/internal/app"
	"atmodash.openclimate.org/internal/appconf"
	"atmodash.openclimate.org/internal/dataset"
	"atmodash.openclimate.org/internal/logging"
	"atmodash.openclimate.org/internal/models"
)

// createTestApi creates a new RestAPI instance backed by the testdata CSV
// directory for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelError)
	dataDir := filepath.Join("testdata", "data")

	// ch4 is cataloged without a CSV file; n2o's file holds no parseable rows.
	catalog := appconf.Catalog{Gases: []appconf.Gas{
		{ID: "co2", Label: "CO2"},
		{ID: "ch4", Label: "CH4"},
		{ID: "n2o", Label: "N2O"},
	}}

	testApp := &app.Application{
		Config:  app.Config{Env: "test", DataDir: dataDir},
		Logger:  logger,
		Catalog: catalog,
		Store:   dataset.NewStore(dataDir, logger),
	}

	return NewRestAPI(testApp)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	api := createTestApi(t)
	return serveApiAndRetrieveEndpoint(t, api, endpoint)
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	resp, body := serveApiRaw(t, api, endpoint)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response))

	return resp, response
}

// serveApiRaw makes a request and returns the response headers plus the
// fully read body.
func serveApiRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// dashboardData re-decodes the envelope's data field into a DashboardData.
func dashboardData(t *testing.T, response models.ResponseModel) models.DashboardData {
	t.Helper()

	raw, err := json.Marshal(response.Data)
	require.NoError(t, err)

	var data models.DashboardData
	require.NoError(t, json.Unmarshal(raw, &data))
	return data
}
