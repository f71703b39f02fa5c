package api_test

import (
	"carlot/internal/api"
	"carlot/internal/garage"
	"carlot/pkg/metrics"
	"carlot/pkg/plate"
	"carlot/pkg/storage"
	"carlot/pkg/storage/memory"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	return newTestServerWithTimeout(t, 5*time.Second)
}

func newTestServerWithTimeout(t *testing.T, requestTimeout time.Duration) *httptest.Server {
	t.Helper()

	m, err := metrics.New()
	require.NoError(t, err)

	g, err := garage.New(garage.Deps{
		Storage:       memory.New(memory.Options{Policy: storage.UniqueByID()}),
		Plates:        plate.NewSwedish(),
		MeterProvider: m.MeterProvider,
	}, garage.Options{})
	require.NoError(t, err)

	srv, err := api.NewServer(api.Deps{
		Garage:        g,
		Gatherer:      m.Registry,
		MeterProvider: m.MeterProvider,
	}, api.Options{
		RequestTimeout:  requestTimeout,
		MetricsPath:     "/metrics",
		GraphQLPath:     "/graphql",
		GraphQLMaxDepth: 10,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(b)
}

func TestNewServer_RequiresGarage(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{})
	require.Error(t, err)
}

func TestServer_RESTAndGraphQLShareTheStore(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New().String()

	status, body := do(t, http.MethodPost, ts.URL+"/v1/cars", `{"id":"`+id+`","brand":"Volvo","model":"V60"}`)
	require.Equal(t, http.StatusCreated, status, body)

	status, body = do(t, http.MethodPost, ts.URL+"/graphql",
		`{"query":"query($id: UUID!) { carById(id: $id) { brand licensePlate } }","variables":{"id":"`+id+`"}}`)
	require.Equal(t, http.StatusOK, status)

	var res struct {
		Data struct {
			CarByID struct {
				Brand        string `json:"brand"`
				LicensePlate string `json:"licensePlate"`
			} `json:"carById"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	require.Equal(t, "Volvo", res.Data.CarByID.Brand)
	require.Len(t, []rune(res.Data.CarByID.LicensePlate), 7)

	status, _ = do(t, http.MethodPost, ts.URL+"/v1/cars", `{"id":"`+id+`","brand":"Saab","model":"900"}`)
	require.Equal(t, http.StatusConflict, status)

	status, body = do(t, http.MethodGet, ts.URL+"/v1/cars/"+id, "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"brand":"Volvo"`)
}

func TestServer_DocsAndSpecs(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, http.MethodGet, ts.URL+"/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "openapi:")

	status, _ = do(t, http.MethodGet, ts.URL+"/v1/docs/", "")
	require.Equal(t, http.StatusOK, status)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)

	status, _ := do(t, http.MethodPost, ts.URL+"/v1/license-plates", "")
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "garage_plates_generated_total")
	require.Contains(t, body, "http_server_requests_total")
}

func TestServer_CORSPreflightAndRequestID(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodOptions, ts.URL+"/graphql", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
}

func TestServer_PprofBypassesRequestTimeout(t *testing.T) {
	ts := newTestServerWithTimeout(t, 100*time.Millisecond)

	res, err := http.Get(ts.URL + "/debug/pprof/profile?seconds=1")
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, b)
}
