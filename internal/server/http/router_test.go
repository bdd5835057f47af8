package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/leonf08/building-metrics.git/internal/observability"
	"github.com/leonf08/building-metrics.git/internal/services"
	"github.com/leonf08/building-metrics.git/internal/services/repo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	svc := services.NewMetricsService(repo.NewDataset(testRecords))
	m := observability.NewHTTPMetrics(prometheus.NewRegistry())

	r := NewRouter(svc, nil, m, Options{
		Prefix:      "api/",
		CORSOrigins: []string{"http://localhost:5173"},
	}, zerolog.Nop())

	ts := httptest.NewServer(r)
	defer ts.Close()

	tests := []struct {
		name     string
		method   string
		url      string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "list metrics by floor",
			method:   http.MethodGet,
			url:      "/api/metrics?floor=1&metric_name=occupancy",
			wantCode: http.StatusOK,
			wantBody: `[{"floor":"1","room":"","metric_name":"occupancy","value":5,"timestamp":"2024-01-01","metric_type":"floor"}]`,
		},
		{
			name:     "floor detail",
			method:   http.MethodGet,
			url:      "/api/floors/1/metrics",
			wantCode: http.StatusOK,
			wantBody: `{"floor":"1","floor_metrics":{"occupancy":5},"room_metrics":{"101":{"temp":21}}}`,
		},
		{
			name:     "unknown floor",
			method:   http.MethodGet,
			url:      "/api/floors/2/metrics",
			wantCode: http.StatusNotFound,
			wantBody: `{"detail":"floor not found: 2"}`,
		},
		{
			name:     "filter by date range",
			method:   http.MethodPost,
			url:      "/api/metrics/filter",
			body:     `{"start_date":"2024-01-02","end_date":"2024-01-02"}`,
			wantCode: http.StatusOK,
			wantBody: `[{"floor":"1","room":"101","metric_name":"temp","value":21,"timestamp":"2024-01-02","metric_type":"room"}]`,
		},
		{
			name:     "routes live under the prefix",
			method:   http.MethodGet,
			url:      "/metrics",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := resty.New().R().SetHeader("Accept", "application/json")
			if tt.body != "" {
				req.SetHeader("Content-Type", "application/json").SetBody(tt.body)
			}

			resp, err := req.Execute(tt.method, ts.URL+tt.url)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, resp.String())
			}
		})
	}

	resp, err := resty.New().R().Get(ts.URL + MetricsPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), `building_metrics_requests_total{code="200",route="/api/floors/{floorID}/metrics"} 1`)
	assert.Contains(t, resp.String(), `building_metrics_requests_total{code="404",route="/api/floors/{floorID}/metrics"} 1`)
}

func TestNewRouter_CORS(t *testing.T) {
	svc := services.NewMetricsService(repo.NewDataset(testRecords))

	r := NewRouter(svc, nil, nil, Options{
		Prefix:      "/api",
		CORSOrigins: []string{"http://localhost:5173"},
	}, zerolog.Nop())

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{
			name:       "allowed origin",
			origin:     "http://localhost:5173",
			wantOrigin: "http://localhost:5173",
		},
		{
			name:       "other origin",
			origin:     "http://evil.example",
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/metrics/filter", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewRouter_NoPrefix(t *testing.T) {
	svc := services.NewMetricsService(repo.NewDataset(testRecords))

	r := NewRouter(svc, nil, nil, Options{}, zerolog.Nop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/floors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["1"]`, rec.Body.String())
}

func TestNewRouter_ConditionalGet(t *testing.T) {
	svc := services.NewMetricsService(repo.NewDataset(testRecords))
	ts := httptest.NewServer(NewRouter(svc, nil, nil, Options{Prefix: "/api"}, zerolog.Nop()))
	defer ts.Close()

	client := resty.New().SetHeader("Accept", "application/json")

	resp, err := client.R().Get(ts.URL + "/api/floors/1/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	tag := resp.Header().Get("ETag")
	require.NotEmpty(t, tag)

	resp, err = client.R().SetHeader("If-None-Match", tag).Get(ts.URL + "/api/floors/1/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode())
	assert.Empty(t, resp.Body())
}
