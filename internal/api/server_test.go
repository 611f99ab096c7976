package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cohort-dashboard/internal/config"
	"github.com/vfg2006/cohort-dashboard/internal/dataset"
	"github.com/vfg2006/cohort-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/cohort-dashboard/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{Env: "development", LogLevel: "debug"},
		Server: config.Server{
			Host:              "127.0.0.1",
			Port:              "0",
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   time.Second,
			AllowedOrigins:    []string{"http://localhost:3000"},
		},
		Dashboard: config.Dashboard{Title: "Cohorts"},
		Metrics:   config.Metrics{Enabled: true, Path: "/metrics"},
	}
}

func TestServer_Handler(t *testing.T) {
	log.SetupTestLogger()

	srv, err := New(testConfig(), rendering.NewService(dataset.NewStatic()))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/fragments/table?selection=primary")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false

	srv, err := New(cfg, rendering.NewService(dataset.NewStatic()))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Options(t *testing.T) {
	srv, err := New(testConfig(), rendering.NewService(dataset.NewStatic()))
	require.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		origin         string
		expectedStatus int
	}{
		{name: "Preflight de origem permitida", path: "/v1/formulas", origin: "http://localhost:3000", expectedStatus: http.StatusNoContent},
		{name: "Rota inexistente sem origem", path: "/nao-existe", origin: "", expectedStatus: http.StatusNotFound},
		{name: "Rota inexistente de origem não permitida", path: "/nao-existe", origin: "https://evil.example", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv, err := New(testConfig(), rendering.NewService(dataset.NewStatic()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou após cancelar o contexto")
	}
}
