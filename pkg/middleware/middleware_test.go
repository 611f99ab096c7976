package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cohort-dashboard/pkg/log"
	"github.com/vfg2006/cohort-dashboard/pkg/metrics"
)

func init() {
	log.SetupTestLogger()
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/formulas", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/formulas", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight de origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/formulas", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("OPTIONS sem origem permitida segue para o router", func(t *testing.T) {
		tests := []struct {
			name   string
			origin string
		}{
			{name: "Sem origem", origin: ""},
			{name: "Origem não permitida", origin: "https://evil.example"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodOptions, "/nao-existe", nil)
				if tt.origin != "" {
					req.Header.Set("Origin", tt.origin)
				}
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusTeapot, rec.Code)
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			})
		}
	})

	t.Run("OPTIONS sem cabeçalho de preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/formulas", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, correlationID)
}

func TestRequestMetrics(t *testing.T) {
	handler := RequestMetrics("/v1/cohorts/:selection")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	counter := metrics.RequestCounter("GET", "/v1/cohorts/:selection", http.StatusBadRequest)
	before := testutil.ToFloat64(counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/cohorts/weekly", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500_000))
	assert.Equal(t, "12 ms", formatDuration(12_000_000))
	assert.Equal(t, "1.50 s", formatDuration(1_500_000_000))
}
