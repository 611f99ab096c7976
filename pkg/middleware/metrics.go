package middleware

import (
	"net/http"

	"github.com/vfg2006/cohort-dashboard/pkg/metrics"
)

// RequestMetrics conta as requisições usando o padrão da rota (ex: /v1/cohorts/:selection)
// como label, para não criar uma série por valor de parâmetro.
func RequestMetrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := newStatusResponseWriter(w)
			next.ServeHTTP(srw, r)
			metrics.ObserveRequest(r.Method, route, srw.statusCode)
		})
	}
}
