package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess marca renderizações concluídas.
	OutcomeSuccess = "success"
	// OutcomeError marca renderizações que falharam (seleção desconhecida).
	OutcomeError = "error"
)

var (
	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cohort_dashboard",
			Name:      "renders_total",
			Help:      "Total de renderizações de tabela, por seleção e resultado.",
		},
		[]string{"selection", "outcome"},
	)

	renderDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cohort_dashboard",
			Name:      "render_seconds",
			Help:      "Latência da renderização de tabela em segundos.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cohort_dashboard",
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP, por método, rota e status.",
		},
		[]string{"method", "route", "status"},
	)
)

// Register registra os coletores no registerer informado
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		rendersTotal,
		renderDurationSeconds,
		httpRequestsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveRender registra a duração e o resultado de uma renderização
func ObserveRender(selection string, duration time.Duration, outcome string) {
	label := outcome
	if label != OutcomeError {
		label = OutcomeSuccess
	}
	rendersTotal.WithLabelValues(selection, label).Inc()
	if duration < 0 {
		duration = 0
	}
	renderDurationSeconds.Observe(duration.Seconds())
}

// ObserveRequest conta uma requisição HTTP finalizada
func ObserveRequest(method, route string, status int) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RequestCounter expõe o contador de uma combinação de labels
func RequestCounter(method, route string, status int) prometheus.Counter {
	return httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status))
}
