package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/spektr-org/prism/engine"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prism_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})

	chartDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prism_chart_duration_seconds",
		Help:    "Time spent computing a chart",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.25},
	}, []string{"chart_type"})

	fallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prism_distribution_fallback_total",
		Help: "Distributions answered with the synthetic fallback slice",
	})

	rejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prism_requests_rejected_total",
		Help: "Chart selections rejected during validation",
	})

	recordsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "prism_records_loaded",
		Help: "Records in the active record store",
	})
)

// ObserveHTTP counts one served request.
func ObserveHTTP(route string, code int) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// ObserveChart records a computed chart and how long it took.
func ObserveChart(result *engine.Result, elapsed time.Duration) {
	if result == nil {
		return
	}
	chartDuration.WithLabelValues(string(result.Type)).Observe(elapsed.Seconds())
	if result.Distribution != nil && result.Distribution.Fallback {
		fallbackTotal.Inc()
	}
}

// ObserveRejected counts a selection that failed validation.
func ObserveRejected() { rejectedTotal.Inc() }

// SetRecords publishes the size of the loaded record store.
func SetRecords(n int) { recordsLoaded.Set(float64(n)) }
