package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Middleware instruments wrapped handlers with request duration and
// in-flight gauges, labeled by handler id.
type Middleware struct {
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
}

func New(reg prometheus.Registerer, durationBuckets []float64) *Middleware {
	if durationBuckets == nil {
		durationBuckets = prometheus.DefBuckets
	}
	factory := promauto.With(reg)
	return &Middleware{
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "The latency of the HTTP requests",
			Buckets: durationBuckets,
		}, []string{"handler", "method", "code"}),
		requestsInFlight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "The number of inflight requests being handled at the same time",
		}, []string{"handler"}),
	}
}

func (m *Middleware) WrapHandler(handlerID string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestsInFlight.WithLabelValues(handlerID).Inc()
		defer m.requestsInFlight.WithLabelValues(handlerID).Dec()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		startedAt := time.Now()
		next.ServeHTTP(recorder, r)

		m.requestDuration.
			WithLabelValues(handlerID, r.Method, strconv.Itoa(recorder.status)).
			Observe(time.Since(startedAt).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
