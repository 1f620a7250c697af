package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

type MetricsMiddleware struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the request collectors with reg. Collectors
// that are already registered are reused.
func NewMetricsMiddleware(reg prometheus.Registerer) (*MetricsMiddleware, error) {
	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "todolist",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Count of processed HTTP requests",
	}, []string{"method", "route", "status"})

	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "todolist",
		Subsystem: "api",
		Name:      "http_request_duration_seconds",
		Help:      "Latency distribution of HTTP handlers",
		Buckets:   histogramBuckets,
	}, []string{"method", "route", "status"})

	if err := reg.Register(requestTotal); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register request counter: %w", err)
		}
		requestTotal = are.ExistingCollector.(*prometheus.CounterVec)
	}

	if err := reg.Register(requestLatency); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register request histogram: %w", err)
		}
		requestLatency = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &MetricsMiddleware{
		requestTotal:   requestTotal,
		requestLatency: requestLatency,
	}, nil
}

func (m *MetricsMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"route":  routeOf(r),
			"status": strconv.Itoa(recorder.Status()),
		}
		m.requestTotal.With(labels).Inc()
		m.requestLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}
