// Package metrics agrupa las métricas Prometheus del proceso: requests HTTP
// entrantes y llamadas al upstream. Vive aparte para que upstream y http no
// se importen entre sí.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Número total de requests procesadas",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latencia de los requests HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	HTTPInflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_inflight_requests",
		Help: "Requests en vuelo",
	})

	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Llamadas al upstream por recurso, método y resultado (ok|rejected|transport)",
	}, []string{"resource", "method", "outcome"})

	UpstreamRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Latencia de las llamadas al upstream",
		Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"resource", "method"})
)

// Register registra todas las métricas en reg (o el default si es nil).
// Los duplicados se ignoran para que sea seguro llamarlo más de una vez.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPInflight,
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
	} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}

// Handler expone g para /metrics; nil = gatherer global.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// ObserveUpstream registra una llamada al upstream.
func ObserveUpstream(resource, method, outcome string, elapsed time.Duration) {
	method = strings.ToUpper(method)
	UpstreamRequestsTotal.WithLabelValues(resource, method, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// WithHTTP instrumenta requests entrantes. La ruta se toma del patrón chi
// (/users/{user_id}) para no explotar la cardinalidad con ids.
func WithHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := strings.ToUpper(r.Method)
		start := time.Now()
		HTTPInflight.Inc()

		rec := &statusRecorder{ResponseWriter: w}
		defer func() {
			HTTPInflight.Dec()
			route := routePattern(r)
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		}()

		next.ServeHTTP(rec, r)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
