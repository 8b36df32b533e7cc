package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores de la API. Se registran en un registry propio
// para que cada router (y cada test) tenga los suyos.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	AdoptionsCreated   prometheus.Counter
	AdoptionsCancelled prometheus.Counter
	AdoptionsDeleted   prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shelter_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shelter_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AdoptionsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "shelter_adoptions_created_total",
			Help: "Adoptions registered",
		}),
		AdoptionsCancelled: f.NewCounter(prometheus.CounterOpts{
			Name: "shelter_adoptions_cancelled_total",
			Help: "Adoptions cancelled",
		}),
		AdoptionsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "shelter_adoptions_deleted_total",
			Help: "Adoptions hard-deleted",
		}),
	}
}

// Los métodos aceptan receptor nil.

func (m *Metrics) AdoptionCreated() {
	if m != nil {
		m.AdoptionsCreated.Inc()
	}
}

func (m *Metrics) AdoptionCancelled() {
	if m != nil {
		m.AdoptionsCancelled.Inc()
	}
}

func (m *Metrics) AdoptionDeleted() {
	if m != nil {
		m.AdoptionsDeleted.Inc()
	}
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware mide cada request usando el patrón de ruta de chi, no el path
// crudo, para no explotar la cardinalidad con ids.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
