package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "equigrid"

// Recorder owns the service's Prometheus collectors and the registry they live on.
type Recorder struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	profiles     prometheus.Counter
	cleanerHours prometheus.Histogram
}

// NewRecorder registers the collectors on reg. A nil reg gets a fresh registry. Collectors
// that are already registered are reused.
func NewRecorder(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Recorder{registry: reg}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method, route and status.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	profiles := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "zone_profiles_total",
		Help:      "Synthetic 24h zone profiles generated.",
	})
	cleaner := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cleaner_hours",
		Help:      "Cleaner hours selected per generated profile.",
		Buckets:   prometheus.LinearBuckets(0, 4, 7),
	})

	var err error
	if r.requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if r.latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	if r.profiles, err = register(reg, profiles); err != nil {
		return nil, err
	}
	if r.cleanerHours, err = register(reg, cleaner); err != nil {
		return nil, err
	}
	return r, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// ObserveRequest records one served HTTP request.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveProfile records one generated zone profile and its cleaner-hour count.
func (r *Recorder) ObserveProfile(cleanerHours int) {
	r.profiles.Inc()
	r.cleanerHours.Observe(float64(cleanerHours))
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
