package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/trackascholar/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for the registry.
type Metrics struct {
	RegistryChanges *prometheus.CounterVec
	Applicants      prometheus.Gauge
	SaveDuration    prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New creates a Metrics instance with its metrics registered on a fresh
// registry, so that separate instances never collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		RegistryChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trackascholar_registry_changes_total",
			Help: "Total number of registry changes, by operation",
		}, []string{"type"}),
		Applicants: factory.NewGauge(prometheus.GaugeOpts{
			Name: "trackascholar_applicants",
			Help: "Number of applicants in the registry",
		}),
		SaveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "trackascholar_save_duration_seconds",
			Help:    "Duration of data file writes",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		gatherer: reg,
	}
}

// HandleEvent implements events.EventHandler.
func (m *Metrics) HandleEvent(_ context.Context, event *events.RegistryChangedEvent) error {
	m.RegistryChanges.WithLabelValues(event.Type).Inc()
	m.Applicants.Set(float64(event.ApplicantCount))
	return nil
}

// SetApplicants records the applicant count outside of a change event,
// such as after the initial load.
func (m *Metrics) SetApplicants(n int) {
	m.Applicants.Set(float64(n))
}

// ObserveSave records the duration of a data file write.
// Call with time.Now() at the start of the write.
func (m *Metrics) ObserveSave(start time.Time) {
	m.SaveDuration.Observe(time.Since(start).Seconds())
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
