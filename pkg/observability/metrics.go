package observability

import (
	"net/http"

	"github.com/aretw0/creational/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the catalog collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry
	created  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creational_products_created_total",
				Help: "Total number of products created, by pattern and variant",
			},
			[]string{"pattern", "variant"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creational_invalid_selections_total",
				Help: "Total number of selectors that matched no variant",
			},
			[]string{"pattern"},
		),
	}
	m.registry.MustRegister(m.created, m.rejected)
	return m
}

// ProductCreated counts one product.
func (m *Metrics) ProductCreated(p domain.Pattern, variant string) {
	if m == nil {
		return
	}
	m.created.WithLabelValues(string(p), variant).Inc()
}

// SelectionRejected counts one rejected selector.
func (m *Metrics) SelectionRejected(p domain.Pattern) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(string(p)).Inc()
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
