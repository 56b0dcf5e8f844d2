// Package metrics exposes resolver activity as prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/pending"
	"github.com/vk/tombstone/internal/resolver"
)

// Collector implements resolver.Observer and keeps its collectors on its
// own registry so several sessions never collide.
type Collector struct {
	Registry *prometheus.Registry

	declarations *prometheus.CounterVec
	rejected     *prometheus.CounterVec
	materialized prometheus.Counter
	pending      prometheus.Gauge
	queries      *prometheus.CounterVec
}

var _ resolver.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics.
func New() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		declarations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tombstone_declarations_total",
				Help: "Number of accepted declarations by kind.",
			},
			[]string{"kind"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tombstone_declarations_rejected_total",
				Help: "Number of rejected declarations by reason.",
			},
			[]string{"reason"},
		),
		materialized: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tombstone_translators_materialized_total",
				Help: "Number of pending translators turned into capability edges.",
			},
		),
		pending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tombstone_translators_pending",
				Help: "Number of translators waiting for their base language to become executable.",
			},
		),
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tombstone_queries_total",
				Help: "Number of executability queries by outcome.",
			},
			[]string{"outcome"},
		),
	}
	c.Registry.MustRegister(c.declarations, c.rejected, c.materialized, c.pending, c.queries)
	return c
}

// ProgramDefined counts a program declaration. The resolver only rejects a
// program for reusing a name; malformed tokens never reach it.
func (c *Collector) ProgramDefined(_ string, _ lang.Name, err error) {
	if err != nil {
		c.rejected.WithLabelValues("duplicate_program").Inc()
		return
	}
	c.declarations.WithLabelValues("program").Inc()
}

func (c *Collector) InterpreterDefined(_, _ lang.Name, _ bool) {
	c.declarations.WithLabelValues("interpreter").Inc()
}

func (c *Collector) TranslatorDefined(_ pending.Constraint, deferred bool) {
	c.declarations.WithLabelValues("translator").Inc()
	if deferred {
		c.pending.Inc()
	}
}

func (c *Collector) Materialized(pending.Constraint) {
	c.materialized.Inc()
	c.pending.Dec()
}

func (c *Collector) Queried(_ string, executable bool, err error) {
	switch {
	case err != nil:
		c.queries.WithLabelValues("unknown").Inc()
	case executable:
		c.queries.WithLabelValues("executable").Inc()
	default:
		c.queries.WithLabelValues("not_executable").Inc()
	}
}
