package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvcover/cover"
)

const namespace = "lvcover"

// PrometheusObserver implements cover.Observer using Prometheus metrics.
type PrometheusObserver struct {
	solves   *prom.CounterVec
	duration *prom.HistogramVec
	steps    *prom.HistogramVec
}

// NewPrometheusObserver constructs the solver metrics and registers them on reg.
// A nil reg gets a fresh private registry. Registering twice on the same
// registry returns the AlreadyRegisteredError from Prometheus.
func NewPrometheusObserver(reg prom.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	po := &PrometheusObserver{
		solves: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solve calls by algorithm and status",
		}, []string{"algorithm", "status"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of solve calls",
			Buckets:   prom.DefBuckets,
		}, []string{"algorithm"}),
		steps: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "search_steps",
			Help:      "Search nodes (exact cover) or greedy iterations per solve",
			Buckets:   prom.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"}),
	}
	for _, c := range []prom.Collector{po.solves, po.duration, po.steps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return po, nil
}

// ObserveSolve implements cover.Observer.
func (p *PrometheusObserver) ObserveSolve(algo cover.Algorithm, status cover.Status, steps int, d time.Duration) {
	if p == nil || p.solves == nil {
		return
	}
	a := algo.String()
	p.solves.WithLabelValues(a, status.String()).Inc()
	p.duration.WithLabelValues(a).Observe(d.Seconds())
	p.steps.WithLabelValues(a).Observe(float64(steps))
}
