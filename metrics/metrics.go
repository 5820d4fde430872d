// Package metrics exports the activity of a reactive.ReactiveSystem as
// Prometheus metrics by implementing reactive.Hooks.
//
// Metrics collected:
//   - signaling_nodes_created_total: Counter of created nodes by kind
//   - signaling_nodes_disposed_total: Counter of disposed nodes by kind
//   - signaling_live_nodes: Gauge of live nodes by kind
//   - signaling_evaluations_total: Counter of computed/effect runs by kind and result
//   - signaling_evaluation_duration_seconds: Histogram of run duration by kind
//   - signaling_flushes_total: Counter of flushes by status
//   - signaling_flush_duration_seconds: Histogram of flush duration
//   - signaling_flush_passes: Histogram of passes per flush
//   - signaling_disposed_access_total: Counter of reads/writes of disposed nodes
//
// Example:
//
//	m := metrics.New(metrics.WithRegistry(reg))
//	rs := reactive.NewReactiveSystem(reactive.WithHooks(m))
package metrics

import (
	"github.com/nitonfx/signaling/reactive"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the Prometheus hooks.
type Config struct {
	// Namespace is the metrics namespace (default: "signaling").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for evaluation and flush duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "signaling",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

const (
	resultChanged   = "changed"
	resultUnchanged = "unchanged"
	resultError     = "error"

	statusOK    = "ok"
	statusError = "error"
)

// Hooks implements reactive.Hooks. Register one per registry: creating two
// against the same registry panics on duplicate registration.
type Hooks struct {
	nodesCreated       *prometheus.CounterVec
	nodesDisposed      *prometheus.CounterVec
	liveNodes          *prometheus.GaugeVec
	evaluations        *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	flushes            *prometheus.CounterVec
	flushDuration      prometheus.Histogram
	flushPasses        prometheus.Histogram
	disposedAccess     *prometheus.CounterVec
}

var _ reactive.Hooks = (*Hooks)(nil)

func New(opts ...Option) *Hooks {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Hooks{
		nodesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_created_total",
			Help:        "Total number of reactive nodes created",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		nodesDisposed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_disposed_total",
			Help:        "Total number of reactive nodes disposed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		liveNodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_nodes",
			Help:        "Number of reactive nodes not yet disposed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "evaluations_total",
			Help:        "Total number of computed and effect runs",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "result"}),

		evaluationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "evaluation_duration_seconds",
			Help:        "Computed and effect run duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		flushes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flushes_total",
			Help:        "Total number of propagation flushes",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Propagation flush duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		flushPasses: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_passes",
			Help:        "Passes needed for a flush to settle",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}),

		disposedAccess: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "disposed_access_total",
			Help:        "Total number of reads and writes of disposed nodes",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "op"}),
	}
}

func (h *Hooks) NodeCreated(id reactive.NodeID, kind reactive.Kind, label string) {
	h.nodesCreated.WithLabelValues(kind.String()).Inc()
	h.liveNodes.WithLabelValues(kind.String()).Inc()
}

func (h *Hooks) NodeEvaluated(ev reactive.Evaluation) {
	kind := ev.Kind.String()
	result := resultUnchanged
	switch {
	case ev.Err != nil:
		result = resultError
	case ev.Changed:
		result = resultChanged
	}
	h.evaluations.WithLabelValues(kind, result).Inc()
	h.evaluationDuration.WithLabelValues(kind).Observe(ev.Duration.Seconds())
}

func (h *Hooks) NodeDisposed(id reactive.NodeID, kind reactive.Kind, label string) {
	h.nodesDisposed.WithLabelValues(kind.String()).Inc()
	h.liveNodes.WithLabelValues(kind.String()).Dec()
}

func (h *Hooks) DisposedAccess(id reactive.NodeID, kind reactive.Kind, op string) {
	h.disposedAccess.WithLabelValues(kind.String(), op).Inc()
}

func (h *Hooks) FlushCompleted(stats reactive.FlushStats) {
	status := statusOK
	if stats.Err != nil {
		status = statusError
	}
	h.flushes.WithLabelValues(status).Inc()
	h.flushDuration.Observe(stats.Duration.Seconds())
	h.flushPasses.Observe(float64(stats.Passes))
}
