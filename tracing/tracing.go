// Package tracing records the activity of a reactive.ReactiveSystem as
// OpenTelemetry spans by implementing reactive.Hooks.
//
// Each flush becomes a "signaling.flush" span with one child span per
// computed or effect run inside it. Runs caused by a lazy read outside of a
// flush become root spans of their own.
//
// Example:
//
//	rs := reactive.NewReactiveSystem(reactive.WithHooks(tracing.New()))
//
// The hooks use the global OpenTelemetry tracer provider unless
// WithTracerProvider is given.
package tracing

import (
	"context"

	"github.com/nitonfx/signaling/reactive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "signaling"

// Config configures the OpenTelemetry hooks.
type Config struct {
	// TracerName is the name of the tracer (default: "signaling").
	TracerName string

	// TracerProvider provides the tracer (default: the global provider).
	TracerProvider trace.TracerProvider

	// Context is the parent of every recorded span (default: background).
	Context context.Context

	// Unchanged records runs that produced no new value. Disabled by default.
	Unchanged bool
}

type Option func(*Config)

func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		c.Context = ctx
	}
}

func WithUnchanged(include bool) Option {
	return func(c *Config) {
		c.Unchanged = include
	}
}

func defaultConfig() Config {
	return Config{
		TracerName: defaultTracerName,
		Context:    context.Background(),
	}
}

// Hooks implements reactive.Hooks. Like the system it observes, it is not
// safe for concurrent use.
type Hooks struct {
	reactive.NopHooks

	tracer    trace.Tracer
	ctx       context.Context
	unchanged bool

	// runs of the flush in progress, emitted once it completes
	pending []reactive.Evaluation
}

var _ reactive.Hooks = (*Hooks)(nil)

func New(opts ...Option) *Hooks {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Hooks{
		tracer:    tp.Tracer(config.TracerName),
		ctx:       config.Context,
		unchanged: config.Unchanged,
	}
}

func (h *Hooks) NodeEvaluated(ev reactive.Evaluation) {
	if !h.unchanged && !ev.Changed && ev.Err == nil {
		return
	}
	if ev.Flushing {
		h.pending = append(h.pending, ev)
		return
	}
	h.evaluation(h.ctx, ev)
}

func (h *Hooks) DisposedAccess(id reactive.NodeID, kind reactive.Kind, op string) {
	_, span := h.tracer.Start(h.ctx, "signaling.disposed_access",
		trace.WithAttributes(
			attribute.Int64("signaling.node_id", int64(id)),
			attribute.String("signaling.kind", kind.String()),
			attribute.String("signaling.op", op),
		),
	)
	span.End()
}

func (h *Hooks) FlushCompleted(stats reactive.FlushStats) {
	ctx, span := h.tracer.Start(h.ctx, "signaling.flush",
		trace.WithTimestamp(stats.Start),
		trace.WithAttributes(
			attribute.Int("signaling.passes", stats.Passes),
			attribute.Int("signaling.writes", stats.Writes),
			attribute.Int("signaling.evaluations", stats.Evaluations),
			attribute.Int("signaling.effects", stats.Effects),
		),
	)
	for _, ev := range h.pending {
		h.evaluation(ctx, ev)
	}
	h.pending = h.pending[:0]

	if stats.Err != nil {
		span.RecordError(stats.Err)
		span.SetStatus(codes.Error, stats.Err.Error())
	}
	span.End(trace.WithTimestamp(stats.Start.Add(stats.Duration)))
}

func (h *Hooks) evaluation(ctx context.Context, ev reactive.Evaluation) {
	attrs := []attribute.KeyValue{
		attribute.Int64("signaling.node_id", int64(ev.Node)),
		attribute.Bool("signaling.changed", ev.Changed),
	}
	if ev.Label != "" {
		attrs = append(attrs, attribute.String("signaling.label", ev.Label))
	}
	_, span := h.tracer.Start(ctx, "signaling."+ev.Kind.String(),
		trace.WithTimestamp(ev.Start),
		trace.WithAttributes(attrs...),
	)
	if ev.Err != nil {
		span.RecordError(ev.Err)
		span.SetStatus(codes.Error, ev.Err.Error())
	}
	span.End(trace.WithTimestamp(ev.Start.Add(ev.Duration)))
}
