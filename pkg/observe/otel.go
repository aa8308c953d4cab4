package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-ui/weft/internal/goid"
	"github.com/weft-ui/weft/pkg/runtime"
)

// Default tracer name for Weft applications.
const defaultTracerName = "weft"

// OTelConfig configures the OpenTelemetry observer.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "weft").
	TracerName string

	// IncludeKeys includes the injection key (rendered via
	// runtime.KeyString) as a span event attribute. Keys may carry
	// application detail - disabled by default.
	IncludeKeys bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry observer.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeKeys enables including injection keys in span events.
func WithIncludeKeys(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeKeys = include
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:  defaultTracerName,
		IncludeKeys: false,
	}
}

// OpenTelemetry creates an observer that traces App.RunWithContext scopes.
//
// The observer:
//   - Creates a span for each app scope, nesting re-entrant scopes
//   - Records provide, inject, and store-fork events on the active scope's span
//   - Records the injection outcome as an event attribute
//
// Provide/inject activity outside any app scope produces no telemetry; pair
// this observer with Prometheus() when global counts are needed.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it in
// your main() before mounting:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
//	runtime.SetObserver(observe.OpenTelemetry())
func OpenTelemetry(opts ...OTelOption) runtime.Observer {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return &otelObserver{config: config}
}

// scopeEntry pairs a scope's span with the context carrying it, so nested
// scopes become child spans.
type scopeEntry struct {
	ctx  context.Context
	span trace.Span
}

// otelObserver implements runtime.Observer over OpenTelemetry spans.
// Scope spans are tracked per goroutine; each goroutine only ever touches
// its own stack.
type otelObserver struct {
	config OTelConfig

	mu     sync.Mutex
	scopes map[uint64][]scopeEntry
}

func (o *otelObserver) AppScope(appName string) func() {
	gid := goid.GID()

	parent := context.Background()
	if top, ok := o.top(gid); ok {
		parent = top.ctx
	}

	ctx, span := o.config.tracer.Start(
		parent,
		"weft.app_scope",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("weft.app", appName)),
	)
	o.push(gid, scopeEntry{ctx: ctx, span: span})

	return func() {
		o.pop(gid)
		span.End()
	}
}

func (o *otelObserver) ProvideObserved(key any) {
	o.event("weft.provide", key, nil)
}

func (o *otelObserver) InjectObserved(key any, outcome runtime.InjectOutcome) {
	o.event("weft.inject", key, []attribute.KeyValue{
		attribute.String("weft.outcome", outcome.String()),
	})
}

func (o *otelObserver) ForkObserved() {
	if top, ok := o.top(goid.GID()); ok {
		top.span.AddEvent("weft.store_fork")
	}
}

// event records a span event on the active scope's span, if any.
func (o *otelObserver) event(name string, key any, attrs []attribute.KeyValue) {
	top, ok := o.top(goid.GID())
	if !ok {
		return
	}
	if o.config.IncludeKeys {
		attrs = append(attrs, attribute.String("weft.key", runtime.KeyString(key)))
	}
	top.span.AddEvent(name, trace.WithAttributes(attrs...))
}

func (o *otelObserver) push(gid uint64, e scopeEntry) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.scopes == nil {
		o.scopes = make(map[uint64][]scopeEntry)
	}
	o.scopes[gid] = append(o.scopes[gid], e)
}

func (o *otelObserver) pop(gid uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	stack := o.scopes[gid]
	if len(stack) == 0 {
		return
	}
	if len(stack) == 1 {
		delete(o.scopes, gid)
		return
	}
	o.scopes[gid] = stack[:len(stack)-1]
}

func (o *otelObserver) top(gid uint64) (scopeEntry, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	stack := o.scopes[gid]
	if len(stack) == 0 {
		return scopeEntry{}, false
	}
	return stack[len(stack)-1], true
}
