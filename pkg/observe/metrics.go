package observe

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/weft-ui/weft/pkg/runtime"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "weft").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for app scope duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets for app scope duration.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "weft",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for the provision runtime.
// Keys are deliberately not used as labels: injection keys are arbitrary
// values and would produce unbounded cardinality.
type metrics struct {
	providesTotal    prometheus.Counter
	injectsTotal     *prometheus.CounterVec
	storeForksTotal  prometheus.Counter
	appScopesTotal   prometheus.Counter
	appScopeDuration prometheus.Histogram
}

// globalMetrics is the singleton metrics instance, created on the first
// call to Prometheus(). Prometheus registries reject duplicate
// registration, so repeated calls share the first set of collectors.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		providesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "provides_total",
			Help:        "Total number of values provided to component stores",
			ConstLabels: config.ConstLabels,
		}),

		injectsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "injects_total",
			Help:        "Total number of injections by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		storeForksTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "store_forks_total",
			Help:        "Total number of provision stores forked on first provide",
			ConstLabels: config.ConstLabels,
		}),

		appScopesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "app_scopes_total",
			Help:        "Total number of App.RunWithContext scopes entered",
			ConstLabels: config.ConstLabels,
		}),

		appScopeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "app_scope_duration_seconds",
			Help:        "App.RunWithContext scope duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// Prometheus creates an observer that collects Prometheus metrics for the
// provision runtime.
//
// Metrics collected:
//   - weft_provides_total: Counter of values provided
//   - weft_injects_total: Counter of injections by outcome (hit, default, miss, no_context)
//   - weft_store_forks_total: Counter of lazy store forks
//   - weft_app_scopes_total: Counter of app scopes entered
//   - weft_app_scope_duration_seconds: Histogram of app scope duration
//
// Example:
//
//	runtime.SetObserver(observe.Prometheus(
//	    observe.WithNamespace("myapp"),
//	))
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) runtime.Observer {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return &promObserver{m: m}
}

// newPrometheusObserver creates an unshared observer against the given
// config. Used by tests with private registries.
func newPrometheusObserver(config MetricsConfig) runtime.Observer {
	return &promObserver{m: initMetrics(config)}
}

// promObserver implements runtime.Observer over Prometheus counters.
type promObserver struct {
	m *metrics
}

func (p *promObserver) ProvideObserved(key any) {
	p.m.providesTotal.Inc()
}

func (p *promObserver) InjectObserved(key any, outcome runtime.InjectOutcome) {
	p.m.injectsTotal.WithLabelValues(outcome.String()).Inc()
}

func (p *promObserver) ForkObserved() {
	p.m.storeForksTotal.Inc()
}

func (p *promObserver) AppScope(appName string) func() {
	p.m.appScopesTotal.Inc()
	start := time.Now()
	return func() {
		p.m.appScopeDuration.Observe(time.Since(start).Seconds())
	}
}
