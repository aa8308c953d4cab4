package observe

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/weft-ui/weft/pkg/runtime"
)

func newTestObserver() *promObserver {
	config := defaultMetricsConfig()
	config.Registry = prometheus.NewRegistry()
	return newPrometheusObserver(config).(*promObserver)
}

func TestPrometheusObserverCounters(t *testing.T) {
	obs := newTestObserver()

	obs.ProvideObserved("k")
	obs.ProvideObserved("k")
	obs.ForkObserved()
	obs.InjectObserved("k", runtime.InjectHit)
	obs.InjectObserved("k", runtime.InjectHit)
	obs.InjectObserved("absent", runtime.InjectMiss)

	if got := testutil.ToFloat64(obs.m.providesTotal); got != 2 {
		t.Errorf("provides_total: expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(obs.m.storeForksTotal); got != 1 {
		t.Errorf("store_forks_total: expected 1, got %v", got)
	}
	if got := testutil.ToFloat64(obs.m.injectsTotal.WithLabelValues("hit")); got != 2 {
		t.Errorf("injects_total{outcome=hit}: expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(obs.m.injectsTotal.WithLabelValues("miss")); got != 1 {
		t.Errorf("injects_total{outcome=miss}: expected 1, got %v", got)
	}
}

func TestPrometheusObserverAppScope(t *testing.T) {
	obs := newTestObserver()

	end := obs.AppScope("test")
	if got := testutil.ToFloat64(obs.m.appScopesTotal); got != 1 {
		t.Errorf("app_scopes_total: expected 1, got %v", got)
	}
	end()
	// Duration histogram observed exactly once.
	if got := testutil.CollectAndCount(obs.m.appScopeDuration); got != 1 {
		t.Errorf("expected one duration series, got %d", got)
	}
}

func TestPrometheusObserverDrivenByRuntime(t *testing.T) {
	obs := newTestObserver()
	runtime.SetObserver(obs)
	t.Cleanup(func() { runtime.SetObserver(nil) })

	root := runtime.NewRootInstance("root", runtime.NewApp("test"))
	child := runtime.NewInstance("child", root)
	runtime.WithSetupInstance(child, func() {
		runtime.Provide("k", "v")
	})
	runtime.WithSetupInstance(runtime.NewInstance("leaf", child), func() {
		runtime.Inject("k")
	})

	if got := testutil.ToFloat64(obs.m.providesTotal); got != 1 {
		t.Errorf("provides_total: expected 1, got %v", got)
	}
	if got := testutil.ToFloat64(obs.m.storeForksTotal); got != 1 {
		t.Errorf("store_forks_total: expected 1, got %v", got)
	}
	if got := testutil.ToFloat64(obs.m.injectsTotal.WithLabelValues("hit")); got != 1 {
		t.Errorf("injects_total{outcome=hit}: expected 1, got %v", got)
	}
}

func TestMetricsOptions(t *testing.T) {
	config := defaultMetricsConfig()
	for _, opt := range []MetricsOption{
		WithNamespace("myapp"),
		WithSubsystem("di"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{0.1, 1}),
		WithRegistry(prometheus.NewRegistry()),
	} {
		opt(&config)
	}

	if config.Namespace != "myapp" || config.Subsystem != "di" {
		t.Errorf("namespace/subsystem not applied: %+v", config)
	}
	if config.ConstLabels["env"] != "test" {
		t.Error("const labels not applied")
	}
	if len(config.Buckets) != 2 {
		t.Error("buckets not applied")
	}
	if config.Registry == prometheus.DefaultRegisterer {
		t.Error("registry not applied")
	}
}
