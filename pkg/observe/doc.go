// Package observe instruments the provision runtime.
//
// Two observers are provided: Prometheus (counters for provides, injects by
// outcome, store forks, and app scopes) and OpenTelemetry (spans for
// App.RunWithContext scopes with provide/inject span events). Install one
// with runtime.SetObserver, or both via Combine:
//
//	runtime.SetObserver(observe.Combine(
//	    observe.Prometheus(observe.WithNamespace("myapp")),
//	    observe.OpenTelemetry(observe.WithTracerName("myapp")),
//	))
package observe
