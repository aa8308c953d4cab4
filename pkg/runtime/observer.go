package runtime

import "sync"

// InjectOutcome classifies how an injection resolved.
type InjectOutcome uint8

const (
	// InjectHit means a provided value was found in the resolved store.
	InjectHit InjectOutcome = iota + 1

	// InjectDefault means nothing was provided and a supplied default (or
	// factory) was used.
	InjectDefault

	// InjectMiss means nothing was provided and no default was supplied.
	InjectMiss

	// InjectNoContext means injection ran with no resolution root at all.
	InjectNoContext
)

// String returns a low-cardinality label for the outcome.
func (o InjectOutcome) String() string {
	switch o {
	case InjectHit:
		return "hit"
	case InjectDefault:
		return "default"
	case InjectMiss:
		return "miss"
	case InjectNoContext:
		return "no_context"
	default:
		return "unknown"
	}
}

// Observer receives provision events. Implementations must be cheap and
// must not call back into Provide/Inject. See the observe package for
// Prometheus and OpenTelemetry implementations.
type Observer interface {
	// ProvideObserved is called after a value is written to a store.
	ProvideObserved(key any)

	// InjectObserved is called once per injection with its outcome.
	InjectObserved(key any, outcome InjectOutcome)

	// ForkObserved is called when an instance forks its store on first
	// provision.
	ForkObserved()

	// AppScope wraps the dynamic extent of App.RunWithContext. The returned
	// function is called when the scope exits.
	AppScope(appName string) (end func())
}

var (
	observerMu sync.RWMutex
	observer   Observer
)

// SetObserver installs the runtime observer. Passing nil removes it.
// Intended to be set once at startup.
func SetObserver(o Observer) {
	observerMu.Lock()
	defer observerMu.Unlock()
	observer = o
}

func activeObserver() Observer {
	observerMu.RLock()
	defer observerMu.RUnlock()
	return observer
}

func observeProvide(key any) {
	if o := activeObserver(); o != nil {
		o.ProvideObserved(key)
	}
}

func observeInject(key any, outcome InjectOutcome) {
	if o := activeObserver(); o != nil {
		o.InjectObserved(key, outcome)
	}
}

func observeFork() {
	if o := activeObserver(); o != nil {
		o.ForkObserved()
	}
}

func observeAppScope(appName string) func() {
	if o := activeObserver(); o != nil {
		return o.AppScope(appName)
	}
	return func() {}
}
