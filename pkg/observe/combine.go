package observe

import "github.com/weft-ui/weft/pkg/runtime"

// Combine fans runtime events out to multiple observers. Scope end
// functions run in reverse registration order.
func Combine(observers ...runtime.Observer) runtime.Observer {
	return multiObserver(observers)
}

type multiObserver []runtime.Observer

func (m multiObserver) ProvideObserved(key any) {
	for _, o := range m {
		o.ProvideObserved(key)
	}
}

func (m multiObserver) InjectObserved(key any, outcome runtime.InjectOutcome) {
	for _, o := range m {
		o.InjectObserved(key, outcome)
	}
}

func (m multiObserver) ForkObserved() {
	for _, o := range m {
		o.ForkObserved()
	}
}

func (m multiObserver) AppScope(appName string) func() {
	ends := make([]func(), len(m))
	for i, o := range m {
		ends[i] = o.AppScope(appName)
	}
	return func() {
		for i := len(ends) - 1; i >= 0; i-- {
			ends[i]()
		}
	}
}
