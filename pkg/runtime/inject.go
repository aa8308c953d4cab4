package runtime

import "github.com/weft-ui/weft/internal/diag"

// Factory derives a fallback value for an injection miss. It receives the
// calling instance's public proxy, or nil when resolution happens outside a
// component.
type Factory func(proxy any) any

// defaultArg carries an optional injection default. Presence is explicit
// rather than inferred from the value, so a supplied nil default is
// distinguishable from no default at all.
type defaultArg struct {
	present bool
	value   any
	factory bool
}

// Inject resolves the nearest provided value for key, starting from the
// active resolution root. The second return is false when nothing was
// provided; a provided nil or false value still reports true and is
// returned as-is.
//
// Resolution order:
//  1. An active App.RunWithContext scope resolves directly against that
//     app's store, bypassing the component tree.
//  2. Otherwise the current setup instance is used, falling back to the
//     current render instance. A root instance resolves against its
//     application context store; any other instance resolves against its
//     parent's store, which chains to all ancestors.
//
// Called with no root at all, Inject returns (nil, false) and logs W002 in
// DevMode. A miss with a root logs W003.
func Inject(key any) (any, bool) {
	return inject(key, defaultArg{})
}

// InjectOr resolves key, returning def when nothing was provided anywhere.
// A provided nil or false value wins over the default. A func default is
// returned as-is, not invoked; use InjectOrFunc for factory semantics.
func InjectOr(key, def any) any {
	v, _ := inject(key, defaultArg{present: true, value: def})
	return v
}

// InjectOrFunc resolves key, invoking factory to derive the fallback when
// nothing was provided. The factory receives the calling instance's proxy.
func InjectOrFunc(key any, factory Factory) any {
	v, _ := inject(key, defaultArg{present: true, value: factory, factory: true})
	return v
}

func inject(key any, def defaultArg) (any, bool) {
	// Prefer the setup instance; fall back to the render instance so
	// functional components can inject during render.
	inst := CurrentInstance()
	if inst == nil {
		inst = CurrentRenderInstance()
	}
	app := CurrentApp()

	if inst == nil && app == nil {
		warn(diag.CodeInjectOutsideContext, "key", KeyString(key))
		observeInject(key, InjectNoContext)
		return nil, false
	}

	provides := resolveStore(inst, app)
	if provides != nil {
		if v, ok := provides.Get(key); ok {
			observeInject(key, InjectHit)
			return v, true
		}
	}

	if def.present {
		if def.factory {
			observeInject(key, InjectDefault)
			return callFactory(def.value, inst), true
		}
		observeInject(key, InjectDefault)
		return def.value, true
	}

	warn(diag.CodeInjectionNotFound, "key", KeyString(key))
	observeInject(key, InjectMiss)
	return nil, false
}

// resolveStore picks the store injection resolves against. An active app
// scope wins outright. A root instance is gated to its application context
// store; everything else goes through the parent chain.
func resolveStore(inst *Instance, app *App) *Store {
	if app != nil {
		return app.Context().Provides()
	}
	if inst.parent == nil {
		if inst.appContext != nil {
			return inst.appContext.Provides()
		}
		return nil
	}
	return inst.parent.Provides()
}

// callFactory invokes a factory default with the calling instance's proxy.
func callFactory(factory any, inst *Instance) any {
	var proxy any
	if inst != nil {
		proxy = inst.proxy
	}
	switch fn := factory.(type) {
	case Factory:
		return fn(proxy)
	case func(proxy any) any:
		return fn(proxy)
	case func() any:
		return fn()
	default:
		// Not callable: fall back to returning it as a plain default.
		return factory
	}
}
