package runtime

import (
	"sync"

	"github.com/weft-ui/weft/internal/goid"
)

// resolutionContext holds the ambient injection state for a goroutine.
// Each goroutine has its own context so concurrent renders stay isolated.
type resolutionContext struct {
	// setupInstance is the instance whose setup is currently executing.
	// Provide targets it; Inject prefers it.
	setupInstance *Instance

	// renderInstance is the instance currently rendering. Inject falls back
	// to it so functional components can inject without a setup phase.
	renderInstance *Instance

	// currentApp is the active RunWithContext scope. When set it overrides
	// both instances for resolution.
	currentApp *App
}

// resolutionContexts stores per-goroutine resolution contexts.
var resolutionContexts sync.Map

// getResolutionContext returns the resolution context for the current
// goroutine, creating it on first use.
func getResolutionContext() *resolutionContext {
	gid := goid.GID()

	if ctx, ok := resolutionContexts.Load(gid); ok {
		return ctx.(*resolutionContext)
	}

	ctx := &resolutionContext{}
	resolutionContexts.Store(gid, ctx)
	return ctx
}

// setCurrentInstance sets the current setup instance.
// Returns the previous instance so it can be restored.
func setCurrentInstance(i *Instance) *Instance {
	ctx := getResolutionContext()
	old := ctx.setupInstance
	ctx.setupInstance = i
	return old
}

// setCurrentRenderInstance sets the current render instance.
// Returns the previous instance so it can be restored.
func setCurrentRenderInstance(i *Instance) *Instance {
	ctx := getResolutionContext()
	old := ctx.renderInstance
	ctx.renderInstance = i
	return old
}

// setCurrentApp sets the active app scope.
// Returns the previous app so it can be restored.
func setCurrentApp(a *App) *App {
	ctx := getResolutionContext()
	old := ctx.currentApp
	ctx.currentApp = a
	return old
}

// CurrentInstance returns the instance whose setup is currently executing,
// or nil.
func CurrentInstance() *Instance {
	return getResolutionContext().setupInstance
}

// CurrentRenderInstance returns the instance currently rendering, or nil.
func CurrentRenderInstance() *Instance {
	return getResolutionContext().renderInstance
}

// CurrentApp returns the active RunWithContext app scope, or nil.
func CurrentApp() *App {
	return getResolutionContext().currentApp
}

// WithSetupInstance runs fn with i as the current setup instance. The
// previous instance is restored on every exit path, so a parent's setup may
// synchronously run a child's setup:
//
//	WithSetupInstance(parent, func() {
//	    Provide("theme", "dark")
//	    WithSetupInstance(child, childSetup)
//	    // parent is current again here
//	})
func WithSetupInstance(i *Instance, fn func()) {
	old := setCurrentInstance(i)
	defer setCurrentInstance(old)
	fn()
}

// WithRenderInstance runs fn with i as the current render instance,
// restoring the previous one on exit. Used by render loops so Inject works
// from render functions that have no setup phase.
func WithRenderInstance(i *Instance, fn func()) {
	old := setCurrentRenderInstance(i)
	defer setCurrentRenderInstance(old)
	fn()
}

// HasInjectionContext reports whether Inject currently has a resolution
// root: a setup instance, a render instance, or an active app scope.
// Library code should probe with this before injecting to avoid spurious
// dev-mode warnings.
func HasInjectionContext() bool {
	ctx := getResolutionContext()
	return ctx.setupInstance != nil || ctx.renderInstance != nil || ctx.currentApp != nil
}

// cleanupGoroutineContext removes the resolution context for the current
// goroutine. Optional; contexts are lightweight and overwritten on reuse.
func cleanupGoroutineContext() {
	resolutionContexts.Delete(goid.GID())
}
