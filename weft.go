// Package weft provides the public API for the Weft provision runtime.
//
// This is the recommended import for most applications:
//
//	import "github.com/weft-ui/weft"
//
// Usage:
//
//	var ThemeKey = weft.NewKey[string]("theme")
//
//	weft.WithSetupInstance(parent, func() {
//	    ThemeKey.Provide("dark")
//	    weft.WithSetupInstance(child, func() {
//	        theme, _ := ThemeKey.Use() // "dark"
//	        _ = theme
//	    })
//	})
package weft

import (
	"log/slog"

	"github.com/weft-ui/weft/internal/diag"
	"github.com/weft-ui/weft/pkg/runtime"
)

// =============================================================================
// Core types (re-export from pkg/runtime)
// =============================================================================

// Instance is a node in the component tree.
type Instance = runtime.Instance

// App is the application object owning the application-level store.
type App = runtime.App

// AppContext is the creation metadata holding the application-level store.
type AppContext = runtime.AppContext

// Store is a chained provision map.
type Store = runtime.Store

// Symbol is a unique injection key.
type Symbol = runtime.Symbol

// Factory derives a fallback value for an injection miss.
type Factory = runtime.Factory

// Observer receives provision events (see the observe package).
type Observer = runtime.Observer

// InjectOutcome classifies how an injection resolved.
type InjectOutcome = runtime.InjectOutcome

// InjectOutcome constants
const (
	InjectHit       = runtime.InjectHit
	InjectDefault   = runtime.InjectDefault
	InjectMiss      = runtime.InjectMiss
	InjectNoContext = runtime.InjectNoContext
)

// =============================================================================
// Constructors
// =============================================================================

// NewApp creates an application with an empty application-level store.
var NewApp = runtime.NewApp

// NewInstance creates an instance under a parent.
var NewInstance = runtime.NewInstance

// NewRootInstance creates a tree root bound to an app.
var NewRootInstance = runtime.NewRootInstance

// NewSymbol creates a unique key with the given debug name.
var NewSymbol = runtime.NewSymbol

// NewStore creates a store chained to a fallback.
var NewStore = runtime.NewStore

// NewKey creates a typed injection token.
//
// Example:
//
//	var UserKey = weft.NewKey[*User]("user")
func NewKey[T any](name string) *runtime.InjectionKey[T] {
	return runtime.NewKey[T](name)
}

// =============================================================================
// Provide / Inject
// =============================================================================

// Provide attaches a value to the current setup instance.
var Provide = runtime.Provide

// Inject resolves the nearest ancestor-provided value for a key.
var Inject = runtime.Inject

// InjectOr resolves a key with a plain default.
var InjectOr = runtime.InjectOr

// InjectOrFunc resolves a key with a factory default.
var InjectOrFunc = runtime.InjectOrFunc

// HasInjectionContext reports whether Inject currently has a resolution root.
var HasInjectionContext = runtime.HasInjectionContext

// RunWith runs fn under app's injection scope and returns its result.
func RunWith[T any](app *App, fn func() T) T {
	return runtime.RunWith(app, fn)
}

// =============================================================================
// Resolution context
// =============================================================================

// WithSetupInstance runs a function with an instance as the current setup
// instance, restoring the previous one on exit.
var WithSetupInstance = runtime.WithSetupInstance

// WithRenderInstance runs a function with an instance as the current render
// instance, restoring the previous one on exit.
var WithRenderInstance = runtime.WithRenderInstance

// CurrentInstance returns the instance whose setup is executing, or nil.
var CurrentInstance = runtime.CurrentInstance

// CurrentRenderInstance returns the instance currently rendering, or nil.
var CurrentRenderInstance = runtime.CurrentRenderInstance

// CurrentApp returns the active RunWithContext app scope, or nil.
var CurrentApp = runtime.CurrentApp

// =============================================================================
// Diagnostics & instrumentation
// =============================================================================

// SetObserver installs the runtime observer.
var SetObserver = runtime.SetObserver

// KeyString renders a key for diagnostics and metric labels.
var KeyString = runtime.KeyString

// DevMode enables development-time diagnostics.
var DevMode = &runtime.DevMode

// SetDiagnosticLogger replaces the slog logger used for dev-mode
// diagnostics. Passing nil restores the slog default.
func SetDiagnosticLogger(l *slog.Logger) {
	diag.SetLogger(l)
}
