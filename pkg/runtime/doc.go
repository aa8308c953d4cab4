// Package runtime provides the provision core for the Weft framework:
// hierarchical dependency injection across a live component tree.
//
// A component provides a value under a key and every descendant can inject
// it; siblings are isolated from each other and descendants may shadow an
// ancestor's provision without disturbing it.
//
// # Core Operations
//
// Provide attaches a value to the current setup instance:
//
//	runtime.WithSetupInstance(inst, func() {
//	    runtime.Provide("theme", "dark")
//	})
//
// Inject resolves the nearest ancestor-provided value:
//
//	theme, ok := runtime.Inject("theme")
//	theme := runtime.InjectOr("theme", "light")
//
// Typed tokens carry the value type at compile time:
//
//	var ThemeKey = runtime.NewKey[string]("theme")
//	ThemeKey.Provide("dark")
//	theme, ok := ThemeKey.Use()
//
// # Resolution Order
//
// An active App.RunWithContext scope wins over any instance; otherwise the
// current setup instance is used, falling back to the current render
// instance. A root instance resolves against its application context store;
// every other instance resolves against its parent's store, which chains
// transparently to all ancestors.
//
// # Failure Policy
//
// Provide and Inject never return errors and never panic on misuse. Calls
// made without a resolution root, and lookups that find nothing, degrade to
// no-ops or zero values plus a coded development-mode diagnostic (see
// DevMode).
//
// # Thread Safety
//
// The resolution context is per-goroutine; spawning goroutines requires
// explicit propagation via WithSetupInstance or App.RunWithContext. Stores
// are safe for concurrent use.
package runtime
