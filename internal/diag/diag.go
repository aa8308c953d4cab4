// Package diag is the development-time diagnostic sink for the runtime.
//
// Diagnostics are registered under stable codes (W001, W002, ...) so that
// messages stay consistent across call sites and can be linked to
// documentation. Emission is fire-and-forget: Warn never returns an error
// and never panics, because a missing provision must not take down an
// otherwise healthy render.
package diag

import (
	"log/slog"
	"sync"
)

// Category classifies a diagnostic.
type Category string

const (
	// CategoryContext covers calls made without a resolution root.
	CategoryContext Category = "context"

	// CategoryResolution covers lookups that found no value.
	CategoryResolution Category = "resolution"
)

// Template defines a registered diagnostic.
type Template struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// Diagnostic codes emitted by the runtime.
const (
	// CodeProvideOutsideSetup: Provide called with no current setup instance.
	CodeProvideOutsideSetup = "W001"

	// CodeInjectOutsideContext: Inject called with no instance and no app scope.
	CodeInjectOutsideContext = "W002"

	// CodeInjectionNotFound: key not provided anywhere and no default supplied.
	CodeInjectionNotFound = "W003"
)

// registry maps diagnostic codes to their templates.
var registry = map[string]Template{
	CodeProvideOutsideSetup: {
		Category: CategoryContext,
		Message:  "Provide called outside component setup",
		Detail:   "Provide requires an active setup instance. Call it from a component's setup function, or use App.Provide for application-level values.",
		DocURL:   "https://weft-ui.dev/docs/diagnostics/W001",
	},
	CodeInjectOutsideContext: {
		Category: CategoryContext,
		Message:  "Inject called outside an injection context",
		Detail:   "Inject requires a current setup instance, a current render instance, or an active App.RunWithContext scope. Use HasInjectionContext to probe before injecting from library code.",
		DocURL:   "https://weft-ui.dev/docs/diagnostics/W002",
	},
	CodeInjectionNotFound: {
		Category: CategoryResolution,
		Message:  "Injection not found",
		Detail:   "No ancestor provided the requested key and no default was supplied. The caller receives the zero value and must handle the missing case.",
		DocURL:   "https://weft-ui.dev/docs/diagnostics/W003",
	},
}

// Lookup returns the template registered under code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

var (
	loggerMu sync.RWMutex
	logger   *slog.Logger
)

// SetLogger replaces the logger used for diagnostics.
// Passing nil restores the slog default.
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func activeLogger() *slog.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}
	return slog.Default()
}

// Warn emits the diagnostic registered under code, with optional slog
// key/value pairs appended. Unknown codes are emitted as-is so a missing
// registry entry never masks the underlying condition.
func Warn(code string, args ...any) {
	tmpl, ok := registry[code]
	if !ok {
		activeLogger().Warn("unregistered diagnostic", append([]any{"code", code}, args...)...)
		return
	}
	attrs := append([]any{"code", code, "category", string(tmpl.Category), "doc", tmpl.DocURL}, args...)
	activeLogger().Warn(tmpl.Message, attrs...)
}
