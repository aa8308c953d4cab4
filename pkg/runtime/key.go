package runtime

import "fmt"

// Keys identify provisions. A key may be a *Symbol, a string, or an integer;
// stores compare keys by interface equality, so the numeric key 1 and the
// string key "1" never collide and symbols match only themselves.

// Symbol is a unique injection key. Two symbols are equal only if they are
// the same allocation; the name is carried for diagnostics, not identity.
type Symbol struct {
	name string
}

// NewSymbol creates a unique key with the given debug name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name: name}
}

// String returns the symbol's debug name.
func (s *Symbol) String() string {
	return "Symbol(" + s.name + ")"
}

// KeyString renders a key for diagnostics and metric labels.
func KeyString(key any) string {
	switch k := key.(type) {
	case *Symbol:
		return k.String()
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprintf("%v", k)
	}
}

// InjectionKey is a typed injection token. The token itself is the store
// key, so uniqueness comes from pointer identity the same way it does for
// Symbol.
//
// Example:
//
//	var ThemeKey = runtime.NewKey[string]("theme")
//
//	// In an ancestor's setup:
//	ThemeKey.Provide("dark")
//
//	// In a descendant:
//	theme, ok := ThemeKey.Use()
//	theme := ThemeKey.UseOr("light")
type InjectionKey[T any] struct {
	name string
}

// NewKey creates a typed injection token with the given debug name.
func NewKey[T any](name string) *InjectionKey[T] {
	return &InjectionKey[T]{name: name}
}

// String returns the token's debug name.
func (k *InjectionKey[T]) String() string {
	return "InjectionKey(" + k.name + ")"
}

// Provide attaches value to the current setup instance under this token.
func (k *InjectionKey[T]) Provide(value T) {
	Provide(k, value)
}

// Use resolves the nearest provided value for this token.
// The second return is false when nothing was provided; a provided zero
// value still reports true.
func (k *InjectionKey[T]) Use() (T, bool) {
	v, ok := Inject(k)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		// A same-keyed provision of the wrong dynamic type. Possible only
		// through the untyped Provide; treat as not found.
		var zero T
		return zero, false
	}
	return typed, true
}

// UseOr resolves this token, returning def when nothing was provided.
func (k *InjectionKey[T]) UseOr(def T) T {
	if v, ok := k.Use(); ok {
		return v
	}
	return def
}

// UseOrFunc resolves this token, deriving the fallback lazily when nothing
// was provided.
func (k *InjectionKey[T]) UseOrFunc(factory func() T) T {
	if v, ok := k.Use(); ok {
		return v
	}
	return factory()
}
