package runtime

import "github.com/weft-ui/weft/internal/diag"

// Provide attaches value to the current setup instance under key, making it
// injectable from every descendant. Later provisions of the same key on the
// same instance overwrite earlier ones; provisions on a descendant shadow
// the ancestor's without mutating it.
//
// The instance's store is forked from the parent's current store on the
// instance's first Provide, no matter in which order the ancestors forked
// theirs. Subsequent provisions accumulate in that same fork, and siblings
// sharing the parent never observe it.
//
// Called outside a setup instance, Provide is a no-op (W001 in DevMode).
func Provide(key, value any) {
	inst := CurrentInstance()
	if inst == nil {
		warn(diag.CodeProvideOutsideSetup, "key", KeyString(key))
		return
	}

	if !inst.forked {
		// First provision on this instance: fork from the parent's current
		// store before writing so the shared ancestor store stays untouched.
		inst.provides = inst.parent.Provides().Fork()
		inst.forked = true
		observeFork()
	}
	inst.provides.Set(key, value)
	observeProvide(key)
}
