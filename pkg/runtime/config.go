package runtime

import "github.com/weft-ui/weft/internal/diag"

// DevMode enables development-time diagnostics.
// When true:
//   - Provide outside a setup instance logs W001
//   - Inject outside any injection context logs W002
//   - Inject misses without a default log W003
//
// When false (production):
//   - The same conditions degrade silently to no-ops or zero values
//
// Set this at application startup:
//
//	func main() {
//	    runtime.DevMode = os.Getenv("WEFT_DEV") == "1"
//	    // ...
//	}
var DevMode = false

// warn emits a coded diagnostic when DevMode is enabled.
func warn(code string, args ...any) {
	if !DevMode {
		return
	}
	diag.Warn(code, args...)
}
