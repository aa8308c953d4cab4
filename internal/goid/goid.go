// Package goid extracts the current goroutine's identifier.
//
// The runtime does not expose goroutine IDs, so the ID is parsed from the
// stack header. This is an implementation detail shared by the runtime's
// tracking context and the observe package; it must not leak into any
// public API.
package goid

import "runtime"

// GID returns a unique identifier for the current goroutine.
func GID() uint64 {
	// The stack trace starts with "goroutine <id> ".
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}
