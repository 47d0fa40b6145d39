package relay

import "sync/atomic"

// debugGestures controls whether per-gesture logs are emitted.
var debugGestures atomic.Bool

// SetDebugLogging enables/disables verbose gesture logs.
func SetDebugLogging(enabled bool) {
	debugGestures.Store(enabled)
}

// debugEnabled reports whether gesture debug logs are enabled.
func debugEnabled() bool {
	return debugGestures.Load()
}
