package webrtc

import "sync/atomic"

// debugDC controls whether verbose data channel logs are emitted.
var debugDC atomic.Bool

// SetDebugLogging enables/disables verbose WebRTC data channel logs.
func SetDebugLogging(enabled bool) {
	debugDC.Store(enabled)
}

// debugDCEnabled reports whether data channel debug logs are enabled.
func debugDCEnabled() bool {
	return debugDC.Load()
}
