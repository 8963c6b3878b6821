package logging

import (
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// EnableDebug turns on verbose tracing of each docking step.
func EnableDebug() {
	debugEnabled.Store(true)
	log.Printf("[DEBUG] debug logging enabled")
}

// DisableDebug turns debug logging back off.
func DisableDebug() {
	debugEnabled.Store(false)
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	log.Printf("[DEBUG] "+format, args...)
}

// Warnf emits a warning regardless of the debug setting. Input the tool
// accepted by falling back to a default is reported here.
func Warnf(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}
