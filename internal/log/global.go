package log

import "sync/atomic"

var defaultLogger atomic.Pointer[Logger]

// SetDefaultLogger replaces the process-wide logger. Passing nil restores
// the built-in default on the next DefaultLogger call.
func SetDefaultLogger(logger *Logger) {
	defaultLogger.Store(logger)
}

// DefaultLogger returns the process-wide logger, creating one from
// DefaultConfig when none has been set.
func DefaultLogger() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := Default()
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	return defaultLogger.Load()
}
