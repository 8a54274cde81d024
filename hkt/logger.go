package hkt

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the logger used to report boundary failures.
// It is a no-op logger unless SetLogger installed one.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger installs l for boundary diagnostics. A nil l restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
