package skitter

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// debugLogger receives per-tick diagnostics while debugEnabled is set.
var (
	debugLogger  = log.New(os.Stderr, "[skitter] ", log.Lmicroseconds)
	debugEnabled atomic.Bool
)

// SetDebug turns debug logging on or off. The output writer is left as it
// is; see SetDebugOutput.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether debug logging is on.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// SetDebugOutput redirects debug logging, e.g. to a buffer in tests or a
// file when stderr belongs to a terminal UI. It does not enable logging.
// Stderr is the default.
func SetDebugOutput(w io.Writer) {
	debugLogger.SetOutput(w)
}

func debugf(format string, args ...any) {
	if !debugEnabled.Load() {
		return
	}
	debugLogger.Printf(format, args...)
}
