// Package debug provides optional file-based debug logging.
//
// When the PANEL_DEBUG environment variable is set to a file path, messages
// are appended to that file. Otherwise logging is a no-op, so the engine can
// log freely from the render path without cost in production.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// target returns the log file, opening it on first use, or nil when
// PANEL_DEBUG is unset. Caller must hold mu.
func target() *os.File {
	if checked {
		return logFile
	}
	checked = true

	path := os.Getenv("PANEL_DEBUG")
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Debug logging must never take the engine down.
		return nil
	}
	logFile = f
	return logFile
}

// Logf writes a timestamped message to the debug log, if enabled.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	f := target()
	if f == nil {
		return
	}
	fmt.Fprintf(f, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Close closes the debug log file, if open. Subsequent Logf calls reopen it.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	checked = false
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
