//go:build debug

// Package diag is plane2d's minimal, build-tag-gated debug-log seam. The
// kernel is a pure, reentrant library with no background work (spec.md §5);
// it deliberately does not pull in a structured-logging framework for every
// importer, so this stays a build-tag-gated Printf seam rather than growing
// into a logging dependency. Build with `-tags debug` to enable; otherwise
// Debugf is a no-op (see noop.go).
package diag

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[plane2d DEBUG] ", log.LstdFlags)

// Debugf logs a debug message when built with the "debug" tag.
func Debugf(format string, v ...any) {
	logger.Printf(format, v...)
}
