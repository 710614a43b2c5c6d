//go:build !debug

package diag

// Debugf is a no-op unless plane2d is built with `-tags debug`.
func Debugf(format string, v ...any) {}
