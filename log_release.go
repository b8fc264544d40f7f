//go:build !debug

package voronoi

// logDebugf is a no-op outside the debug build tag.
func logDebugf(format string, v ...interface{}) {}
