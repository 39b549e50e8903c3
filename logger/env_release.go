//go:build !debug

package logger

// buildDebug is false in release builds; BUILD_DEBUG may still override it.
const buildDebug = false
