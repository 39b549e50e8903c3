//go:build debug

package logger

// buildDebug is set when compiled with the 'debug' tag.
const buildDebug = true
