//go:build !simulator

package logger

const buildSimulator = false
