//go:build simulator

package logger

const buildSimulator = true
