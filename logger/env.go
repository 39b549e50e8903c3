package logger

import (
	"os"
	"strings"
)

// Env holds the two environment facts that drive level gating. They are
// resolved once and treated as immutable for the life of a Logger.
type Env struct {
	// Debug reports whether this is a debug build.
	Debug bool
	// Simulator reports whether the process runs in a simulator or sandbox.
	Simulator bool
}

// DetectEnv resolves the environment from build tags, then lets the
// BUILD_DEBUG and BUILD_SIMULATOR variables override them.
//
//	go build -tags debug          # Debug = true
//	go build -tags simulator      # Simulator = true
//	BUILD_DEBUG=0 ./app           # Debug = false regardless of tags
func DetectEnv() Env {
	return Env{
		Debug:     envFlag("BUILD_DEBUG", buildDebug),
		Simulator: envFlag("BUILD_SIMULATOR", buildSimulator),
	}
}

// envFlag returns def unless the variable holds a recognizable boolean.
func envFlag(name string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

// allows reports whether the level's predicate holds in this environment.
// ErrorOnlyLevel has no predicate and never passes.
func (e Env) allows(level Level) bool {
	switch level {
	case DebugOnlyLevel:
		return e.Debug
	case SimulatorOnlyLevel:
		return e.Simulator
	}
	return false
}
