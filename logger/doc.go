// Package logger provides a small console logger gated by the build and
// runtime environment.
//
// # Gating
//
// A message is written only when its category is enabled and the level's
// environment predicate holds:
//
//   - DebugOnlyLevel writes in debug builds (-tags debug or BUILD_DEBUG=1)
//   - SimulatorOnlyLevel writes in a simulator or sandbox (-tags simulator or BUILD_SIMULATOR=1)
//   - ClosedLevel and ErrorOnlyLevel never write through the output path
//
// # Output
//
// Default messages are written as-is, or as "[Module] : message" when a
// module tag is set. Warnings and errors are wrapped in a banner:
//
//	------------ [Net] WARNING ------------
//	retry
//	---------------------------------
//
// # Usage
//
//	log := logger.New(logger.Config{Module: "Net"})
//	log.Out("connected to", addr)
//	log.Warn("retry", attempt)
//	log.ErrorAt(err, logger.Caller(0), logger.DefaultLevel)
//
// Set Config.ErrorHandler to route errors somewhere else entirely; see the
// handler package for adapters.
//
// # Category Filtering
//
// Configure categories in code via Config.Categories, or leave it nil to
// honor the environment variable:
//
//	LOGGER_CATEGORIES="default,error" ./myapp
//
// When JOURNAL_STREAM is set (running under systemd) every line carries a
// journald priority prefix such as "<7>", so the package examples only match
// their documented output outside journald.
//
// Logger is a value. Copies are independent, and writes from all loggers
// are serialized so banners are never interleaved.
package logger
