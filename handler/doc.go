// Package handler provides logger.ErrorHandler implementations that forward
// reported errors to structured loggers, plus helpers to combine them.
//
// Every adapter attaches the same fields: "module" when the logger has a tag,
// and "file", "function", "line" when the call site is known.
//
//	z, _ := zap.NewProduction()
//	log := logger.New(logger.Config{
//		Module:       "Net",
//		ErrorHandler: handler.Chain(handler.Zap(z), handler.Console()),
//	})
package handler
