package handler

import (
	"log/slog"

	"github.com/mordilloSan/envlog/logger"
)

// Slog forwards errors to s at error level.
func Slog(s *slog.Logger) logger.ErrorHandler {
	return func(l logger.Logger, err error, site logger.CallSite) {
		args := append([]any{"err", err}, keyvals(l, site)...)
		s.Error(Message, args...)
	}
}
