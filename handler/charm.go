package handler

import (
	clog "github.com/charmbracelet/log"

	"github.com/mordilloSan/envlog/logger"
)

// Charm forwards errors to a charmbracelet logger at error level.
func Charm(c *clog.Logger) logger.ErrorHandler {
	return func(l logger.Logger, err error, site logger.CallSite) {
		kv := append([]any{"err", err}, keyvals(l, site)...)
		c.Error(Message, kv...)
	}
}
