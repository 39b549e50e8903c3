package handler

import (
	"github.com/rs/zerolog"

	"github.com/mordilloSan/envlog/logger"
)

// Zerolog forwards errors to z at error level.
func Zerolog(z zerolog.Logger) logger.ErrorHandler {
	return func(l logger.Logger, err error, site logger.CallSite) {
		ev := z.Error().Err(err)
		if m := l.Module(); m != "" {
			ev = ev.Str("module", m)
		}
		if !site.IsUnknown() {
			if site.File != "" {
				ev = ev.Str("file", site.File)
			}
			if site.Function != "" {
				ev = ev.Str("function", site.Function)
			}
			ev = ev.Int("line", site.Line)
		}
		ev.Msg(Message)
	}
}
