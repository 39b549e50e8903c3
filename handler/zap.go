package handler

import (
	"go.uber.org/zap"

	"github.com/mordilloSan/envlog/logger"
)

// Zap forwards errors to z at error level.
func Zap(z *zap.Logger) logger.ErrorHandler {
	return func(l logger.Logger, err error, site logger.CallSite) {
		fields := []zap.Field{zap.Error(err)}
		if m := l.Module(); m != "" {
			fields = append(fields, zap.String("module", m))
		}
		if !site.IsUnknown() {
			if site.File != "" {
				fields = append(fields, zap.String("file", site.File))
			}
			if site.Function != "" {
				fields = append(fields, zap.String("function", site.Function))
			}
			fields = append(fields, zap.Int("line", site.Line))
		}
		z.Error(Message, fields...)
	}
}
