package handler

import (
	"sync"

	"github.com/mordilloSan/envlog/logger"
)

// Message is the log message every adapter uses for a reported error.
const Message = "error reported"

// Chain calls each non-nil handler in order.
func Chain(handlers ...logger.ErrorHandler) logger.ErrorHandler {
	return func(l logger.Logger, err error, site logger.CallSite) {
		for _, h := range handlers {
			if h != nil {
				h(l, err, site)
			}
		}
	}
}

// Console writes the error through the logger's own ERROR banner path, as if
// no handler were configured. Gating uses the logger's level because the
// handler is not told the per-call level.
func Console() logger.ErrorHandler {
	return func(l logger.Logger, err error, site logger.CallSite) {
		l.WithErrorHandler(nil).ErrorAt(err, site, logger.DefaultLevel)
	}
}

// Record is one error captured by a Recorder.
type Record struct {
	Module string
	Err    error
	Site   logger.CallSite
}

// Recorder keeps every error it is handed. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Handle is a logger.ErrorHandler.
func (r *Recorder) Handle(l logger.Logger, err error, site logger.CallSite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{Module: l.Module(), Err: err, Site: site})
}

// Records returns a copy of the captured records.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of captured records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset drops every captured record.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

// keyvals returns the module and call-site fields as alternating keys and
// values, the shape slog and charmbracelet/log accept.
func keyvals(l logger.Logger, site logger.CallSite) []any {
	var kv []any
	if m := l.Module(); m != "" {
		kv = append(kv, "module", m)
	}
	if !site.IsUnknown() {
		if site.File != "" {
			kv = append(kv, "file", site.File)
		}
		if site.Function != "" {
			kv = append(kv, "function", site.Function)
		}
		kv = append(kv, "line", site.Line)
	}
	return kv
}
