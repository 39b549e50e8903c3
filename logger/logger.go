package logger

import (
	"fmt"
	"io"
	"strings"
)

// ErrorHandler takes over error reporting for a Logger. When set, Error and
// ErrorAt hand the error to it and do nothing else.
type ErrorHandler func(l Logger, err error, site CallSite)

// Config defines options for New.
type Config struct {
	// Level is the logger's gate. DefaultLevel becomes DebugOnlyLevel.
	// Default: DebugOnlyLevel
	Level Level
	// Categories lists the enabled categories; nil falls back to LOGGER_CATEGORIES
	// or all categories. An empty non-nil slice disables everything.
	// Default: nil (all categories enabled)
	Categories []Category
	// Module is prefixed to every message as "[Module]".
	// Default: "" (no tag)
	Module string
	// ErrorHandler replaces the default error path when set.
	// Default: nil
	ErrorHandler ErrorHandler
	// Env supplies the debug/simulator facts; nil uses DetectEnv.
	// Default: nil
	Env *Env
	// Colorize enables ANSI color on WARNING and ERROR banners.
	// Default: false
	Colorize bool
	// Output receives rendered messages; nil writes to stdout.
	// Default: nil
	Output io.Writer
}

// Logger formats messages and writes them when its gate is open. It is a
// value: copies are independent and safe to use from several goroutines.
type Logger struct {
	level      Level
	categories categorySet
	module     string
	handler    ErrorHandler
	env        Env
	colorize   bool
	out        io.Writer
}

// New returns a Logger for config.
func New(config Config) Logger {
	l := Logger{
		level:      config.Level,
		categories: resolveCategories(config.Categories),
		module:     config.Module,
		handler:    config.ErrorHandler,
		colorize:   config.Colorize,
		out:        config.Output,
	}
	if l.level == DefaultLevel {
		l.level = DebugOnlyLevel
	}
	if config.Env != nil {
		l.env = *config.Env
	} else {
		l.env = DetectEnv()
	}
	return l
}

// Default returns a Logger with every default applied.
func Default() Logger {
	return New(Config{})
}

// Level returns the logger's resolved level.
func (l Logger) Level() Level { return l.level }

// Module returns the module tag, or "".
func (l Logger) Module() string { return l.module }

// Env returns the environment the logger gates against.
func (l Logger) Env() Env { return l.env }

// Categories returns the enabled categories in declaration order.
func (l Logger) Categories() []Category { return l.categories.list() }

// ErrorHandler returns the configured handler, or nil.
func (l Logger) ErrorHandler() ErrorHandler { return l.handler }

// CategoryEnabled reports whether c passes the category filter.
func (l Logger) CategoryEnabled(c Category) bool { return l.categories.has(c) }

// WithModule returns a copy tagged with module.
func (l Logger) WithModule(module string) Logger {
	l.module = module
	return l
}

// WithLevel returns a copy gated by level. DefaultLevel becomes DebugOnlyLevel.
func (l Logger) WithLevel(level Level) Logger {
	if level == DefaultLevel {
		level = DebugOnlyLevel
	}
	l.level = level
	return l
}

// WithCategories returns a copy with exactly cats enabled.
func (l Logger) WithCategories(cats ...Category) Logger {
	l.categories = categoriesFromSlice(cats)
	return l
}

// WithErrorHandler returns a copy using h; nil restores the default error path.
func (l Logger) WithErrorHandler(h ErrorHandler) Logger {
	l.handler = h
	return l
}

// WithEnv returns a copy evaluated against env.
func (l Logger) WithEnv(env Env) Logger {
	l.env = env
	return l
}

// WithOutput returns a copy writing to w; nil means stdout.
func (l Logger) WithOutput(w io.Writer) Logger {
	l.out = w
	return l
}

// Enabled reports whether a message of category at level would be written.
// Callers can use it to skip building expensive arguments.
func (l Logger) Enabled(category Category, level Level) bool {
	if !l.categories.has(category) {
		return false
	}
	if level == DefaultLevel {
		level = l.level
	}
	return l.env.allows(level)
}

// Log is the full form of every output method. items are rendered with
// fmt.Sprint and joined by single spaces.
func (l Logger) Log(category Category, level Level, site CallSite, items ...any) {
	if !l.Enabled(category, level) {
		return
	}
	l.emit(category, site, joinItems(items))
}

// Out writes items in the default category at the logger's level.
func (l Logger) Out(items ...any) {
	l.Log(DefaultCategory, DefaultLevel, CallSite{}, items...)
}

// Warn writes items inside a WARNING banner.
func (l Logger) Warn(items ...any) {
	l.Log(WarningCategory, DefaultLevel, CallSite{}, items...)
}

// Outf writes a message formatted with fmt.Sprintf.
func (l Logger) Outf(format string, v ...any) {
	if !l.Enabled(DefaultCategory, DefaultLevel) {
		return
	}
	l.emit(DefaultCategory, CallSite{}, fmt.Sprintf(format, v...))
}

// OutKV writes msg followed by key=value pairs. Keys that are not strings
// and a trailing unpaired value are skipped.
func (l Logger) OutKV(msg string, keyvals ...any) {
	if !l.Enabled(DefaultCategory, DefaultLevel) {
		return
	}
	l.emit(DefaultCategory, CallSite{}, msg+encodeFields(keyvals...))
}

// Error reports err at DebugOnlyLevel with no call site. The explicit level
// overrides the logger's own level, so a ClosedLevel logger still writes the
// error in a debug build. Use ErrorAt with DefaultLevel to honor the
// logger's level instead.
func (l Logger) Error(err error) {
	l.ErrorAt(err, CallSite{}, DebugOnlyLevel)
}

// ErrorAt reports err. A nil err is ignored. With an ErrorHandler configured,
// the handler receives (l, err, site) and no gating or output happens here.
// Otherwise err is written in an ERROR banner, gated by level.
func (l Logger) ErrorAt(err error, site CallSite, level Level) {
	if err == nil {
		return
	}
	if l.handler != nil {
		l.handler(l, err, site)
		return
	}
	l.Log(ErrorCategory, level, site, err)
}

// Render returns the text Log would write for msg, without the trailing
// newline and without gating.
func (l Logger) Render(category Category, site CallSite, msg string) string {
	if s := site.String(); s != "" {
		msg = s + "message : " + msg
	}
	if category == DefaultCategory {
		if l.module != "" {
			msg = "[" + l.module + "] : " + msg
		}
		return msg
	}
	return banner(category, l.module, msg, l.colorize)
}

func (l Logger) emit(category Category, site CallSite, msg string) {
	write(l.out, category, l.Render(category, site, msg))
}

func joinItems(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, " ")
}

// encodeFields formats key-value pairs as "key=value" strings.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, keyvals[i+1]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
