package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// CallSite describes where a logged error originated. The zero value is an
// unknown site and renders as an empty string. A site without a Function is
// a file location; one with a Function is a function location. A line number
// alone is still a known site.
type CallSite struct {
	File     string
	Function string
	Line     int
}

// FileLocation returns a call site naming a file and line.
func FileLocation(path string, line int) CallSite {
	return CallSite{File: path, Line: line}
}

// FunctionLocation returns a call site naming a file, function and line.
func FunctionLocation(file, function string, line int) CallSite {
	return CallSite{File: file, Function: function, Line: line}
}

// Caller builds a function location from the goroutine's stack. skip is
// relative to the caller of Caller, so Caller(0) describes the line that
// called it. Returns the unknown site if the frame cannot be resolved.
func Caller(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{}
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return FileLocation(filepath.Base(file), line)
	}
	full := fn.Name()
	// Strip package path, keep package.Function
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 && lastSlash+1 < len(full) {
		full = full[lastSlash+1:]
	}
	return FunctionLocation(filepath.Base(file), full, line)
}

// IsUnknown reports whether the site carries no location.
func (s CallSite) IsUnknown() bool {
	return s.File == "" && s.Function == "" && s.Line == 0
}

// String renders the site with a trailing space, ready to be prefixed to a
// message, or "" for an unknown site.
func (s CallSite) String() string {
	switch {
	case s.IsUnknown():
		return ""
	case s.File == "" && s.Function == "":
		return fmt.Sprintf("line: %d ", s.Line)
	case s.Function == "":
		return fmt.Sprintf("file: %s line: %d ", s.File, s.Line)
	default:
		return fmt.Sprintf("file: %s function: %s line: %d ", s.File, s.Function, s.Line)
	}
}
