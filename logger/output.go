package logger

import (
	"io"
	"os"
	"strings"
	"sync"
)

// Dependency injection point for testing output.
var outStdout io.Writer = os.Stdout

// Mutex for thread-safe logging across concurrent goroutines. It is shared by
// every Logger so a multi-line banner is never split by another write.
var logMutex sync.Mutex

const (
	colorWarning = "\033[33m"
	colorError   = "\033[31m"
	colorReset   = "\033[0m"
)

const (
	warningFooter = "---------------------------------"
	errorFooter   = "--------------------------------"
)

// banner wraps msg in the category's header and footer lines. The module tag
// moves into the header for banner categories.
func banner(category Category, module, msg string, colorize bool) string {
	var title, footer, color string
	switch category {
	case WarningCategory:
		title, footer, color = "WARNING", warningFooter, colorWarning
	case ErrorCategory:
		title, footer, color = "ERROR", errorFooter, colorError
	default:
		return msg
	}
	tag := ""
	if module != "" {
		tag = "[" + module + "] "
	}
	header := "------------ " + tag + title + " ------------"
	if colorize {
		header = color + header + colorReset
		footer = color + footer + colorReset
	}
	return header + "\n" + msg + "\n" + footer
}

// write sends one rendered message to w, newline terminated. Write errors are
// dropped: logging is best-effort.
func write(w io.Writer, category Category, s string) {
	if w == nil {
		w = outStdout
	}
	if shouldUseSyslogPrefix() {
		w = &syslogPrefixWriter{w: w, prefix: syslogPrefixForCategory(category)}
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	_, _ = io.WriteString(w, s+"\n")
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func syslogPrefixForCategory(category Category) string {
	switch category {
	case ErrorCategory:
		return "<3>"
	case WarningCategory:
		return "<4>"
	default:
		return "<7>"
	}
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if s.prefix == "" || len(data) == 0 {
		return s.w.Write(data)
	}
	var b strings.Builder
	b.Grow(len(data) + len(s.prefix))
	b.WriteString(s.prefix)
	for i, c := range data {
		b.WriteByte(c)
		if c == '\n' && i != len(data)-1 {
			b.WriteString(s.prefix)
		}
	}
	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return 0, err
	}
	return len(data), nil
}
