package logger

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrency_BannersStayIntact verifies that the mutex keeps multi-line
// banners whole when many goroutines log through separate Logger copies.
func TestConcurrency_BannersStayIntact(t *testing.T) {
	var buf bytes.Buffer
	oldStdout := outStdout
	defer func() { outStdout = oldStdout }()
	outStdout = &buf
	t.Setenv("JOURNAL_STREAM", "")
	t.Setenv("LOGGER_CATEGORIES", "")

	base := New(Config{Env: &Env{Debug: true}})

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			log := base.WithModule(fmt.Sprintf("g%d", id))
			for j := 0; j < messagesPerGoroutine; j++ {
				log.Out("plain", id, j)
				log.Warn("warn", id, j)
				log.Error(fmt.Errorf("err %d %d", id, j))
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	expected := numGoroutines * messagesPerGoroutine * 7
	if len(lines) != expected {
		t.Fatalf("expected %d lines, got %d", expected, len(lines))
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "["):
			if !strings.Contains(line, "] : plain ") {
				t.Fatalf("line %d garbled: %q", i, line)
			}
		case strings.HasPrefix(line, "------------ [g"):
			if i+2 >= len(lines) {
				t.Fatalf("banner at line %d truncated", i)
			}
			module := line[len("------------ [") : strings.Index(line, "]")]
			id := strings.TrimPrefix(module, "g")
			body := lines[i+1]
			if !strings.HasPrefix(body, "warn "+id+" ") && !strings.HasPrefix(body, "err "+id+" ") {
				t.Fatalf("banner for %s interleaved with %q", module, body)
			}
			if !strings.HasPrefix(lines[i+2], "-------------------------------") {
				t.Fatalf("banner footer missing at line %d: %q", i+2, lines[i+2])
			}
			i += 2
		default:
			t.Fatalf("unexpected line %d: %q", i, line)
		}
	}
}

func TestConcurrency_HandlerSeesEveryError(t *testing.T) {
	var calls atomic.Int64
	log := New(Config{
		Env:          &Env{},
		ErrorHandler: func(Logger, error, CallSite) { calls.Add(1) },
	})

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			log.Error(errors.New("x"))
			log.Error(nil)
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != numGoroutines {
		t.Fatalf("handler called %d times, want %d", got, numGoroutines)
	}
}
