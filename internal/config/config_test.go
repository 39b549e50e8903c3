package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/mordilloSan/envlog/logger"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envlog.yml")
	writeFile(t, path, `
level: simulator
categories: [default, warning]
module: Net
colorize: true
env:
  debug: false
  simulator: true
`)

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.LoggerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level != logger.SimulatorOnlyLevel || cfg.Module != "Net" || !cfg.Colorize {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if want := []logger.Category{logger.DefaultCategory, logger.WarningCategory}; !reflect.DeepEqual(cfg.Categories, want) {
		t.Fatalf("Categories = %v, want %v", cfg.Categories, want)
	}
	if cfg.Env == nil || cfg.Env.Debug || !cfg.Env.Simulator {
		t.Fatalf("Env = %+v", cfg.Env)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse([]byte("# nothing here\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.LoggerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level != logger.DefaultLevel || cfg.Categories != nil || cfg.Env != nil {
		t.Fatalf("empty file should leave defaults, got %+v", cfg)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	if _, err := Parse([]byte("levle: debug\n")); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestLoggerConfig_Errors(t *testing.T) {
	if _, err := (File{Level: "loud"}).LoggerConfig(); !errors.Is(err, logger.ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if _, err := (File{Categories: []string{"info"}}).LoggerConfig(); !errors.Is(err, logger.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLoggerConfig_EmptyCategoriesDisables(t *testing.T) {
	f, err := Parse([]byte("categories: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.LoggerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Categories == nil || len(cfg.Categories) != 0 {
		t.Fatalf("expected empty non-nil categories, got %#v", cfg.Categories)
	}
}

func TestWatcher_Reloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envlog.yml")
	writeFile(t, path, "module: A\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan File, 16)
	done := make(chan error, 1)
	w := Watcher{Path: path, OnChange: func(f File) { changes <- f }}
	go func() { done <- w.Run(ctx) }()

	// Keep rewriting until the watcher is registered and reports the change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case f := <-changes:
			// A write may be observed between truncate and write.
			if f.Module != "B" {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Run returned %v", err)
			}
			return
		case <-tick.C:
			writeFile(t, path, "module: B\n")
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcher_ReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envlog.yml")
	writeFile(t, path, "module: A\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 16)
	w := Watcher{Path: path, OnError: func(err error) { errs <- err }}
	go func() { _ = w.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case err := <-errs:
			if err == nil {
				t.Fatal("nil error reported")
			}
			return
		case <-tick.C:
			writeFile(t, path, "module: [unclosed\n")
		case <-deadline:
			t.Fatal("no error observed")
		}
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := Watcher{Path: filepath.Join(t.TempDir(), "missing", "envlog.yml")}
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected an error watching a missing directory")
	}
}
