package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	clog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mordilloSan/envlog/handler"
	"github.com/mordilloSan/envlog/internal/config"
	"github.com/mordilloSan/envlog/logger"
)

const usageText = `Usage: envlog [flags] [message...]

Writes message through an environment-gated logger. Without a message,
every line read from stdin is logged.

Examples:
  BUILD_DEBUG=1 envlog -m Net connected
  envlog --debug -c warning retry
  envlog --debug --error --file conn.go --line 12 "dial failed"
  tail -f app.out | envlog --config envlog.yml --watch

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	level      string
	category   string
	module     string
	configPath string
	watch      bool
	debug      bool
	simulator  bool
	asError    bool
	file       string
	line       int
	function   string
	color      bool
	sink       string
	verbose    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("envlog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	fs.StringVarP(&opts.level, "level", "l", "", "gate level: debug, simulator, error, closed")
	fs.StringVarP(&opts.category, "category", "c", "default", "message category: default, warning, error")
	fs.StringVarP(&opts.module, "module", "m", "", "module tag prefixed to messages")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.BoolVar(&opts.watch, "watch", false, "reload --config when it changes (stdin mode)")
	fs.BoolVar(&opts.debug, "debug", false, "treat this as a debug build")
	fs.BoolVar(&opts.simulator, "simulator", false, "treat this as a simulator environment")
	fs.BoolVarP(&opts.asError, "error", "e", false, "report the message through the error path")
	fs.StringVar(&opts.file, "file", "", "call site file")
	fs.IntVar(&opts.line, "line", 0, "call site line")
	fs.StringVar(&opts.function, "func", "", "call site function")
	fs.BoolVar(&opts.color, "color", false, "colorize banners")
	fs.StringVar(&opts.sink, "sink", "console", "error sink: console, zap, zerolog, charm, slog")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "trace config reloads on stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	diag := logger.Logger{}
	if opts.verbose {
		diag = logger.New(logger.Config{Module: "envlog", Env: &logger.Env{Debug: true}, Output: stderr})
	}

	category, err := logger.ParseCategory(opts.category)
	if err != nil {
		fmt.Fprintf(stderr, "envlog: %v\n", err)
		return 2
	}
	sink, err := newSink(opts.sink, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "envlog: %v\n", err)
		return 2
	}
	if opts.watch && opts.configPath == "" {
		fmt.Fprintln(stderr, "envlog: --watch requires --config")
		return 2
	}

	build := func(f config.File) (logger.Logger, error) {
		cfg, err := f.LoggerConfig()
		if err != nil {
			return logger.Logger{}, err
		}
		return newLogger(cfg, fs, opts, sink, stdout)
	}

	var file config.File
	if opts.configPath != "" {
		if file, err = config.Load(opts.configPath); err != nil {
			fmt.Fprintf(stderr, "envlog: %v\n", err)
			return 1
		}
	}
	cfg, err := file.LoggerConfig()
	if err != nil {
		fmt.Fprintf(stderr, "envlog: %v\n", err)
		return 1
	}
	log, err := newLogger(cfg, fs, opts, sink, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "envlog: %v\n", err)
		return 2
	}

	site := callSite(opts)
	emit := func(l logger.Logger, items []any) {
		if opts.asError {
			msg := strings.TrimSuffix(fmt.Sprintln(items...), "\n")
			l.ErrorAt(errors.New(msg), site, logger.DefaultLevel)
			return
		}
		l.Log(category, logger.DefaultLevel, site, items...)
	}

	if fs.NArg() > 0 {
		items := make([]any, fs.NArg())
		for i, a := range fs.Args() {
			items[i] = a
		}
		emit(log, items)
		return 0
	}

	var current atomic.Pointer[logger.Logger]
	current.Store(&log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.watch {
		w := config.Watcher{
			Path: opts.configPath,
			Log:  diag,
			OnChange: func(f config.File) {
				next, err := build(f)
				if err != nil {
					diag.Warn("config rejected:", err)
					return
				}
				current.Store(&next)
				diag.Out("config reloaded")
			},
			OnError: func(err error) { diag.Warn("config watch:", err) },
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				diag.Error(err)
			}
		}()
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		emit(*current.Load(), []any{scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "envlog: reading stdin: %v\n", err)
		return 1
	}
	return 0
}

// newLogger applies explicitly set flags on top of cfg.
func newLogger(cfg logger.Config, fs *flag.FlagSet, opts options, sink logger.ErrorHandler, stdout io.Writer) (logger.Logger, error) {
	if fs.Changed("level") {
		level, err := logger.ParseLevel(opts.level)
		if err != nil {
			return logger.Logger{}, err
		}
		cfg.Level = level
	}
	if fs.Changed("module") {
		cfg.Module = opts.module
	}
	if fs.Changed("color") {
		cfg.Colorize = opts.color
	}
	env := logger.DetectEnv()
	if cfg.Env != nil {
		env = *cfg.Env
	}
	if fs.Changed("debug") {
		env.Debug = opts.debug
	}
	if fs.Changed("simulator") {
		env.Simulator = opts.simulator
	}
	cfg.Env = &env
	cfg.ErrorHandler = sink
	cfg.Output = stdout
	return logger.New(cfg), nil
}

func callSite(opts options) logger.CallSite {
	switch {
	case opts.function != "":
		return logger.FunctionLocation(opts.file, opts.function, opts.line)
	case opts.file != "":
		return logger.FileLocation(opts.file, opts.line)
	}
	return logger.CallSite{}
}

// newSink returns the error handler for name; "console" keeps the logger's
// own banner output.
func newSink(name string, w io.Writer) (logger.ErrorHandler, error) {
	switch strings.ToLower(name) {
	case "", "console":
		return nil, nil
	case "zap":
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(w), zapcore.DebugLevel)
		return handler.Zap(zap.New(core)), nil
	case "zerolog":
		return handler.Zerolog(zerolog.New(w).With().Timestamp().Logger()), nil
	case "charm":
		return handler.Charm(clog.NewWithOptions(w, clog.Options{ReportTimestamp: true})), nil
	case "slog":
		return handler.Slog(slog.New(slog.NewTextHandler(w, nil))), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
