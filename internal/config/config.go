// Package config loads logger settings from a YAML file and can watch that
// file for changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/envlog/logger"
)

// File is the on-disk configuration.
//
//	level: debug
//	categories: [default, warning, error]
//	module: Net
//	colorize: true
//	env:
//	  debug: true
type File struct {
	Level      string   `yaml:"level,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	Module     string   `yaml:"module,omitempty"`
	Colorize   bool     `yaml:"colorize,omitempty"`
	Env        *EnvFile `yaml:"env,omitempty"`
}

// EnvFile overrides the detected environment. Unset fields keep the detected
// value.
type EnvFile struct {
	Debug     *bool `yaml:"debug,omitempty"`
	Simulator *bool `yaml:"simulator,omitempty"`
}

// Load reads and parses a config file at the given path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data. Unknown keys are rejected and an empty
// document yields the zero File.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parsing config file: %w", err)
	}
	return f, nil
}

// LoggerConfig converts f into a logger.Config. An absent categories key
// leaves Categories nil so LOGGER_CATEGORIES still applies.
func (f File) LoggerConfig() (logger.Config, error) {
	level, err := logger.ParseLevel(f.Level)
	if err != nil {
		return logger.Config{}, fmt.Errorf("config level: %w", err)
	}
	cfg := logger.Config{
		Level:    level,
		Module:   f.Module,
		Colorize: f.Colorize,
	}
	if f.Categories != nil {
		cfg.Categories = []logger.Category{}
		for _, name := range f.Categories {
			c, err := logger.ParseCategory(name)
			if err != nil {
				return logger.Config{}, fmt.Errorf("config categories: %w", err)
			}
			cfg.Categories = append(cfg.Categories, c)
		}
	}
	if f.Env != nil {
		env := logger.DetectEnv()
		if f.Env.Debug != nil {
			env.Debug = *f.Env.Debug
		}
		if f.Env.Simulator != nil {
			env.Simulator = *f.Env.Simulator
		}
		cfg.Env = &env
	}
	return cfg, nil
}
