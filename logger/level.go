package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Level decides when a message may be written, based on the environment.
type Level int

const (
	// DefaultLevel means "not chosen". At construction it becomes DebugOnlyLevel;
	// passed to a single call it means "use the logger's level".
	DefaultLevel Level = iota
	// ClosedLevel suppresses all output.
	ClosedLevel
	// ErrorOnlyLevel is meant for error reporting. Messages that reach the gate
	// with this level are suppressed, the same as ClosedLevel.
	ErrorOnlyLevel
	// DebugOnlyLevel writes only in debug builds.
	DebugOnlyLevel
	// SimulatorOnlyLevel writes only in a simulator or sandbox environment.
	SimulatorOnlyLevel
)

// Category classifies a message for independent enable/disable filtering.
type Category int

const (
	// DefaultCategory is a plain message.
	DefaultCategory Category = iota
	// ErrorCategory is wrapped in an ERROR banner.
	ErrorCategory
	// WarningCategory is wrapped in a WARNING banner.
	WarningCategory
)

var (
	// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrUnknownCategory is returned by ParseCategories for unrecognized names.
	ErrUnknownCategory = errors.New("unknown category")
)

func (l Level) String() string {
	switch l {
	case ClosedLevel:
		return "closed"
	case ErrorOnlyLevel:
		return "error"
	case DebugOnlyLevel:
		return "debug"
	case SimulatorOnlyLevel:
		return "simulator"
	}
	return "default"
}

func (c Category) String() string {
	switch c {
	case ErrorCategory:
		return "error"
	case WarningCategory:
		return "warning"
	}
	return "default"
}

// AllCategories returns every category.
func AllCategories() []Category {
	return []Category{DefaultCategory, ErrorCategory, WarningCategory}
}

// ParseLevel maps a level name to a Level. Matching is case-insensitive and
// accepts a few aliases ("close", "off", "debugonly", "sim").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return DefaultLevel, nil
	case "closed", "close", "off", "none":
		return ClosedLevel, nil
	case "error", "erroronly":
		return ErrorOnlyLevel, nil
	case "debug", "debugonly":
		return DebugOnlyLevel, nil
	case "simulator", "simulatoronly", "sim":
		return SimulatorOnlyLevel, nil
	}
	return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// ParseCategory maps a single category name to a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "":
		return DefaultCategory, nil
	case "error", "err":
		return ErrorCategory, nil
	case "warning", "warn":
		return WarningCategory, nil
	}
	return DefaultCategory, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ParseCategories parses a comma-separated list of category names.
// An empty string enables all categories.
func ParseCategories(s string) ([]Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllCategories(), nil
	}
	var cats []Category
	for _, p := range strings.Split(s, ",") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		c, err := ParseCategory(p)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// categorySet is a bitmask of enabled categories. A bitmask rather than a
// map keeps Logger a plain value.
type categorySet uint8

func (s categorySet) has(c Category) bool {
	if c < DefaultCategory || c > WarningCategory {
		return false
	}
	return s&(1<<uint(c)) != 0
}

func (s categorySet) list() []Category {
	var out []Category
	for _, c := range AllCategories() {
		if s.has(c) {
			out = append(out, c)
		}
	}
	return out
}

func categoriesFromSlice(cats []Category) categorySet {
	var s categorySet
	for _, c := range cats {
		if c < DefaultCategory || c > WarningCategory {
			continue
		}
		s |= 1 << uint(c)
	}
	return s
}

func allCategoriesEnabled() categorySet {
	return categoriesFromSlice(AllCategories())
}

// resolveCategories follows the Config.Categories rules: an explicit slice
// wins, then LOGGER_CATEGORIES, then everything. Unparseable environment
// values enable everything rather than silencing the logger.
func resolveCategories(cats []Category) categorySet {
	if cats != nil {
		return categoriesFromSlice(cats)
	}
	if env := os.Getenv("LOGGER_CATEGORIES"); env != "" {
		parsed, err := ParseCategories(env)
		if err == nil {
			return categoriesFromSlice(parsed)
		}
	}
	return allCategoriesEnabled()
}
