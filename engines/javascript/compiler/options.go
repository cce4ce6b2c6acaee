package compiler

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const defaultSourceName = "script.js"

// FunctionalOption is a function that configures a Compiler instance
type FunctionalOption func(*Compiler) error

// WithSourceName creates an option to set the name reported in compile
// diagnostics (the "file name" of inline source).
func WithSourceName(name string) FunctionalOption {
	return func(c *Compiler) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("source name cannot be empty")
		}
		c.sourceName = name
		return nil
	}
}

// WithStrictMode creates an option to compile in ECMAScript strict mode.
// OSA-flavored JavaScript sources are classically non-strict, so strict mode
// is off unless this option is applied.
func WithStrictMode() FunctionalOption {
	return func(c *Compiler) error {
		c.strictMode = true
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for the JavaScript
// compiler. This is the preferred option for logging configuration as it
// provides more flexibility through the slog.Handler interface.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		// Clear logger if handler is explicitly set
		c.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the JavaScript
// compiler. This is less flexible than WithLogHandler but allows users to
// customize their logging group configuration.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		// Clear handler if logger is explicitly set
		c.logHandler = nil
		return nil
	}
}

// validate checks if the compiler configuration is valid
func (c *Compiler) validate() error {
	if strings.TrimSpace(c.sourceName) == "" {
		return fmt.Errorf("source name must be specified")
	}

	// Ensure we have either a logger or a handler
	if c.logHandler == nil && c.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}

	return nil
}

// applyDefaults sets the default values for a compiler
func (c *Compiler) applyDefaults() {
	if c.sourceName == "" {
		c.sourceName = defaultSourceName
	}

	// Default to stderr for logging if neither handler nor logger specified
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}
}
