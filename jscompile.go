// Package jscompile compiles OSA-flavored ("apple flavoured") JavaScript
// source without executing it. Compilation validates syntax and produces an
// ExecutableUnit, an opaque handle holding the compiled program for a later,
// separate execution step. Compile failures are returned as structured errors
// carrying the engine's diagnostic text, never discarded.
package jscompile

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-jscompile/engines/javascript"
	"github.com/robbyt/go-jscompile/engines/javascript/compiler"
	"github.com/robbyt/go-jscompile/platform/script"
	"github.com/robbyt/go-jscompile/platform/script/loader"
)

// FromJSString compiles JavaScript source from an inline string.
// Empty or whitespace-only input fails before the engine is reached.
func FromJSString(content string, opts ...compiler.FunctionalOption) (*script.ExecutableUnit, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	return javascript.FromJSLoader(defaultLogHandler(), l, opts...)
}

// FromJSBytes compiles JavaScript source from a byte slice.
func FromJSBytes(content []byte, opts ...compiler.FunctionalOption) (*script.ExecutableUnit, error) {
	l, err := loader.NewFromBytes(content)
	if err != nil {
		return nil, err
	}

	return javascript.FromJSLoader(defaultLogHandler(), l, opts...)
}

// FromJSFile compiles JavaScript source from a file on disk.
func FromJSFile(path string, opts ...compiler.FunctionalOption) (*script.ExecutableUnit, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}

	return javascript.FromJSLoader(defaultLogHandler(), l, opts...)
}

// FromJSLoader compiles JavaScript source from any Loader implementation,
// with explicit control over the log handler.
func FromJSLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts ...compiler.FunctionalOption,
) (*script.ExecutableUnit, error) {
	return javascript.FromJSLoader(logHandler, ldr, opts...)
}

func defaultLogHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, nil)
}
