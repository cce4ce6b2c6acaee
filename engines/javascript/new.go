// Package javascript wires the goja-backed compiler into the engine-neutral
// script contracts. Only compilation is provided: the compiled unit is a
// handle for a separate execution step that is out of scope for this module.
package javascript

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-jscompile/engines/javascript/compiler"
	"github.com/robbyt/go-jscompile/platform/script"
	"github.com/robbyt/go-jscompile/platform/script/loader"
)

// FromJSLoader compiles the JavaScript source from a loader into an
// ExecutableUnit. The unit's ID is derived from the loader's source URL.
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the JavaScript source content
// - opts: compiler options (source name, strict mode, logging)
//
// Returns the compiled unit, or the compile diagnostic as an error.
func FromJSLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts ...compiler.FunctionalOption,
) (*script.ExecutableUnit, error) {
	if ldr == nil {
		return nil, script.ErrLoaderNil
	}

	compilerOpts := opts
	if logHandler != nil {
		compilerOpts = append(
			[]compiler.FunctionalOption{compiler.WithLogHandler(logHandler)},
			opts...,
		)
	}

	comp, err := NewCompiler(compilerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create JavaScript compiler: %w", err)
	}

	// Create executable unit ID from source URL
	execUnitID := ""
	sourceURL := ldr.GetSourceURL()
	if sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	return script.NewExecutableUnit(logHandler, execUnitID, ldr, comp)
}

// NewCompiler creates a new JavaScript compiler using the functional options
// pattern. Returns a compiler, which implements the script.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}
