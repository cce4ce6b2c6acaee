package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-jscompile/engines/javascript/compiler/internal/compile"
	"github.com/robbyt/go-jscompile/internal/helpers"
	"github.com/robbyt/go-jscompile/platform/script"
)

// Compiler validates JavaScript source and turns it into an executable
// program without running it. Each Compile call is independent; the Compiler
// holds no per-script state, so a single instance is safe for concurrent use.
type Compiler struct {
	sourceName string
	strictMode bool
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new JavaScript-specific Compiler instance with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	// Set up logging based on provided options
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "javascript", "Compiler")
	}

	return c, nil
}

func (c *Compiler) String() string {
	return "javascript.Compiler"
}

// Compile turns the provided script content into an executable program.
// The reader is closed before Compile returns, on both success and failure paths.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	scriptBodyBytes, err := io.ReadAll(scriptReader)
	closeErr := scriptReader.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close reader: %w", closeErr)
	}

	return c.compile(scriptBodyBytes)
}

func (c *Compiler) compile(scriptBodyBytes []byte) (*executable, error) {
	logger := c.logger.WithGroup("compile")
	logger.Debug("Starting validation", "sourceName", c.sourceName, "strict", c.strictMode)

	// Empty content is not rejected here: an empty program is valid JavaScript.
	program, err := compile.Compile(c.sourceName, scriptBodyBytes, c.strictMode)
	if err != nil {
		if errors.Is(err, compile.ErrContentNil) {
			logger.Error("Compile called with nil script")
			return nil, ErrContentNil
		}
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, newCompileError(c.sourceName, err))
	}

	if program == nil {
		logger.Error("Compilation returned nil program")
		return nil, ErrBytecodeNil
	}

	jsExec := newExecutable(scriptBodyBytes, program)
	if jsExec == nil {
		logger.Warn("Failed to create Executable from program")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Validation completed")
	return jsExec, nil
}
