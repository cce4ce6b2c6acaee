package script

import (
	"fmt"
	"log/slog"
	"time"

	machineTypes "github.com/robbyt/go-jscompile/engines/types"
	"github.com/robbyt/go-jscompile/internal/helpers"
	"github.com/robbyt/go-jscompile/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit represents a specific version of a script, including its
// compiled content and creation time. It is the handle returned by a
// successful compilation: exactly one unit is produced per construction, and
// nothing persists if construction fails.
type ExecutableUnit struct {
	// ID is a unique identifier for this executable unit, typically derived
	// from the loader's source URL or a hash of the script content.
	ID string

	// CreatedAt records when this executable unit was instantiated.
	CreatedAt time.Time

	// ScriptLoader loads the script content to local memory from various places
	// (file, string, bytes).
	ScriptLoader loader.Loader

	// Compiler is the engine-specific compiler that was used to compile this unit.
	Compiler Compiler

	// Content holds the compiled bytecode and source representation of the script.
	Content ExecutableContent

	// Logging components
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit creates a new ExecutableUnit from the provided loader and
// compiler. The script is compiled during construction; a compile failure is
// returned to the caller with the engine diagnostic intact.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrCompilerNil
	}

	if scriptLoader == nil {
		return nil, ErrLoaderNil
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.SHA256(exe.GetSource())
		if len(versionID) > checksumLength {
			versionID = versionID[:checksumLength]
		}
	}

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Content:      exe,
		Compiler:     compiler,
		logHandler:   handler,
		logger:       logger.With("ID", versionID),
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

// GetID returns the unique identifier (version number, or name) for this script version.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the validated & compiled script content as ExecutableContent.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetCreatedAt returns the timestamp when the unit was created.
func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetMachineType returns the engine type this script was compiled for.
func (exe *ExecutableUnit) GetMachineType() machineTypes.Type {
	return exe.Content.GetMachineType()
}

// GetCompiler returns the compiler used to validate the script and convert it
// into bytecode.
func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

// GetLoader returns the loader used to load the script.
func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}
