package script

import (
	machineTypes "github.com/robbyt/go-jscompile/engines/types"
)

// ExecutableContent represents validated script content that has been compiled
// and is ready for a later execution step. It provides access to the script's
// source code and its compiled bytecode.
type ExecutableContent interface {
	// GetSource returns the original script content as a string.
	// This is the source code before any compilation.
	GetSource() string

	// GetByteCode returns the compiled bytecode of the script in an engine-specific
	// format. This bytecode object is asserted into the type the target engine
	// requires, so the engine type and ByteCode must be compatible.
	GetByteCode() any

	// GetMachineType returns the engine type this script was compiled for.
	GetMachineType() machineTypes.Type
}
