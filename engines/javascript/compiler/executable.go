package compiler

import (
	"github.com/dop251/goja"
	machineTypes "github.com/robbyt/go-jscompile/engines/types"
)

// executable represents a compiled JavaScript program
type executable struct {
	scriptBodyBytes []byte
	ByteCode        *goja.Program
}

// newExecutable requires compiled bytecode. An empty source slice is allowed,
// since an empty program is valid JavaScript; a nil slice is not.
func newExecutable(scriptBodyBytes []byte, byteCode *goja.Program) *executable {
	if scriptBodyBytes == nil || byteCode == nil {
		return nil
	}

	return &executable{
		scriptBodyBytes: scriptBodyBytes,
		ByteCode:        byteCode,
	}
}

func (e *executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

func (e *executable) GetByteCode() any {
	return e.ByteCode
}

func (e *executable) GetGojaByteCode() *goja.Program {
	return e.ByteCode
}

func (e *executable) GetMachineType() machineTypes.Type {
	return machineTypes.JavaScript
}
