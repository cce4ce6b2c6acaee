package compile

import (
	"fmt"

	"github.com/dop251/goja"
	"github.com/dop251/goja/parser"
)

// Compile parses and compiles the script source into a goja Program without
// executing it. Parsing and compilation are separate steps so syntax errors
// surface with line and column positions from the parser. The name is used in
// diagnostics only.
//
// An empty (but non-nil) source compiles successfully: an empty program is
// valid JavaScript.
func Compile(name string, scriptBodyBytes []byte, strict bool) (*goja.Program, error) {
	if scriptBodyBytes == nil {
		return nil, ErrContentNil
	}

	astProg, err := parser.ParseFile(nil, name, string(scriptBodyBytes), 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	program, err := goja.CompileAST(astProg, strict)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return program, nil
}
