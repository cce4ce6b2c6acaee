package compiler

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/dop251/goja/parser"
)

var (
	ErrBytecodeNil        = errors.New("javascript bytecode is nil")
	ErrContentNil         = errors.New("javascript content is nil")
	ErrExecCreationFailed = errors.New("unable to create javascript executable")
	ErrValidationFailed   = errors.New("javascript script validation error")
)

// CompileError is the structured diagnostic for a script the engine rejected.
// Message carries the engine's text verbatim. Line and Column are 1-based and
// zero when the engine did not report a position.
type CompileError struct {
	SourceName string
	Message    string
	Line       int
	Column     int
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: Line %d:%d %s", e.SourceName, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.SourceName, e.Message)
}

// newCompileError extracts a structured diagnostic from a goja compile error.
// Parser errors carry positions directly; compiler syntax errors (e.g. strict
// mode violations) carry a file offset that is resolved to a position.
func newCompileError(sourceName string, err error) *CompileError {
	var errList parser.ErrorList
	if errors.As(err, &errList) && len(errList) > 0 {
		first := errList[0]
		return &CompileError{
			SourceName: sourceName,
			Message:    first.Message,
			Line:       first.Position.Line,
			Column:     first.Position.Column,
		}
	}

	var syntaxErr *goja.CompilerSyntaxError
	if errors.As(err, &syntaxErr) {
		ce := &CompileError{
			SourceName: sourceName,
			Message:    syntaxErr.Message,
		}
		if syntaxErr.File != nil {
			pos := syntaxErr.File.Position(syntaxErr.Offset)
			ce.Line = pos.Line
			ce.Column = pos.Column
		}
		return ce
	}

	return &CompileError{
		SourceName: sourceName,
		Message:    err.Error(),
	}
}
