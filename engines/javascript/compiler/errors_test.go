package compiler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileError_Error(t *testing.T) {
	t.Parallel()

	t.Run("with position", func(t *testing.T) {
		e := &CompileError{
			SourceName: "bad.js",
			Message:    "Unexpected token (",
			Line:       1,
			Column:     9,
		}
		require.Equal(t, "bad.js: Line 1:9 Unexpected token (", e.Error())
	})

	t.Run("without position", func(t *testing.T) {
		e := &CompileError{
			SourceName: "bad.js",
			Message:    "something went wrong",
		}
		require.Equal(t, "bad.js: something went wrong", e.Error())
	})
}

func TestNewCompileError(t *testing.T) {
	t.Parallel()

	t.Run("opaque error keeps message verbatim", func(t *testing.T) {
		err := errors.New("engine exploded")
		ce := newCompileError("s.js", err)
		require.Equal(t, "engine exploded", ce.Message)
		require.Equal(t, "s.js", ce.SourceName)
		require.Zero(t, ce.Line)
		require.Zero(t, ce.Column)
	})
}
