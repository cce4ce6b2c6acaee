package compile

import (
	"errors"
	"testing"

	"github.com/dop251/goja/parser"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("valid scripts", func(t *testing.T) {
		tests := []struct {
			name   string
			script string
		}{
			{
				name:   "simple expression",
				script: `1+1`,
			},
			{
				name:   "empty program",
				script: ``,
			},
			{
				name:   "only a comment",
				script: `// nothing to see here`,
			},
			{
				name: "jxa flavored script",
				script: `var App = Application('Finder');
App.includeStandardAdditions = true;
App.displayAlert($params.title, { message: $params.message });`,
			},
			{
				name:   "undeclared identifiers compile",
				script: `JSON.stringify((function() { return $params; })());`,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				program, err := Compile("test.js", []byte(tc.script), false)
				require.NoError(t, err)
				require.NotNil(t, program)
			})
		}
	})

	t.Run("invalid scripts", func(t *testing.T) {
		tests := []struct {
			name   string
			script string
		}{
			{
				name:   "unbalanced function",
				script: `function() {`,
			},
			{
				name:   "unmatched brace",
				script: `if (x) { y();`,
			},
			{
				name:   "garbage tokens",
				script: `@@@ not javascript @@@`,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				program, err := Compile("test.js", []byte(tc.script), false)
				require.Error(t, err)
				require.ErrorIs(t, err, ErrCompileFailed)
				require.Nil(t, program)

				// parser errors carry structured positions
				var errList parser.ErrorList
				require.True(t, errors.As(err, &errList))
				require.NotEmpty(t, errList)
				require.NotEmpty(t, errList[0].Message)
				require.Equal(t, 1, errList[0].Position.Line)
			})
		}
	})

	t.Run("nil content", func(t *testing.T) {
		program, err := Compile("test.js", nil, false)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrContentNil)
		require.Nil(t, program)
	})

	t.Run("strict mode", func(t *testing.T) {
		// with statements are forbidden in strict mode but fine outside it
		script := `with ({}) {}`

		program, err := Compile("test.js", []byte(script), false)
		require.NoError(t, err)
		require.NotNil(t, program)

		program, err = Compile("test.js", []byte(script), true)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrCompileFailed)
		require.Nil(t, program)
	})

	t.Run("deterministic outcome", func(t *testing.T) {
		for _, script := range []string{`1+1`, `function() {`} {
			_, err1 := Compile("test.js", []byte(script), false)
			_, err2 := Compile("test.js", []byte(script), false)
			require.Equal(t, err1 == nil, err2 == nil)
		}
	})
}
