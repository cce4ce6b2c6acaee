package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferLoader(t *testing.T) {
	t.Parallel()

	t.Run("inline string content", func(t *testing.T) {
		l, err := InferLoader(MultilineContent)
		require.NoError(t, err)
		require.IsType(t, &FromString{}, l)
	})

	t.Run("byte slice", func(t *testing.T) {
		l, err := InferLoader([]byte(SimpleContent))
		require.NoError(t, err)
		require.IsType(t, &FromBytes{}, l)
	})

	t.Run("io.Reader", func(t *testing.T) {
		l, err := InferLoader(strings.NewReader(SimpleContent))
		require.NoError(t, err)
		require.IsType(t, &FromIoReader{}, l)
	})

	t.Run("existing loader passes through", func(t *testing.T) {
		orig, err := NewFromString(SimpleContent)
		require.NoError(t, err)

		l, err := InferLoader(orig)
		require.NoError(t, err)
		require.Same(t, orig, l)
	})

	t.Run("file URI", func(t *testing.T) {
		path := writeTempScript(t, "inferred.js", SimpleContent)

		l, err := InferLoader("file://" + path)
		require.NoError(t, err)
		require.IsType(t, &FromDisk{}, l)
	})

	t.Run("plain file path with js extension", func(t *testing.T) {
		path := writeTempScript(t, "plain.js", SimpleContent)

		l, err := InferLoader(path)
		require.NoError(t, err)
		require.IsType(t, &FromDisk{}, l)
	})

	t.Run("http scheme is rejected", func(t *testing.T) {
		l, err := InferLoader("https://example.com/script.js")
		require.Error(t, err)
		require.ErrorIs(t, err, ErrSchemeNotSupported)
		require.Nil(t, l)
	})

	t.Run("script with division is inline, not a path", func(t *testing.T) {
		l, err := InferLoader("var half = total / 2;")
		require.NoError(t, err)
		require.IsType(t, &FromString{}, l)
	})

	t.Run("empty string", func(t *testing.T) {
		l, err := InferLoader("")
		require.Error(t, err)
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		require.Nil(t, l)
	})

	t.Run("unsupported type", func(t *testing.T) {
		l, err := InferLoader(42)
		require.Error(t, err)
		require.Nil(t, l)
	})
}
