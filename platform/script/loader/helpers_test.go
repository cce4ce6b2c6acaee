package loader

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// SimpleContent is a one-line script used across the loader tests.
	SimpleContent = `var x = 1 + 1;`

	// MultilineContent is a JXA-flavored script used across the loader tests.
	MultilineContent = `var App = Application('Finder');
App.includeStandardAdditions = true;
App.displayAlert($params.title, { message: $params.message });`
)

// verifyLoader checks the common Loader contract: a readable, closeable reader
// and a stable source URL.
func verifyLoader(t *testing.T, l Loader, wantURL string) {
	t.Helper()

	require.NotNil(t, l.GetSourceURL())
	require.Equal(t, wantURL, l.GetSourceURL().String())

	reader, err := l.GetReader()
	require.NoError(t, err)
	require.NotNil(t, reader)

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.NoError(t, reader.Close())

	// The reader must be re-creatable; loaders hold content, not stream state.
	reader2, err := l.GetReader()
	require.NoError(t, err)
	content2, err := io.ReadAll(reader2)
	require.NoError(t, err)
	require.Equal(t, content, content2)
	require.NoError(t, reader2.Close())
}
