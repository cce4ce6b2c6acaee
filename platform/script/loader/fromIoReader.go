package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-jscompile/internal/helpers"
)

// FromIoReader implements the Loader interface for content from an io.Reader.
// The reader is drained once at creation so GetReader can be called repeatedly.
type FromIoReader struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromIoReader creates a new Loader by reading all content from the reader.
// The name is used to build the source URL for identification in diagnostics.
func NewFromIoReader(reader io.Reader, name string) (*FromIoReader, error) {
	if reader == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrScriptNotAvailable)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrScriptNotAvailable)
	}

	if name == "" {
		name = "reader"
	}

	contentHash := helpers.SHA256Bytes(content)[:8]
	u, err := url.Parse("reader://" + name + "/" + contentHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromIoReader{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf("loader.FromIoReader{Bytes: %d}", len(l.content))
}

// GetReader returns a new reader for the stored content.
func (l *FromIoReader) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromIoReader) GetSourceURL() *url.URL {
	return l.sourceURL
}
