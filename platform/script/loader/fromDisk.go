package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FromDisk implements the Loader interface for script files on the local filesystem.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk creates a new Loader for a script file at the given path.
// The file must exist and be a regular file when the loader is created.
func NewFromDisk(path string) (*FromDisk, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrScriptNotAvailable)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrScriptNotAvailable, absPath)
	}

	u, err := url.Parse("file://" + filepath.ToSlash(absPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromDisk{
		path:      absPath,
		sourceURL: u,
	}, nil
}

func (l *FromDisk) String() string {
	return fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)
}

// GetReader opens the file and returns it. The caller is responsible for closing.
func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	reader, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	return reader, nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
