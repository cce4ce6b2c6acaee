package loader

import "errors"

var (
	ErrScriptNotAvailable = errors.New("script not available")
	ErrSchemeNotSupported = errors.New("URL scheme not supported")
)
