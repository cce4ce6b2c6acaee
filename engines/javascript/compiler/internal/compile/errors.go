package compile

import "errors"

var (
	ErrCompileFailed = errors.New("failed to compile javascript script")
	ErrContentNil    = errors.New("javascript content is nil")
)
