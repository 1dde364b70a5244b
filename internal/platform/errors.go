package platform

import "errors"

var (
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
	ErrEmptyInput           = errors.New("empty input")
)
