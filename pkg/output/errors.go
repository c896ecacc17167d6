package output

import "errors"

// ErrUnsupportedFormat is returned for image formats without an encoder
var ErrUnsupportedFormat = errors.New("output: unsupported image format")
