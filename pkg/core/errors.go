package core

import "errors"

var (
	ErrEmptyScene = errors.New("core: cannot build a hierarchy from an empty object list")
)
