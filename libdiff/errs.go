package libdiff

import "errors"

var (
	ErrTypeMismatch = errors.New("node type mismatch")
	ErrBadDiffType  = errors.New("bad diff type")
)
