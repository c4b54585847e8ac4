package ir

import "errors"

var (
	ErrBadNode = errors.New("bad node")
)
