// Package docdiff merges two versions of a rich text document into one
// annotated tree.
//
// The merged tree holds the content of both versions. Content only in the
// old version carries a diff mark of type Deleted, content only in the new
// one a diff mark of type Inserted. A renderer shows it as an inline diff;
// package review accepts or rejects the changes.
package docdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/libdiff"
)

var (
	ErrNilNode      = errors.New("nil document")
	ErrLeafRoot     = errors.New("document root is a leaf")
	ErrTypeMismatch = libdiff.ErrTypeMismatch
)

// Diff merges from and to into a new annotated tree. Both roots must be
// containers of the same type; the inputs are not modified.
func Diff(from, to *ir.Node) (*ir.Node, error) {
	if from == nil || to == nil {
		return nil, ErrNilNode
	}
	if from.IsLeaf() || to.IsLeaf() {
		return nil, fmt.Errorf("%w: %q vs %q", ErrLeafRoot, from.Type, to.Type)
	}
	if from.Type != to.Type {
		return nil, fmt.Errorf("%w: root %q vs %q", ErrTypeMismatch, from.Type, to.Type)
	}
	return libdiff.DiffNode(from, to)
}
