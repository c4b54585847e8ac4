package libdiff

import (
	"github.com/signadot/docdiff/ir"
)

// Reverse returns a copy of a merged tree with every Inserted annotation
// turned into Deleted and vice versa, so that the result of diffing a to b
// reads as the result of diffing b to a.
func Reverse(merged *ir.Node) *ir.Node {
	tmp := merged.Clone()
	_ = tmp.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		switch DiffTypeOf(node) {
		case Inserted:
			node.Marks = withDiffMark(node.Marks, Deleted)
		case Deleted:
			node.Marks = withDiffMark(node.Marks, Inserted)
		}
		return true, nil
	})
	return tmp
}
