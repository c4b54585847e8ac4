package review

import (
	"github.com/signadot/docdiff/debug"
	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/libdiff"
)

// Accept returns the new version of merged.
func Accept(merged *ir.Node) *ir.Node {
	return resolveRoot(merged, libdiff.Deleted)
}

// Reject returns the old version of merged.
func Reject(merged *ir.Node) *ir.Node {
	return resolveRoot(merged, libdiff.Inserted)
}

func resolveRoot(merged *ir.Node, drop libdiff.DiffType) *ir.Node {
	res := resolve(merged, drop)
	if res == nil {
		// the root itself was annotated
		res = merged.ShallowWith(nil)
		res.Marks = ir.WithoutMark(res.Marks, libdiff.DiffMarkType)
	}
	return res
}

// resolve returns a copy of n without diff marks and without the nodes
// annotated drop, or nil if n itself is annotated drop.
func resolve(n *ir.Node, drop libdiff.DiffType) *ir.Node {
	if libdiff.DiffTypeOf(n) == drop {
		return nil
	}
	res := &ir.Node{
		Kind:  n.Kind,
		Type:  n.Type,
		Attrs: ir.CloneAttrs(n.Attrs),
		Marks: ir.WithoutMark(n.Marks, libdiff.DiffMarkType),
		Text:  n.Text,
	}
	if n.Kind == ir.ContainerKind {
		res.Content = make([]*ir.Node, 0, len(n.Content))
		for _, c := range n.Content {
			if rc := resolve(c, drop); rc != nil {
				res.Content = append(res.Content, rc)
			}
		}
	}
	return res
}

// Selector chooses top-level blocks of a merged tree.
type Selector func(b *Block) (bool, error)

// All selects every block.
func All(*Block) (bool, error) { return true, nil }

// Resolve accepts (accept true) or rejects the changes in the top-level
// blocks of merged chosen by sel. Other blocks are copied unchanged, still
// annotated.
func Resolve(merged *ir.Node, sel Selector, accept bool) (*ir.Node, error) {
	drop := libdiff.Inserted
	if accept {
		drop = libdiff.Deleted
	}
	blocks := Blocks(merged)
	res := make([]*ir.Node, 0, len(blocks))
	for _, b := range blocks {
		ok, err := sel(b)
		if err != nil {
			return nil, err
		}
		if debug.Review() {
			debug.Logf("review: block %d %q selected=%t\n", b.Index, b.Node.Type, ok)
		}
		if !ok {
			res = append(res, b.Node.Clone())
			continue
		}
		if rb := resolve(b.Node, drop); rb != nil {
			res = append(res, rb)
		}
	}
	out := merged.ShallowWith(res)
	out.Marks = ir.WithoutMark(out.Marks, libdiff.DiffMarkType)
	return out, nil
}
