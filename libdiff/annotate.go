package libdiff

import "github.com/signadot/docdiff/ir"

// Annotate returns a deep copy of node in which every leaf, and every
// container, carries the diff mark for t after its existing marks. Input
// that is already annotated is re-annotated rather than double-marked: its
// previous diff mark is replaced. Annotating with Unchanged strips diff
// marks.
func Annotate(node *ir.Node, t DiffType) *ir.Node {
	res := &ir.Node{
		Kind:  node.Kind,
		Type:  node.Type,
		Attrs: ir.CloneAttrs(node.Attrs),
		Marks: withDiffMark(node.Marks, t),
		Text:  node.Text,
	}
	if node.Kind == ir.ContainerKind {
		res.Content = make([]*ir.Node, len(node.Content))
		for i, c := range node.Content {
			res.Content[i] = Annotate(c, t)
		}
	}
	return res
}

func withDiffMark(marks []ir.Mark, t DiffType) []ir.Mark {
	res := ir.WithoutMark(marks, DiffMarkType)
	if t == Unchanged {
		return res
	}
	return append(res, DiffMark(t))
}

// piece returns a leaf with leaf's type, attrs and marks holding text,
// annotated as t.
func piece(leaf *ir.Node, text string, t DiffType) *ir.Node {
	return &ir.Node{
		Kind:  ir.LeafKind,
		Type:  leaf.Type,
		Attrs: ir.CloneAttrs(leaf.Attrs),
		Marks: withDiffMark(leaf.Marks, t),
		Text:  text,
	}
}

func annotateUnit(u unit, t DiffType) []*ir.Node {
	if !u.isRun() {
		return []*ir.Node{Annotate(u.node, t)}
	}
	res := make([]*ir.Node, len(u.run))
	for i, l := range u.run {
		res[i] = Annotate(l, t)
	}
	return res
}
