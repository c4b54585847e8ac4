package review

import (
	"slices"

	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/libdiff"
)

// Change is one annotated span of a merged tree.
type Change struct {
	Type libdiff.DiffType `json:"type"`
	// Block is the index of the top-level block holding the change.
	Block int `json:"block"`
	// Path holds the child indices from the root to the first node of the
	// change.
	Path []int `json:"path"`
	// NodeType is the type of the first annotated node.
	NodeType string `json:"nodeType"`
	Text     string `json:"text"`
	// Nodes is the number of sibling nodes covered.
	Nodes int `json:"nodes"`
}

// Changes lists the annotated spans of merged in document order. Adjacent
// annotated siblings of the same diff type form one change, and an
// annotated container is reported once for its whole subtree.
func Changes(merged *ir.Node) []Change {
	var res []Change
	collectChanges(merged, nil, &res)
	return res
}

func collectChanges(n *ir.Node, path []int, res *[]Change) {
	var cur *Change
	for i, c := range n.Content {
		t := libdiff.DiffTypeOf(c)
		if t == libdiff.Unchanged {
			cur = nil
			collectChanges(c, append(path, i), res)
			continue
		}
		if cur != nil && cur.Type == t {
			cur.Text += c.TextContent()
			cur.Nodes++
			continue
		}
		p := append(slices.Clone(path), i)
		*res = append(*res, Change{
			Type:     t,
			Block:    p[0],
			Path:     p,
			NodeType: c.Type,
			Text:     c.TextContent(),
			Nodes:    1,
		})
		cur = &(*res)[len(*res)-1]
	}
}
