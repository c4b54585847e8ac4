package libdiff

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/docdiff/ir"
)

var bold = ir.NewMark("bold", nil)

func doc(children ...*ir.Node) *ir.Node {
	return ir.Container("doc", nil, children...)
}

func p(children ...*ir.Node) *ir.Node {
	return ir.Container("paragraph", nil, children...)
}

func pt(s string) *ir.Node {
	return p(ir.Text(s))
}

func h(level int, s string) *ir.Node {
	return ir.Container("heading", map[string]any{"level": level}, ir.Text(s))
}

func txt(s string, marks ...ir.Mark) *ir.Node {
	return ir.Text(s, marks...)
}

func ins(s string, marks ...ir.Mark) *ir.Node {
	return ir.Text(s, append(marks, DiffMark(Inserted))...)
}

func del(s string, marks ...ir.Mark) *ir.Node {
	return ir.Text(s, append(marks, DiffMark(Deleted))...)
}

func checkNodes(t *testing.T, want, got []*ir.Node) {
	t.Helper()
	if d := cmp.Diff(want, got, cmpopts.EquateEmpty()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s\ngot %s", d, jsonString(got))
	}
}

func checkNode(t *testing.T, want, got *ir.Node) {
	t.Helper()
	checkNodes(t, []*ir.Node{want}, []*ir.Node{got})
}

func jsonString(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// sideText rebuilds the text of one side of a merged tree: the old side
// skips Inserted content, the new side skips Deleted content.
func sideText(merged *ir.Node, skip DiffType) string {
	var b strings.Builder
	var walk func(n *ir.Node, inherited DiffType)
	walk = func(n *ir.Node, inherited DiffType) {
		t := DiffTypeOf(n)
		if t == Unchanged {
			t = inherited
		}
		if t == skip {
			return
		}
		if n.IsLeaf() {
			b.WriteString(n.Text)
			return
		}
		for _, c := range n.Content {
			walk(c, t)
		}
	}
	walk(merged, Unchanged)
	return b.String()
}

func countMarked(n *ir.Node, t DiffType) int {
	count := 0
	_ = n.Visit(func(x *ir.Node, isPost bool) (bool, error) {
		if !isPost && DiffTypeOf(x) == t {
			count++
		}
		return true, nil
	})
	return count
}
