package ir

import (
	"strings"
)

// TextType is the node type used for plain text leaves.
const TextType = "text"

type Node struct {
	Kind  Kind
	Type  string
	Attrs map[string]any
	Marks []Mark

	Content []*Node
	Text    string
}

func (n *Node) IsLeaf() bool {
	return n.Kind == LeafKind
}

func (n *Node) WithAttrs(attrs map[string]any) *Node {
	n.Attrs = attrs
	return n
}

func (n *Node) WithMarks(marks ...Mark) *Node {
	n.Marks = marks
	return n
}

// Leaf returns a leaf node of type typ.
func Leaf(typ, text string, marks ...Mark) *Node {
	return &Node{
		Kind:  LeafKind,
		Type:  typ,
		Text:  text,
		Marks: marks,
	}
}

// Text returns a text leaf.
func Text(text string, marks ...Mark) *Node {
	return Leaf(TextType, text, marks...)
}

// Container returns a container node holding children.
func Container(typ string, attrs map[string]any, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		Kind:    ContainerKind,
		Type:    typ,
		Attrs:   attrs,
		Content: children,
	}
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Kind:  n.Kind,
		Type:  n.Type,
		Attrs: CloneAttrs(n.Attrs),
		Marks: CloneMarks(n.Marks),
		Text:  n.Text,
	}
	if n.Content != nil {
		res.Content = make([]*Node, len(n.Content))
		for i, c := range n.Content {
			res.Content[i] = c.Clone()
		}
	}
	return res
}

// ShallowWith returns a copy of n's type, attrs and marks with children as
// content.
func (n *Node) ShallowWith(children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		Kind:    ContainerKind,
		Type:    n.Type,
		Attrs:   CloneAttrs(n.Attrs),
		Marks:   CloneMarks(n.Marks),
		Content: children,
	}
}

// CloneAttrs deep copies an attribute map.
func CloneAttrs(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	res := make(map[string]any, len(attrs))
	for k, v := range attrs {
		res[k] = cloneValue(v)
	}
	return res
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return CloneAttrs(x)
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = cloneValue(x[i])
		}
		return res
	default:
		return v
	}
}

// Visit walks the tree rooted at n. f is called before (isPost false) and
// after (isPost true) the children of each node; returning false on the pre
// call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Content {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Leaves returns the leaves under n in document order.
func (n *Node) Leaves() []*Node {
	var res []*Node
	_ = n.Visit(func(x *Node, isPost bool) (bool, error) {
		if !isPost && x.IsLeaf() {
			res = append(res, x)
		}
		return true, nil
	})
	return res
}

// TextContent concatenates the text of all leaves under n.
func (n *Node) TextContent() string {
	if n.IsLeaf() {
		return n.Text
	}
	var b strings.Builder
	for _, l := range n.Leaves() {
		b.WriteString(l.Text)
	}
	return b.String()
}
