package encode

import (
	"bufio"
	"io"
	"strings"

	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/libdiff"
)

// markers used when rendering without colors, as in git's word diff.
const (
	delOpen  = "[-"
	delClose = "-]"
	insOpen  = "{+"
	insClose = "+}"
)

// Render writes a merged tree as text, one line per text block, with
// deleted and inserted spans decorated: with colors if the EncodeColors
// option is given, otherwise wrapped in [-...-] and {+...+}.
func Render(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	bw := bufio.NewWriter(w)
	r := &renderer{es: es, w: bw}
	if isTextBlock(node) {
		r.textBlock(node, 0)
	} else {
		r.blocks(node, 0)
	}
	return bw.Flush()
}

type renderer struct {
	es *EncState
	w  *bufio.Writer
}

func isTextBlock(n *ir.Node) bool {
	for _, c := range n.Content {
		if c.IsLeaf() {
			return true
		}
	}
	return false
}

func (r *renderer) blocks(n *ir.Node, depth int) {
	for _, c := range n.Content {
		switch {
		case len(c.Content) == 0 && !c.IsLeaf():
			r.indent(depth)
			r.w.WriteString(r.decorate(libdiff.DiffTypeOf(c), r.atom(c)))
			r.w.WriteByte('\n')
		case isTextBlock(c):
			r.textBlock(c, depth)
		default:
			r.blocks(c, depth+1)
		}
	}
}

func (r *renderer) textBlock(n *ir.Node, depth int) {
	r.indent(depth)
	var (
		cur libdiff.DiffType
		buf strings.Builder
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		r.w.WriteString(r.decorate(cur, buf.String()))
		buf.Reset()
	}
	for _, c := range n.Content {
		t := libdiff.DiffTypeOf(c)
		if t != cur {
			flush()
			cur = t
		}
		if c.IsLeaf() {
			buf.WriteString(c.Text)
		} else {
			buf.WriteString(r.inline(c))
		}
	}
	flush()
	r.w.WriteByte('\n')
}

// inline renders a container nested in a text block.
func (r *renderer) inline(n *ir.Node) string {
	if len(n.Content) == 0 {
		return r.atom(n)
	}
	return n.TextContent()
}

func (r *renderer) atom(n *ir.Node) string {
	s := "[" + n.Type + "]"
	if r.es.colors != nil {
		return r.es.colors.Atom(s)
	}
	return s
}

func (r *renderer) decorate(t libdiff.DiffType, s string) string {
	c := r.es.colors
	switch t {
	case libdiff.Inserted:
		if c != nil {
			return c.Inserted(s)
		}
		return insOpen + s + insClose
	case libdiff.Deleted:
		if c != nil {
			return c.Deleted(s)
		}
		return delOpen + s + delClose
	}
	return s
}

func (r *renderer) indent(depth int) {
	for range depth * r.es.indent {
		r.w.WriteByte(' ')
	}
}
