package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/docdiff/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// MustRender returns the inline rendering of a merged tree.
func MustRender(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Render(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
