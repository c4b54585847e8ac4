package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/signadot/docdiff/format"
	"github.com/signadot/docdiff/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	indent int
	wire   bool
	format format.Format
	colors *Colors
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w as JSON or YAML, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return EncodeValue(node, w, opts...)
}

// EncodeValue is Encode for any value with a JSON encoding, such as change
// listings.
func EncodeValue(v any, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	var (
		d   []byte
		err error
	)
	if es.wire || es.indent == 0 {
		d, err = json.Marshal(v)
	} else {
		d, err = json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return err
	}
	if es.format == format.YAMLFormat {
		d, err = yaml.JSONToYAML(d)
		if err != nil {
			return err
		}
		d = bytes.TrimRight(d, "\n")
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
