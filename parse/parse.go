// Package parse decodes document trees from JSON or YAML.
//
// Documents use the ProseMirror JSON shape described in package ir. YAML
// input is the same shape written as YAML.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/docdiff/format"
	"github.com/signadot/docdiff/ir"

	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format == format.YAMLFormat {
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		d = j
	}
	if len(bytes.TrimSpace(d)) == 0 || bytes.Equal(bytes.TrimSpace(d), []byte("null")) {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	res := &ir.Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}
