package docdiff

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/docdiff/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyJSONPatch applies an RFC 6902 JSON Patch to doc and returns the
// patched document. doc is not modified.
func ApplyJSONPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("error decoding json patch: %w", err)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying json patch: %w", err)
	}
	res := &ir.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("patched document: %w", err)
	}
	return res, nil
}

// DiffJSONPatch diffs doc against the revision obtained by applying patch to
// it.
func DiffJSONPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	rev, err := ApplyJSONPatch(doc, patch)
	if err != nil {
		return nil, err
	}
	return Diff(doc, rev)
}
