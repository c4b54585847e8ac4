package docdiff

import (
	"encoding/json"
	"testing"

	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/libdiff"
)

const patchDoc = `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hello"}]}]}`

func TestDiffJSONPatch(t *testing.T) {
	d := &ir.Node{}
	if err := json.Unmarshal([]byte(patchDoc), d); err != nil {
		t.Fatal(err)
	}
	patch := `[
		{"op": "replace", "path": "/content/0/content/0/text", "value": "Hello world"},
		{"op": "add", "path": "/content/-", "value": {"type": "paragraph", "content": [{"type": "text", "text": "Bye"}]}}
	]`
	got, err := DiffJSONPatch(d, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Container("doc", nil,
		ir.Container("paragraph", nil,
			ir.Text("Hello"),
			ir.Text(" world", libdiff.DiffMark(libdiff.Inserted))),
		libdiff.Annotate(para("Bye"), libdiff.Inserted))
	if !ir.Equal(got, want) {
		g, _ := json.Marshal(got)
		t.Errorf("got %s", g)
	}
	if d.TextContent() != "Hello" {
		t.Errorf("input modified")
	}
}

func TestApplyJSONPatchErrors(t *testing.T) {
	d := ir.Container("doc", nil, para("a"))
	if _, err := ApplyJSONPatch(d, []byte(`{"op": "add"}`)); err == nil {
		t.Errorf("expected decode error")
	}
	if _, err := ApplyJSONPatch(d, []byte(`[{"op": "remove", "path": "/content/3"}]`)); err == nil {
		t.Errorf("expected apply error")
	}
	if _, err := ApplyJSONPatch(d, []byte(`[{"op": "remove", "path": "/type"}]`)); err == nil {
		t.Errorf("expected invalid document")
	}
}
