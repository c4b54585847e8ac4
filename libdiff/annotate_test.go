package libdiff

import (
	"math"
	"testing"

	"github.com/signadot/docdiff/ir"
)

func TestAnnotate(t *testing.T) {
	n := doc(p(txt("a", bold), ins("b")))
	got := Annotate(n, Deleted)
	want := ir.Container("doc", nil,
		ir.Container("paragraph", nil, del("a", bold), del("b")).WithMarks(DiffMark(Deleted)),
	).WithMarks(DiffMark(Deleted))
	checkNode(t, want, got)
	if DiffTypeOf(n) != Unchanged || len(n.Content[0].Content[0].Marks) != 1 {
		t.Errorf("input modified")
	}

	stripped := Annotate(got, Unchanged)
	checkNode(t, doc(p(txt("a", bold), txt("b"))), stripped)
}

func TestReverse(t *testing.T) {
	for _, tt := range diffTests {
		fwd, err := DiffNode(tt.from, tt.to)
		if err != nil {
			t.Fatal(err)
		}
		rev := Reverse(fwd)
		if countMarked(rev, Inserted) != countMarked(fwd, Deleted) ||
			countMarked(rev, Deleted) != countMarked(fwd, Inserted) {
			t.Errorf("%s: marks not swapped", tt.name)
		}
		if sideText(rev, Inserted) != tt.to.TextContent() {
			t.Errorf("%s: reversed old side %q", tt.name, sideText(rev, Inserted))
		}
		if !ir.Equal(Reverse(rev), fwd) {
			t.Errorf("%s: reverse is not an involution", tt.name)
		}
	}
}

func TestDiffTypeText(t *testing.T) {
	for _, dt := range []DiffType{Unchanged, Inserted, Deleted} {
		d, err := dt.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back DiffType
		if err := back.UnmarshalText(d); err != nil || back != dt {
			t.Errorf("%s: got %s, %v", dt, back, err)
		}
	}
	if _, err := DiffType(7).MarshalText(); err == nil {
		t.Errorf("expected error")
	}
	if _, err := ParseDiffType("inserted"); err == nil {
		t.Errorf("expected error")
	}
	odd := ir.Text("x", ir.NewMark(DiffMarkType, map[string]any{DiffTypeAttr: "Moved"}))
	if DiffTypeOf(odd) != Unchanged {
		t.Errorf("unknown diff type should read as unchanged")
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b *ir.Node
		want float64
	}{
		{pt("alpha beta"), pt("alpha beta"), 1},
		{pt("alpha beta"), pt("gamma"), 0.1},
		{pt("alpha beta"), h(1, "alpha beta"), 1},
		{pt("alpha  beta"), pt("alpha beta gamma"), 0.9*0.8 + 0.1},
		{ir.Container("image", nil), ir.Container("image", nil), 1},
		{ir.Container("image", nil), ir.Container("figure", nil, pt("")), 0},
		{txt("one two"), txt("two one"), 1},
	}
	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a.TextContent(), tt.b.TextContent(), got, tt.want)
		}
	}
}

func TestAnnotateReplacesDiffMark(t *testing.T) {
	got := Annotate(ins("x", bold), Deleted)
	if len(got.Marks) != 2 || got.Marks[0].Type != "bold" || DiffTypeOf(got) != Deleted {
		t.Errorf("got marks %v", got.Marks)
	}
	if again := Annotate(got, Deleted); !ir.Equal(again, got) {
		t.Errorf("annotating twice changed marks: %v", again.Marks)
	}
}
