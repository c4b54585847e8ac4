package libdiff

import (
	"errors"
	"testing"

	"github.com/signadot/docdiff/ir"
)

type diffTest struct {
	name     string
	from, to *ir.Node
	want     *ir.Node
}

var diffTests = []diffTest{
	{
		name: "inserted paragraph between matches",
		from: doc(pt("Hello"), pt("World")),
		to:   doc(pt("Hello"), pt("There"), pt("World")),
		want: doc(pt("Hello"), Annotate(pt("There"), Inserted), pt("World")),
	},
	{
		name: "deleted paragraph",
		from: doc(pt("Hello"), pt("There"), pt("World")),
		to:   doc(pt("Hello"), pt("World")),
		want: doc(pt("Hello"), Annotate(pt("There"), Deleted), pt("World")),
	},
	{
		name: "modified paragraph",
		from: doc(pt("Intro"), pt("The quick fox jumps."), pt("End")),
		to:   doc(pt("Intro"), pt("The quick brown fox leaps."), pt("End")),
		want: doc(
			pt("Intro"),
			p(txt("The quick "), ins("brown "), txt("fox "), del("jumps"), ins("leaps"), txt(".")),
			pt("End")),
	},
	{
		name: "matched run in the middle",
		from: doc(pt("x one"), pt("a"), pt("b"), pt("y two")),
		to:   doc(pt("z one"), pt("a"), pt("b"), pt("w two")),
		want: doc(
			p(del("x"), ins("z"), txt(" one")),
			pt("a"),
			pt("b"),
			p(del("y"), ins("w"), txt(" two"))),
	},
	{
		name: "heading level change is a replacement",
		from: doc(h(1, "Title"), pt("body")),
		to:   doc(h(2, "Title"), pt("body")),
		want: doc(Annotate(h(1, "Title"), Deleted), Annotate(h(2, "Title"), Inserted), pt("body")),
	},
	{
		name: "different block types are replaced",
		from: doc(pt("text"), ir.Container("image", map[string]any{"src": "a.png"})),
		to:   doc(h(1, "text"), ir.Container("image", map[string]any{"src": "a.png"})),
		want: doc(
			Annotate(pt("text"), Deleted),
			Annotate(h(1, "text"), Inserted),
			ir.Container("image", map[string]any{"src": "a.png"})),
	},
	{
		name: "nested containers",
		from: doc(ir.Container("list", nil,
			ir.Container("item", nil, pt("one")),
			ir.Container("item", nil, pt("two")))),
		to: doc(ir.Container("list", nil,
			ir.Container("item", nil, pt("one")),
			ir.Container("item", nil, pt("two too")),
			ir.Container("item", nil, pt("three")))),
		want: doc(ir.Container("list", nil,
			ir.Container("item", nil, pt("one")),
			ir.Container("item", nil, p(txt("two"), ins(" too"))),
			Annotate(ir.Container("item", nil, pt("three")), Inserted))),
	},
	{
		name: "text and containers mixed",
		from: doc(p(txt("see "), ir.Container("image", nil), txt(" here"))),
		to:   doc(p(txt("look "), ir.Container("image", nil), txt(" here"))),
		want: doc(p(del("see"), ins("look"), txt(" "), ir.Container("image", nil), txt(" here"))),
	},
	{
		name: "atom replaced",
		from: doc(pt("a"), ir.Container("image", map[string]any{"src": "a.png"})),
		to:   doc(pt("a"), ir.Container("image", map[string]any{"src": "b.png"})),
		want: doc(pt("a"),
			Annotate(ir.Container("image", map[string]any{"src": "a.png"}), Deleted),
			Annotate(ir.Container("image", map[string]any{"src": "b.png"}), Inserted)),
	},
}

func TestDiffNode(t *testing.T) {
	for _, tt := range diffTests {
		t.Run(tt.name, func(t *testing.T) {
			fc, tc := tt.from.Clone(), tt.to.Clone()
			got, err := DiffNode(tt.from, tt.to)
			if err != nil {
				t.Fatal(err)
			}
			checkNode(t, tt.want, got)
			if !ir.Equal(fc, tt.from) || !ir.Equal(tc, tt.to) {
				t.Errorf("input modified")
			}
			if s := sideText(got, Inserted); s != tt.from.TextContent() {
				t.Errorf("old text %q, want %q", s, tt.from.TextContent())
			}
			if s := sideText(got, Deleted); s != tt.to.TextContent() {
				t.Errorf("new text %q, want %q", s, tt.to.TextContent())
			}
		})
	}
}

func TestDiffNodeEqual(t *testing.T) {
	for _, tt := range diffTests {
		got, err := DiffNode(tt.to, tt.to)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(got, tt.to) {
			t.Errorf("%s: diff with itself changed the document: %s", tt.name, jsonString(got))
		}
		if countMarked(got, Inserted)+countMarked(got, Deleted) != 0 {
			t.Errorf("%s: diff with itself has diff marks", tt.name)
		}
	}
}

func TestDiffNodePureInsertDelete(t *testing.T) {
	x := doc(h(1, "Title"), p(txt("a "), txt("b", bold)), ir.Container("image", nil), pt("end"))
	leaves := len(x.Leaves())

	got, err := DiffNode(doc(), x)
	if err != nil {
		t.Fatal(err)
	}
	insLeaves := 0
	for _, l := range got.Leaves() {
		if DiffTypeOf(l) != Inserted {
			t.Errorf("leaf %q not inserted", l.Text)
		}
		insLeaves++
	}
	if insLeaves != leaves || countMarked(got, Deleted) != 0 {
		t.Errorf("got %s", jsonString(got))
	}

	got, err = DiffNode(x, doc())
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range got.Leaves() {
		if DiffTypeOf(l) != Deleted {
			t.Errorf("leaf %q not deleted", l.Text)
		}
	}
	if len(got.Leaves()) != leaves || countMarked(got, Inserted) != 0 {
		t.Errorf("got %s", jsonString(got))
	}
}

func TestDiffNodeTypeMismatch(t *testing.T) {
	_, err := DiffNode(doc(), ir.Container("article", nil))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
	_, err = DiffNode(pt("a"), txt("a"))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}

// When both ends of the remainder are updatable, the more similar pair is
// diffed and the other side is left for the next round.
func TestDiffNodePrefersSimilarPair(t *testing.T) {
	from := doc(pt("alpha beta"))
	to := doc(pt("unrelated words"), pt("alpha beta gamma"))
	got, err := DiffNode(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := doc(
		Annotate(pt("unrelated words"), Inserted),
		p(txt("alpha beta"), ins(" gamma")))
	checkNode(t, want, got)

	from = doc(pt("alpha beta gamma"))
	to = doc(pt("alpha beta delta"), pt("nothing shared"))
	got, err = DiffNode(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want = doc(
		p(txt("alpha beta "), del("gamma"), ins("delta")),
		Annotate(pt("nothing shared"), Inserted))
	checkNode(t, want, got)
}

func TestLongestSpanTies(t *testing.T) {
	from := normalize([]*ir.Node{pt("a"), pt("b"), pt("x"), pt("c"), pt("d")})
	to := normalize([]*ir.Node{pt("c"), pt("d"), pt("y"), pt("a"), pt("b")})
	sp, ok := longestSpan(from, to)
	if !ok {
		t.Fatal("no span")
	}
	if sp != (span{from: 0, to: 3, n: 2}) {
		t.Errorf("got %+v", sp)
	}
}

func TestNormalize(t *testing.T) {
	units := normalize([]*ir.Node{txt("a"), txt("b", bold), pt("p"), txt("c"), ir.Container("image", nil)})
	if len(units) != 4 {
		t.Fatalf("got %d units", len(units))
	}
	if !units[0].isRun() || len(units[0].run) != 2 {
		t.Errorf("first unit should be a run of 2")
	}
	if units[1].isRun() || units[3].isRun() {
		t.Errorf("containers should be scalar units")
	}
	if !units[2].isRun() || len(units[2].run) != 1 {
		t.Errorf("third unit should be a run of 1")
	}
	again := normalize([]*ir.Node{txt("a"), txt("b", bold)})
	if !unitsEqual(units[0], again[0]) {
		t.Errorf("equal runs compare unequal")
	}
	if unitsEqual(units[0], units[2]) {
		t.Errorf("different runs compare equal")
	}
}
