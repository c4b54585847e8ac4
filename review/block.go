package review

import (
	"unicode/utf8"

	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/libdiff"
)

// Block is a top-level child of a merged tree together with a summary of
// the changes under it.
type Block struct {
	Index int
	Node  *ir.Node

	// Inserted and Deleted count the characters under the block annotated
	// as such.
	Inserted int
	Deleted  int

	annotated bool
}

// Changed reports whether anything under the block is annotated.
func (b *Block) Changed() bool {
	return b.annotated
}

// Blocks returns the top-level blocks of merged.
func Blocks(merged *ir.Node) []*Block {
	res := make([]*Block, len(merged.Content))
	for i, c := range merged.Content {
		b := &Block{Index: i, Node: c}
		b.count(c, libdiff.Unchanged)
		res[i] = b
	}
	return res
}

// count adds the runes of annotated leaves under n. inherited is the
// annotation of the closest annotated ancestor.
func (b *Block) count(n *ir.Node, inherited libdiff.DiffType) {
	t := libdiff.DiffTypeOf(n)
	if t == libdiff.Unchanged {
		t = inherited
	} else {
		b.annotated = true
	}
	if n.IsLeaf() {
		switch t {
		case libdiff.Inserted:
			b.Inserted += utf8.RuneCountInString(n.Text)
		case libdiff.Deleted:
			b.Deleted += utf8.RuneCountInString(n.Text)
		}
		return
	}
	for _, c := range n.Content {
		b.count(c, t)
	}
}

// Stats summarizes the changes in a merged tree.
type Stats struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
	Blocks   int `json:"blocks"`
	Changed  int `json:"changed"`
}

func StatsOf(merged *ir.Node) Stats {
	var s Stats
	for _, b := range Blocks(merged) {
		s.Blocks++
		s.Inserted += b.Inserted
		s.Deleted += b.Deleted
		if b.Changed() {
			s.Changed++
		}
	}
	return s
}
