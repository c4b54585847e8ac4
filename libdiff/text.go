package libdiff

import (
	"strings"

	"github.com/signadot/docdiff/debug"
	"github.com/signadot/docdiff/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText diffs two runs of adjacent leaves word by word and returns the
// merged run. Unchanged text keeps the marks of the old leaves; deleted and
// inserted text keeps the marks of the leaves it came from and gains a diff
// mark.
func DiffText(from, to []*ir.Node) []*ir.Node {
	return diffText(from, to, maxSyntheticTokens)
}

func diffText(from, to []*ir.Node, limit int) []*ir.Node {
	fromText, toText := runText(from), runText(to)
	e := newTextEmitter(from, to)
	tab := newTokenTable(limit)
	fromRunes, fOK := tab.encode(Tokenize(fromText))
	toRunes, tOK := tab.encode(Tokenize(toText))
	if !fOK || !tOK {
		if debug.Text() {
			debug.Logf("text diff: more than %d distinct tokens, diffing whole runs\n", tab.limit)
		}
		if fromText == toText {
			e.equal(len(fromText))
		} else {
			e.delete(len(fromText))
			e.insert(len(toText))
		}
		return e.finish()
	}
	dmp := diffpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	for i := range diffs {
		diff := &diffs[i]
		if debug.Text() {
			debug.Logf("text diff %s %q\n", diff.Type, strings.Join(tab.decode(diff.Text), ""))
		}
		n := tab.decodedLen(diff.Text)
		switch diff.Type {
		case diffpatch.DiffEqual:
			e.equal(n)
		case diffpatch.DiffDelete:
			e.delete(n)
		case diffpatch.DiffInsert:
			e.insert(n)
		}
	}
	return e.finish()
}

// runCursor walks the text of a run of leaves by byte offset.
type runCursor struct {
	leaves []*ir.Node
	i, off int
}

// next returns the current leaf and the bytes left in it, skipping
// exhausted and empty leaves.
func (c *runCursor) next() (*ir.Node, int) {
	for c.i < len(c.leaves) {
		leaf := c.leaves[c.i]
		if c.off < len(leaf.Text) {
			return leaf, len(leaf.Text) - c.off
		}
		c.i++
		c.off = 0
	}
	return nil, 0
}

func (c *runCursor) take(n int) string {
	leaf := c.leaves[c.i]
	s := leaf.Text[c.off : c.off+n]
	c.off += n
	return s
}

// textEmitter turns diff segments measured in bytes into leaves, cutting
// at the leaf boundaries of both runs.
type textEmitter struct {
	from, to runCursor
	dels     []*ir.Node
	ins      []*ir.Node
	res      []*ir.Node
}

func newTextEmitter(from, to []*ir.Node) *textEmitter {
	return &textEmitter{
		from: runCursor{leaves: from},
		to:   runCursor{leaves: to},
	}
}

func (e *textEmitter) equal(n int) {
	for n > 0 {
		fLeaf, fn := e.from.next()
		tLeaf, tn := e.to.next()
		if fLeaf == nil || tLeaf == nil {
			panic("libdiff: text diff ran past its input")
		}
		k := min(n, fn, tn)
		fText := e.from.take(k)
		tText := e.to.take(k)
		n -= k
		if ir.SameMarkup(fLeaf, tLeaf) {
			e.flush()
			e.push(piece(fLeaf, fText, Unchanged))
			continue
		}
		// same text, different formatting
		e.dels = append(e.dels, piece(fLeaf, fText, Deleted))
		e.ins = append(e.ins, piece(tLeaf, tText, Inserted))
	}
}

func (e *textEmitter) delete(n int) {
	for n > 0 {
		leaf, ln := e.from.next()
		if leaf == nil {
			panic("libdiff: text diff ran past its input")
		}
		k := min(n, ln)
		e.dels = append(e.dels, piece(leaf, e.from.take(k), Deleted))
		n -= k
	}
}

func (e *textEmitter) insert(n int) {
	for n > 0 {
		leaf, ln := e.to.next()
		if leaf == nil {
			panic("libdiff: text diff ran past its input")
		}
		k := min(n, ln)
		e.ins = append(e.ins, piece(leaf, e.to.take(k), Inserted))
		n -= k
	}
}

func (e *textEmitter) flush() {
	for _, n := range e.dels {
		e.push(n)
	}
	for _, n := range e.ins {
		e.push(n)
	}
	e.dels, e.ins = nil, nil
}

// push appends n, merging it into the previous leaf when both have the same
// type, attrs and marks.
func (e *textEmitter) push(n *ir.Node) {
	if len(e.res) != 0 {
		last := e.res[len(e.res)-1]
		if ir.SameMarkup(last, n) {
			last.Text += n.Text
			return
		}
	}
	e.res = append(e.res, n)
}

func (e *textEmitter) finish() []*ir.Node {
	e.flush()
	return e.res
}
