package libdiff

import (
	"fmt"

	"github.com/signadot/docdiff/debug"
	"github.com/signadot/docdiff/ir"
)

// DiffNode merges the containers from and to into one tree holding the
// content of both, with changed spans annotated Inserted or Deleted.
// Neither input is modified. from and to must be containers of the same
// type.
func DiffNode(from, to *ir.Node) (*ir.Node, error) {
	if from.Kind != ir.ContainerKind || to.Kind != ir.ContainerKind || from.Type != to.Type {
		return nil, fmt.Errorf("%w: %s %q vs %s %q", ErrTypeMismatch, from.Kind, from.Type, to.Kind, to.Type)
	}
	fu, tu := normalize(from.Content), normalize(to.Content)
	n := min(len(fu), len(tu))
	left := 0
	for left < n && unitsEqual(fu[left], tu[left]) {
		left++
	}
	right := 0
	for left+right < n && unitsEqual(fu[len(fu)-1-right], tu[len(tu)-1-right]) {
		right++
	}
	if debug.Match() {
		debug.Logf("match %q: %d/%d units, prefix %d suffix %d\n", from.Type, len(fu), len(tu), left, right)
	}
	res := make([]*ir.Node, 0, len(from.Content)+len(to.Content))
	res = cloneUnits(res, fu[:left])
	mid, err := diffMiddle(fu[left:len(fu)-right], tu[left:len(tu)-right])
	if err != nil {
		return nil, err
	}
	res = append(res, mid...)
	res = cloneUnits(res, fu[len(fu)-right:])
	return from.ShallowWith(res), nil
}

// span is a contiguous run of units equal on both sides.
type span struct {
	from, to, n int
}

// longestSpan finds the longest run of pairwise equal units. Among runs of
// the same length the first one found wins, scanning from in order and, for
// each from unit, to in order.
func longestSpan(from, to []unit) (span, bool) {
	var best span
	for i := range from {
		for j := range to {
			if !unitsEqual(from[i], to[j]) {
				continue
			}
			n := 1
			for i+n < len(from) && j+n < len(to) && unitsEqual(from[i+n], to[j+n]) {
				n++
			}
			if n > best.n {
				best = span{from: i, to: j, n: n}
			}
		}
	}
	return best, best.n > 0
}

func diffMiddle(from, to []unit) ([]*ir.Node, error) {
	if len(from) == 0 || len(to) == 0 {
		return diffRemain(from, to)
	}
	sp, ok := longestSpan(from, to)
	if !ok {
		return diffRemain(from, to)
	}
	if debug.Match() {
		debug.Logf("match: run of %d at %d/%d\n", sp.n, sp.from, sp.to)
	}
	before, err := diffRemain(from[:sp.from], to[:sp.to])
	if err != nil {
		return nil, err
	}
	after, err := diffRemain(from[sp.from+sp.n:], to[sp.to+sp.n:])
	if err != nil {
		return nil, err
	}
	res := before
	res = cloneUnits(res, from[sp.from:sp.from+sp.n])
	return append(res, after...), nil
}
