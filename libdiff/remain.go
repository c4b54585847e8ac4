package libdiff

import (
	"slices"

	"github.com/signadot/docdiff/debug"
	"github.com/signadot/docdiff/ir"
)

// updatable reports whether a and b should be diffed as one modified node
// rather than replaced: both containers of the same type with the same
// attrs and marks.
func updatable(a, b unit) bool {
	if a.isRun() || b.isRun() {
		return false
	}
	return ir.SameMarkup(a.node, b.node)
}

func bothRuns(a, b unit) bool {
	return a.isRun() && b.isRun()
}

// diffRemain pairs up units that are not part of any matching run, sweeping
// from both ends toward the middle.
func diffRemain(from, to []unit) ([]*ir.Node, error) {
	var left []*ir.Node
	var right [][]*ir.Node
	fi, ti := 0, 0
	fj, tj := len(from)-1, len(to)-1
	for fi <= fj && ti <= tj {
		lf, lt := from[fi], to[ti]
		rf, rt := from[fj], to[tj]
		lUp, rUp := updatable(lf, lt), updatable(rf, rt)
		single := fi == fj && ti == tj
		switch {
		case lUp && rUp && !single && similarity(rf, rt) > similarity(lf, lt):
			if debug.Remain() {
				debug.Logf("remain: recurse right %q\n", rf.node.Type)
			}
			res, err := DiffNode(rf.node, rt.node)
			if err != nil {
				return nil, err
			}
			right = append(right, []*ir.Node{res})
			fj--
			tj--
		case lUp:
			if debug.Remain() {
				debug.Logf("remain: recurse left %q\n", lf.node.Type)
			}
			res, err := DiffNode(lf.node, lt.node)
			if err != nil {
				return nil, err
			}
			left = append(left, res)
			fi++
			ti++
		case rUp:
			if debug.Remain() {
				debug.Logf("remain: recurse right %q\n", rf.node.Type)
			}
			res, err := DiffNode(rf.node, rt.node)
			if err != nil {
				return nil, err
			}
			right = append(right, []*ir.Node{res})
			fj--
			tj--
		case bothRuns(lf, lt):
			left = append(left, DiffText(lf.run, lt.run)...)
			fi++
			ti++
		case bothRuns(rf, rt):
			right = append(right, DiffText(rf.run, rt.run))
			fj--
			tj--
		default:
			if debug.Remain() {
				debug.Logf("remain: replace %v with %v\n", lf.nodes(), lt.nodes())
			}
			left = append(left, annotateUnit(lf, Deleted)...)
			left = append(left, annotateUnit(lt, Inserted)...)
			fi++
			ti++
		}
	}
	res := left
	for ; fi <= fj; fi++ {
		res = append(res, annotateUnit(from[fi], Deleted)...)
	}
	for ; ti <= tj; ti++ {
		res = append(res, annotateUnit(to[ti], Inserted)...)
	}
	for _, group := range slices.Backward(right) {
		res = append(res, group...)
	}
	return res, nil
}
