package libdiff

import "github.com/signadot/docdiff/ir"

// unit is one element of a normalized child list: either a single
// container or a maximal run of adjacent leaves.
type unit struct {
	node *ir.Node
	run  []*ir.Node
	hash uint64
}

func (u unit) isRun() bool {
	return u.run != nil
}

func (u unit) nodes() []*ir.Node {
	if u.isRun() {
		return u.run
	}
	return []*ir.Node{u.node}
}

func (u unit) text() string {
	if !u.isRun() {
		return u.node.TextContent()
	}
	return runText(u.run)
}

// normalize groups every maximal run of consecutive leaves in children into
// one unit, leaving containers as scalar units.
func normalize(children []*ir.Node) []unit {
	var res []unit
	var run []*ir.Node
	flush := func() {
		if run == nil {
			return
		}
		res = append(res, unit{run: run, hash: runHash(run)})
		run = nil
	}
	for _, c := range children {
		if c.IsLeaf() {
			run = append(run, c)
			continue
		}
		flush()
		res = append(res, unit{node: c, hash: c.Hash()})
	}
	flush()
	return res
}

func runHash(run []*ir.Node) uint64 {
	var h uint64 = 14695981039346656037
	for _, l := range run {
		h ^= l.Hash()
		h *= 1099511628211
	}
	return h
}

func unitsEqual(a, b unit) bool {
	if a.hash != b.hash || a.isRun() != b.isRun() {
		return false
	}
	if a.isRun() {
		return ir.NodesEqual(a.run, b.run)
	}
	return ir.Equal(a.node, b.node)
}

func cloneUnits(res []*ir.Node, us []unit) []*ir.Node {
	for _, u := range us {
		for _, n := range u.nodes() {
			res = append(res, n.Clone())
		}
	}
	return res
}

func runText(run []*ir.Node) string {
	n := 0
	for _, l := range run {
		n += len(l.Text)
	}
	buf := make([]byte, 0, n)
	for _, l := range run {
		buf = append(buf, l.Text...)
	}
	return string(buf)
}
