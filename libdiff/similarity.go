package libdiff

import (
	"strings"

	"github.com/signadot/docdiff/ir"
)

// Similarity scores how alike two nodes are, from 0 (nothing shared) to 1.
//
// The score is dominated by the Dice coefficient over the multisets of
// non-whitespace tokens of the two nodes' text; the rest rewards identical
// sequences of child types. Two nodes without text are compared on
// structure alone.
func Similarity(a, b *ir.Node) float64 {
	return similarity(unitOf(a), unitOf(b))
}

func unitOf(n *ir.Node) unit {
	if n.IsLeaf() {
		return unit{run: []*ir.Node{n}}
	}
	return unit{node: n}
}

func similarity(a, b unit) float64 {
	const structWeight = 0.1
	s := 0.0
	if sameChildTypes(a, b) {
		s = structWeight
	}
	ta, tb := wordCounts(a.text()), wordCounts(b.text())
	if len(ta) == 0 && len(tb) == 0 {
		return s / structWeight
	}
	return (1-structWeight)*dice(ta, tb) + s
}

func wordCounts(s string) map[string]int {
	res := map[string]int{}
	for _, tok := range Tokenize(s) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		res[tok]++
	}
	return res
}

func dice(a, b map[string]int) float64 {
	na, nb, common := 0, 0, 0
	for tok, ca := range a {
		na += ca
		common += min(ca, b[tok])
	}
	for _, cb := range b {
		nb += cb
	}
	if na+nb == 0 {
		return 1
	}
	return 2 * float64(common) / float64(na+nb)
}

func sameChildTypes(a, b unit) bool {
	an, bn := a.nodes(), b.nodes()
	if !a.isRun() {
		an = a.node.Content
	}
	if !b.isRun() {
		bn = b.node.Content
	}
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i].Type != bn[i].Type || an[i].Kind != bn[i].Kind {
			return false
		}
	}
	return true
}
