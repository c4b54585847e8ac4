package ir

import (
	"encoding/binary"
	"hash/maphash"
	"maps"
	"math"
	"slices"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node. Nodes which are Equal
// have the same hash within a process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.writeHash(&h)
	return h.Sum64()
}

func (n *Node) writeHash(h *maphash.Hash) {
	h.WriteByte(byte(n.Kind))
	h.WriteString(n.Type)
	h.WriteByte(0)
	writeAttrsHash(h, n.Attrs)
	for i := range n.Marks {
		h.WriteString(n.Marks[i].Type)
		h.WriteByte(0)
		writeAttrsHash(h, n.Marks[i].Attrs)
	}
	h.WriteByte(1)
	switch n.Kind {
	case LeafKind:
		h.WriteString(n.Text)
	case ContainerKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Content)))
		h.Write(b[:])
		for _, c := range n.Content {
			c.writeHash(h)
		}
	}
}

func writeAttrsHash(h *maphash.Hash, attrs map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		h.WriteString(k)
		h.WriteByte(0)
		writeValueHash(h, attrs[k])
	}
	h.WriteByte(2)
}

func writeValueHash(h *maphash.Hash, v any) {
	var b [8]byte
	if f, ok := toFloat(v); ok {
		if f == 0 {
			f = 0 // -0
		}
		h.WriteByte('n')
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
		return
	}
	switch x := v.(type) {
	case nil:
		h.WriteByte('0')
	case bool:
		if x {
			h.WriteByte('t')
		} else {
			h.WriteByte('f')
		}
	case string:
		h.WriteByte('s')
		h.WriteString(x)
		h.WriteByte(0)
	case map[string]any:
		h.WriteByte('m')
		writeAttrsHash(h, x)
	case []any:
		h.WriteByte('a')
		for i := range x {
			writeValueHash(h, x[i])
		}
		h.WriteByte(3)
	default:
		// other values only take part in Equal
		h.WriteByte('?')
	}
}
