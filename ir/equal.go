package ir

import (
	"reflect"
)

// Equal reports whether a and b are structurally equal: same kind, type,
// attrs and marks, and then the same text (leaves) or pairwise equal
// children (containers). Node identity plays no part.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Type != b.Type {
		return false
	}
	if !AttrsEqual(a.Attrs, b.Attrs) {
		return false
	}
	if !MarksEqual(a.Marks, b.Marks) {
		return false
	}
	if a.Kind == LeafKind {
		return a.Text == b.Text
	}
	return NodesEqual(a.Content, b.Content)
}

// NodesEqual compares two node lists pairwise.
func NodesEqual(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SameMarkup reports whether a and b have the same kind, type, attrs and
// marks, ignoring content.
func SameMarkup(a, b *Node) bool {
	return a.Kind == b.Kind && a.Type == b.Type &&
		AttrsEqual(a.Attrs, b.Attrs) && MarksEqual(a.Marks, b.Marks)
}

func MarksEqual(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type {
			return false
		}
		if !AttrsEqual(a[i].Attrs, b[i].Attrs) {
			return false
		}
	}
	return true
}

// AttrsEqual compares attribute maps key by key. A nil map equals an empty
// one.
func AttrsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !valueEqual(av, bv) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok {
			return false
		}
		return AttrsEqual(x, y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

// decoders disagree on number representations (float64 from JSON, int and
// uint64 from YAML), so numbers compare by value.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}
