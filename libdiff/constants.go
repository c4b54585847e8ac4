package libdiff

import (
	"fmt"

	"github.com/signadot/docdiff/ir"
)

// DiffMarkType is the mark type carrying a diff annotation. Its "type"
// attribute holds the DiffType name.
const (
	DiffMarkType = "diff"
	DiffTypeAttr = "type"
)

type DiffType int

const (
	Unchanged DiffType = iota
	Inserted
	Deleted
)

func (t DiffType) String() string {
	switch t {
	case Unchanged:
		return "Unchanged"
	case Inserted:
		return "Inserted"
	case Deleted:
		return "Deleted"
	default:
		return fmt.Sprintf("<bad diff type %d>", int(t))
	}
}

func ParseDiffType(v string) (DiffType, error) {
	t, ok := map[string]DiffType{
		"Unchanged": Unchanged,
		"Inserted":  Inserted,
		"Deleted":   Deleted,
	}[v]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDiffType, v)
}

func (t DiffType) MarshalText() ([]byte, error) {
	switch t {
	case Unchanged, Inserted, Deleted:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadDiffType, int(t))
}

func (t *DiffType) UnmarshalText(d []byte) error {
	pt, err := ParseDiffType(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// DiffMark returns the mark annotating a node as t.
func DiffMark(t DiffType) ir.Mark {
	return ir.NewMark(DiffMarkType, map[string]any{DiffTypeAttr: t.String()})
}

// DiffTypeOf returns the diff annotation carried by n's own marks, or
// Unchanged.
func DiffTypeOf(n *ir.Node) DiffType {
	return MarksDiffType(n.Marks)
}

func MarksDiffType(marks []ir.Mark) DiffType {
	i := ir.FindMark(marks, DiffMarkType)
	if i == -1 {
		return Unchanged
	}
	s, _ := marks[i].Attrs[DiffTypeAttr].(string)
	t, err := ParseDiffType(s)
	if err != nil {
		return Unchanged
	}
	return t
}
