package ir

// Mark is a formatting or annotation tag attached to a node.
type Mark struct {
	Type  string
	Attrs map[string]any
}

func NewMark(typ string, attrs map[string]any) Mark {
	return Mark{Type: typ, Attrs: attrs}
}

func (m Mark) Clone() Mark {
	return Mark{Type: m.Type, Attrs: CloneAttrs(m.Attrs)}
}

func CloneMarks(marks []Mark) []Mark {
	if marks == nil {
		return nil
	}
	res := make([]Mark, len(marks))
	for i := range marks {
		res[i] = marks[i].Clone()
	}
	return res
}

// FindMark returns the index of the first mark of type typ, or -1.
func FindMark(marks []Mark, typ string) int {
	for i := range marks {
		if marks[i].Type == typ {
			return i
		}
	}
	return -1
}

// WithoutMark returns a copy of marks with every mark of type typ removed.
func WithoutMark(marks []Mark, typ string) []Mark {
	if FindMark(marks, typ) == -1 {
		return CloneMarks(marks)
	}
	res := make([]Mark, 0, len(marks))
	for i := range marks {
		if marks[i].Type == typ {
			continue
		}
		res = append(res, marks[i].Clone())
	}
	if len(res) == 0 {
		return nil
	}
	return res
}
