package encode

import (
	"strings"

	"github.com/fatih/color"
)

type Colors struct {
	Inserted func(string, ...any) string
	Deleted  func(string, ...any) string
	Atom     func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Inserted: color.New(color.FgGreen, color.Underline).SprintfFunc(),
		Deleted:  color.New(color.FgRed, color.CrossedOut).SprintfFunc(),
		Atom:     color.RGB(74, 92, 138).SprintfFunc(),
	}
	for _, fp := range []*func(string, ...any) string{&colors.Inserted, &colors.Deleted, &colors.Atom} {
		f := *fp
		*fp = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}
