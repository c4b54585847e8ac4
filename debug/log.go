package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/docdiff/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		case []*ir.Node:
			parts := make([]string, len(x))
			for j, n := range x {
				d, err := json.Marshal(n)
				if err != nil {
					parts[j] = fmt.Sprintf("%v", n)
					continue
				}
				parts[j] = string(d)
			}
			args[i] = "[" + strings.Join(parts, ",") + "]"
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
