package review

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompileSelector compiles a boolean expr-lang expression into a Selector.
// The expression sees the variables
//
//	index    int             position of the block under the root
//	node     string          block node type
//	attrs    map[string]any  block attributes
//	text     string          merged text of the block
//	inserted int             inserted characters
//	deleted  int             deleted characters
//	changed  bool            whether the block has any change
//
// For example `node == "heading" && changed`.
func CompileSelector(input string) (Selector, error) {
	program, err := expr.Compile(input, expr.Env(blockEnv(&Block{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelector, err)
	}
	return func(b *Block) (bool, error) {
		return runSelector(program, b)
	}, nil
}

func runSelector(program *vm.Program, b *Block) (bool, error) {
	out, err := expr.Run(program, blockEnv(b))
	if err != nil {
		return false, fmt.Errorf("%w: block %d: %w", ErrSelector, b.Index, err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: block %d: got %T, want bool", ErrSelector, b.Index, out)
	}
	return res, nil
}

func blockEnv(b *Block) map[string]any {
	env := map[string]any{
		"index":    b.Index,
		"node":     "",
		"attrs":    map[string]any{},
		"text":     "",
		"inserted": b.Inserted,
		"deleted":  b.Deleted,
		"changed":  false,
	}
	if b.Node == nil {
		return env
	}
	env["node"] = b.Node.Type
	if b.Node.Attrs != nil {
		env["attrs"] = b.Node.Attrs
	}
	env["text"] = b.Node.TextContent()
	env["changed"] = b.Changed()
	return env
}
