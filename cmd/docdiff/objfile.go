package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// oneDocArg returns the document named by the single optional argument,
// stdin if there is none.
func oneDocArg(cc *cli.Context, args []string, opts ...parse.ParseOption) (*ir.Node, error) {
	switch len(args) {
	case 0:
		return getDocFile(cc, "-", opts...)
	case 1:
		doc, err := getDocFile(cc, args[0], opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: expected at most 1 file, got %d", cli.ErrUsage, len(args))
	}
}
