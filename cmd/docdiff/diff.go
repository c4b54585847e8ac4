package main

import (
	"fmt"
	"io"

	"github.com/signadot/docdiff"
	"github.com/signadot/docdiff/encode"
	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/libdiff"
	"github.com/signadot/docdiff/review"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return usageErr(err)
	}
	var merged *ir.Node
	if cfg.Patch != "" {
		merged, err = diffPatch(cfg, cc, args)
	} else {
		merged, err = diffFiles(cfg, cc, args)
	}
	if err != nil {
		return err
	}
	differs, err := diffOutput(cfg, cc.Out, merged)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffFiles(cfg *DiffConfig, cc *cli.Context, args []string) (*ir.Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: diff (without -patch) requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	return docdiff.Diff(from, to)
}

func diffPatch(cfg *DiffConfig, cc *cli.Context, args []string) (*ir.Node, error) {
	doc, err := oneDocArg(cc, args, cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	patch, err := readFile(cc, cfg.Patch)
	if err != nil {
		return nil, err
	}
	return docdiff.DiffJSONPatch(doc, patch)
}

func diffOutput(cfg *DiffConfig, w io.Writer, merged *ir.Node) (bool, error) {
	if cfg.Reverse {
		merged = libdiff.Reverse(merged)
	}
	differs := len(review.Changes(merged)) > 0
	opts := cfg.MainConfig.encOpts(w)
	if cfg.Render {
		return differs, encode.Render(merged, w, opts...)
	}
	return differs, encode.Encode(merged, w, opts...)
}
