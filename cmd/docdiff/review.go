package main

import (
	"fmt"

	"github.com/signadot/docdiff/encode"
	"github.com/signadot/docdiff/ir"
	"github.com/signadot/docdiff/review"

	"github.com/scott-cotton/cli"
)

func reviewDoc(cfg *ReviewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Review.Parse(cc, args)
	if err != nil {
		return usageErr(err)
	}
	merged, err := oneDocArg(cc, args, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var res *ir.Node
	switch {
	case cfg.Where != "":
		sel, err := review.CompileSelector(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res, err = review.Resolve(merged, sel, cfg.Accept)
		if err != nil {
			return err
		}
	case cfg.Accept:
		res = review.Accept(merged)
	default:
		res = review.Reject(merged)
	}
	return encode.Encode(res, cc.Out, cfg.MainConfig.encOpts(cc.Out)...)
}
